package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"sharelah-backend/internal/domain"
	"sharelah-backend/internal/repository"
)

var ErrInventoryExhausted = errors.New("stall has no umbrellas available")

type stallRepository struct {
	db *sql.DB
}

func NewStallRepository(db *sql.DB) repository.StallRepository {
	return &stallRepository{db: db}
}

func (r *stallRepository) Create(ctx context.Context, s *domain.Stall) error {
	query := `INSERT INTO stalls (name, code, device_name, latitude, longitude, umbrella_count, status, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	now := time.Now().Format(time.RFC3339)
	s.CreatedOn = now
	s.UpdatedOn = now
	if s.Status == "" {
		s.Status = domain.StallStatusDraft
	}
	return r.db.QueryRowContext(ctx, query,
		s.Name, s.Code, s.DeviceName, s.Latitude, s.Longitude, s.UmbrellaCount, s.Status,
		s.CreatedOn, s.UpdatedOn,
	).Scan(&s.ID)
}

const stallColumns = `id, name, code, COALESCE(device_name, ''), latitude, longitude, umbrella_count, status, created_on, updated_on`

func (r *stallRepository) scanStall(row interface {
	Scan(dest ...interface{}) error
}) (*domain.Stall, error) {
	s := &domain.Stall{}
	var createdOn, updatedOn time.Time
	err := row.Scan(&s.ID, &s.Name, &s.Code, &s.DeviceName, &s.Latitude, &s.Longitude, &s.UmbrellaCount, &s.Status, &createdOn, &updatedOn)
	if err != nil {
		return nil, err
	}
	s.CreatedOn = createdOn.Format(time.RFC3339)
	s.UpdatedOn = updatedOn.Format(time.RFC3339)
	return s, nil
}

func (r *stallRepository) GetByID(ctx context.Context, id int32) (*domain.Stall, error) {
	query := `SELECT ` + stallColumns + ` FROM stalls WHERE id = $1`
	return r.scanStall(r.db.QueryRowContext(ctx, query, id))
}

func (r *stallRepository) List(ctx context.Context) ([]domain.Stall, error) {
	query := `SELECT ` + stallColumns + ` FROM stalls ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stalls []domain.Stall
	for rows.Next() {
		s, err := r.scanStall(rows)
		if err != nil {
			return nil, err
		}
		stalls = append(stalls, *s)
	}
	return stalls, rows.Err()
}

func (r *stallRepository) Update(ctx context.Context, s *domain.Stall) error {
	query := `UPDATE stalls SET name=$1, code=$2, device_name=$3, latitude=$4, longitude=$5, umbrella_count=$6, status=$7, updated_on=$8 WHERE id=$9`
	s.UpdatedOn = time.Now().Format(time.RFC3339)
	_, err := r.db.ExecContext(ctx, query,
		s.Name, s.Code, s.DeviceName, s.Latitude, s.Longitude, s.UmbrellaCount, s.Status, s.UpdatedOn, s.ID,
	)
	return err
}

func (r *stallRepository) Delete(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM stalls WHERE id = $1`, id)
	return err
}

func (r *stallRepository) AdjustUmbrellaCount(ctx context.Context, id int32, delta int32) error {
	query := `UPDATE stalls SET umbrella_count = umbrella_count + $1, updated_on = $2 WHERE id = $3 AND umbrella_count + $1 >= 0`
	res, err := r.db.ExecContext(ctx, query, delta, time.Now().Format(time.RFC3339), id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrInventoryExhausted
	}
	return nil
}
