package postgres

import (
	"context"
	"database/sql"
	"time"

	"sharelah-backend/internal/domain"
	"sharelah-backend/internal/logger"
	"sharelah-backend/internal/repository"

	"github.com/lib/pq"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users (name, email, phone_number, password_hash, date_of_birth, year_of_birth, gender, roles, device_id, status, used_promo_codes, has_free_signup, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14) RETURNING id`
	now := time.Now().Format(time.RFC3339)
	u.CreatedOn = now
	u.UpdatedOn = now
	if len(u.Roles) == 0 {
		u.Roles = []string{string(domain.UserRoleUser)}
	}
	if u.Status == "" {
		u.Status = domain.UserStatusActive
	}
	return r.db.QueryRowContext(ctx, query,
		u.Name, u.Email, u.PhoneNumber, u.PasswordHash, u.DateOfBirth, u.YearOfBirth, u.Gender,
		pq.Array(u.Roles), u.DeviceID, u.Status, pq.Array(u.UsedPromoCodes), u.HasFreeSignup,
		u.CreatedOn, u.UpdatedOn,
	).Scan(&u.ID)
}

const userColumns = `id, name, email, COALESCE(phone_number, ''), password_hash, date_of_birth, COALESCE(year_of_birth, 0), COALESCE(gender, 'other'), roles, COALESCE(device_id, ''), status, used_promo_codes, has_free_signup, created_on, updated_on`

func (r *userRepository) scanUser(row interface {
	Scan(dest ...interface{}) error
}) (*domain.User, error) {
	u := &domain.User{}
	var dob sql.NullTime
	var createdOn, updatedOn time.Time
	err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.PhoneNumber, &u.PasswordHash, &dob, &u.YearOfBirth, &u.Gender,
		pq.Array(&u.Roles), &u.DeviceID, &u.Status, pq.Array(&u.UsedPromoCodes), &u.HasFreeSignup,
		&createdOn, &updatedOn,
	)
	if err != nil {
		return nil, err
	}
	if dob.Valid {
		s := dob.Time.Format("2006-01-02")
		u.DateOfBirth = &s
	}
	u.CreatedOn = createdOn.Format(time.RFC3339)
	u.UpdatedOn = updatedOn.Format(time.RFC3339)
	return u, nil
}

func (r *userRepository) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.scanUser(r.db.QueryRowContext(ctx, query, id))
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE LOWER(email) = LOWER($1)`
	return r.scanUser(r.db.QueryRowContext(ctx, query, email))
}

func (r *userRepository) List(ctx context.Context) ([]domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY id`
	logger.DatabaseCall("SELECT", "users")

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		logger.DatabaseResult("SELECT", 0, err)
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		u, err := r.scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}
	logger.DatabaseResult("SELECT", int64(len(users)), rows.Err())
	return users, rows.Err()
}

func (r *userRepository) Update(ctx context.Context, u *domain.User) error {
	query := `UPDATE users SET name=$1, email=$2, phone_number=$3, date_of_birth=$4, year_of_birth=$5, gender=$6, roles=$7, device_id=$8, status=$9, updated_on=$10 WHERE id=$11`
	u.UpdatedOn = time.Now().Format(time.RFC3339)
	_, err := r.db.ExecContext(ctx, query,
		u.Name, u.Email, u.PhoneNumber, u.DateOfBirth, u.YearOfBirth, u.Gender,
		pq.Array(u.Roles), u.DeviceID, u.Status, u.UpdatedOn, u.ID,
	)
	return err
}

func (r *userRepository) Delete(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	return err
}

func (r *userRepository) MarkPromoCodeUsed(ctx context.Context, userID int32, code string) error {
	query := `UPDATE users SET used_promo_codes = array_append(used_promo_codes, $1), updated_on = $2 WHERE id = $3 AND NOT ($1 = ANY(used_promo_codes))`
	res, err := r.db.ExecContext(ctx, query, code, time.Now().Format(time.RFC3339), userID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
