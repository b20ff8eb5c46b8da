package postgres

import (
	"context"
	"database/sql"
	"time"

	"sharelah-backend/internal/domain"
	"sharelah-backend/internal/logger"
	"sharelah-backend/internal/repository"
)

type transactionRepository struct {
	db *sql.DB
}

func NewTransactionRepository(db *sql.DB) repository.TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Create(ctx context.Context, t *domain.Transaction) error {
	query := `INSERT INTO transactions (reference, user_id, stall_id, amount_cents, borrow_date, return_date, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	now := time.Now().Format(time.RFC3339)
	t.CreatedOn = now
	t.UpdatedOn = now
	return r.db.QueryRowContext(ctx, query,
		t.Reference, t.UserID, t.StallID, t.AmountCents, t.BorrowDate, t.ReturnDate,
		t.CreatedOn, t.UpdatedOn,
	).Scan(&t.ID)
}

const txColumns = `t.id, t.reference, t.user_id, t.stall_id, t.amount_cents, t.borrow_date, t.return_date, t.created_on, t.updated_on`

func (r *transactionRepository) scanTransaction(row interface {
	Scan(dest ...interface{}) error
}) (*domain.Transaction, error) {
	t := &domain.Transaction{}
	var borrow, ret sql.NullTime
	var createdOn, updatedOn time.Time
	err := row.Scan(&t.ID, &t.Reference, &t.UserID, &t.StallID, &t.AmountCents, &borrow, &ret, &createdOn, &updatedOn)
	if err != nil {
		return nil, err
	}
	if borrow.Valid {
		s := borrow.Time.Format(time.RFC3339)
		t.BorrowDate = &s
	}
	if ret.Valid {
		s := ret.Time.Format(time.RFC3339)
		t.ReturnDate = &s
	}
	t.CreatedOn = createdOn.Format(time.RFC3339)
	t.UpdatedOn = updatedOn.Format(time.RFC3339)
	return t, nil
}

func (r *transactionRepository) GetByID(ctx context.Context, id int32) (*domain.Transaction, error) {
	query := `SELECT ` + txColumns + ` FROM transactions t WHERE t.id = $1`
	return r.scanTransaction(r.db.QueryRowContext(ctx, query, id))
}

func (r *transactionRepository) GetByReference(ctx context.Context, reference string) (*domain.Transaction, error) {
	query := `SELECT ` + txColumns + ` FROM transactions t WHERE t.reference = $1`
	return r.scanTransaction(r.db.QueryRowContext(ctx, query, reference))
}

// List joins in the user and stall display fields the dashboard searches
// over (name, email, stall code). Status filtering and pagination happen in
// memory so threshold changes reclassify without a refetch.
func (r *transactionRepository) List(ctx context.Context) ([]domain.Transaction, error) {
	query := `SELECT ` + txColumns + `,
	                 COALESCE(u.name, ''), COALESCE(u.email, ''),
	                 COALESCE(s.name, ''), COALESCE(s.code, '')
	          FROM transactions t
	          LEFT JOIN users u ON u.id = t.user_id
	          LEFT JOIN stalls s ON s.id = t.stall_id
	          ORDER BY t.id`
	logger.DatabaseCall("SELECT", "transactions JOIN users, stalls")

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		logger.DatabaseResult("SELECT", 0, err)
		return nil, err
	}
	defer rows.Close()

	var txns []domain.Transaction
	for rows.Next() {
		t := domain.Transaction{User: &domain.User{}, Stall: &domain.Stall{}}
		var borrow, ret sql.NullTime
		var createdOn, updatedOn time.Time
		err := rows.Scan(
			&t.ID, &t.Reference, &t.UserID, &t.StallID, &t.AmountCents, &borrow, &ret, &createdOn, &updatedOn,
			&t.User.Name, &t.User.Email,
			&t.Stall.Name, &t.Stall.Code,
		)
		if err != nil {
			logger.DatabaseResult("SELECT", int64(len(txns)), err)
			return nil, err
		}
		if borrow.Valid {
			s := borrow.Time.Format(time.RFC3339)
			t.BorrowDate = &s
		}
		if ret.Valid {
			s := ret.Time.Format(time.RFC3339)
			t.ReturnDate = &s
		}
		t.CreatedOn = createdOn.Format(time.RFC3339)
		t.UpdatedOn = updatedOn.Format(time.RFC3339)
		t.User.ID = t.UserID
		t.Stall.ID = t.StallID
		txns = append(txns, t)
	}
	logger.DatabaseResult("SELECT", int64(len(txns)), rows.Err())
	return txns, rows.Err()
}

func (r *transactionRepository) ListOpen(ctx context.Context) ([]domain.Transaction, error) {
	query := `SELECT ` + txColumns + ` FROM transactions t WHERE t.return_date IS NULL ORDER BY t.id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var txns []domain.Transaction
	for rows.Next() {
		t, err := r.scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		txns = append(txns, *t)
	}
	return txns, rows.Err()
}

func (r *transactionRepository) Update(ctx context.Context, t *domain.Transaction) error {
	query := `UPDATE transactions SET user_id=$1, stall_id=$2, amount_cents=$3, borrow_date=$4, return_date=$5, updated_on=$6 WHERE id=$7`
	t.UpdatedOn = time.Now().Format(time.RFC3339)
	_, err := r.db.ExecContext(ctx, query, t.UserID, t.StallID, t.AmountCents, t.BorrowDate, t.ReturnDate, t.UpdatedOn, t.ID)
	return err
}

func (r *transactionRepository) Delete(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = $1`, id)
	return err
}
