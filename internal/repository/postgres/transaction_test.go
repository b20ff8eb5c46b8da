package postgres_test

import (
	"context"
	"testing"
	"time"

	"sharelah-backend/internal/domain"
	"sharelah-backend/internal/repository/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

var txCols = []string{
	"id", "reference", "user_id", "stall_id", "amount_cents",
	"borrow_date", "return_date", "created_on", "updated_on",
}

func TestTransactionRepository_GetByReference(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewTransactionRepository(db)
	ctx := context.Background()

	t.Run("Open rental has nil return date", func(t *testing.T) {
		borrow := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)
		rows := sqlmock.NewRows(txCols).
			AddRow(1, "txn_abc", 42, 1, 300, borrow, nil, borrow, borrow)

		mock.ExpectQuery("SELECT (.+) FROM transactions t WHERE t.reference = \\$1").
			WithArgs("txn_abc").
			WillReturnRows(rows)

		tx, err := repo.GetByReference(ctx, "txn_abc")
		assert.NoError(t, err)
		assert.Equal(t, "txn_abc", tx.Reference)
		assert.NotNil(t, tx.BorrowDate)
		assert.Nil(t, tx.ReturnDate)
	})
}

func TestTransactionRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewTransactionRepository(db)
	ctx := context.Background()

	t.Run("Joins user and stall display fields", func(t *testing.T) {
		now := time.Now()
		cols := append(append([]string{}, txCols...), "user_name", "user_email", "stall_name", "stall_code")
		rows := sqlmock.NewRows(cols).
			AddRow(1, "txn_abc", 42, 1, 300, now, nil, now, now,
				"Alice Tan", "alice@test.com", "Marina Bay", "MB01")

		mock.ExpectQuery("LEFT JOIN users u ON u.id = t.user_id").
			WillReturnRows(rows)

		txns, err := repo.List(ctx)
		assert.NoError(t, err)
		assert.Len(t, txns, 1)
		assert.Equal(t, "Alice Tan", txns[0].User.Name)
		assert.Equal(t, "MB01", txns[0].Stall.Code)
		assert.Equal(t, int32(42), txns[0].User.ID)
	})
}

func TestTransactionRepository_ListOpen(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewTransactionRepository(db)
	ctx := context.Background()

	t.Run("Only rows without return date", func(t *testing.T) {
		now := time.Now()
		rows := sqlmock.NewRows(txCols).
			AddRow(1, "txn_open", 42, 1, 300, now, nil, now, now)

		mock.ExpectQuery("SELECT (.+) FROM transactions t WHERE t.return_date IS NULL").
			WillReturnRows(rows)

		txns, err := repo.ListOpen(ctx)
		assert.NoError(t, err)
		assert.Len(t, txns, 1)
		assert.Nil(t, txns[0].ReturnDate)
	})
}

func TestTransactionRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewTransactionRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		borrow := time.Now().Format(time.RFC3339)
		tx := &domain.Transaction{
			Reference:   "txn_new",
			UserID:      42,
			StallID:     1,
			AmountCents: 300,
			BorrowDate:  &borrow,
		}

		mock.ExpectQuery("INSERT INTO transactions").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(9))

		err := repo.Create(ctx, tx)
		assert.NoError(t, err)
		assert.Equal(t, int32(9), tx.ID)
	})
}
