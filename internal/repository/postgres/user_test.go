package postgres_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"sharelah-backend/internal/domain"
	"sharelah-backend/internal/repository/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

var userCols = []string{
	"id", "name", "email", "phone_number", "password_hash", "date_of_birth",
	"year_of_birth", "gender", "roles", "device_id", "status",
	"used_promo_codes", "has_free_signup", "created_on", "updated_on",
}

func TestUserRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewUserRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows(userCols).
			AddRow(1, "Alice Tan", "alice@test.com", "91234567", "hash", nil,
				1990, "female", "{admin}", "", "active", "{}", false, time.Now(), time.Now())

		mock.ExpectQuery("SELECT (.+) FROM users WHERE id = \\$1").
			WithArgs(int32(1)).
			WillReturnRows(rows)

		user, err := repo.GetByID(ctx, 1)
		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, int32(1), user.ID)
		assert.Equal(t, []string{"admin"}, user.Roles)
		assert.Nil(t, user.DateOfBirth)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM users WHERE id = \\$1").
			WithArgs(int32(2)).
			WillReturnError(sql.ErrNoRows)

		user, err := repo.GetByID(ctx, 2)
		assert.Error(t, err)
		assert.Nil(t, user)
	})
}

func TestUserRepository_GetByEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewUserRepository(db)
	ctx := context.Background()

	t.Run("Case insensitive match", func(t *testing.T) {
		rows := sqlmock.NewRows(userCols).
			AddRow(1, "Alice Tan", "alice@test.com", "", "hash", nil,
				0, "other", "{user}", "", "active", "{}", false, time.Now(), time.Now())

		mock.ExpectQuery("SELECT (.+) FROM users WHERE LOWER\\(email\\) = LOWER\\(\\$1\\)").
			WithArgs("ALICE@test.com").
			WillReturnRows(rows)

		user, err := repo.GetByEmail(ctx, "ALICE@test.com")
		assert.NoError(t, err)
		assert.Equal(t, "alice@test.com", user.Email)
	})
}

func TestUserRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewUserRepository(db)
	ctx := context.Background()

	t.Run("Success with defaults", func(t *testing.T) {
		u := &domain.User{
			Name:         "New User",
			Email:        "new@test.com",
			PasswordHash: "hash",
		}

		mock.ExpectQuery("INSERT INTO users").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

		err := repo.Create(ctx, u)
		assert.NoError(t, err)
		assert.Equal(t, int32(7), u.ID)
		assert.Equal(t, []string{"user"}, u.Roles)
		assert.Equal(t, domain.UserStatusActive, u.Status)
		assert.NotEmpty(t, u.CreatedOn)
	})
}

func TestUserRepository_MarkPromoCodeUsed(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewUserRepository(db)
	ctx := context.Background()

	t.Run("Appends once", func(t *testing.T) {
		mock.ExpectExec("UPDATE users SET used_promo_codes = array_append").
			WithArgs("WELCOME10", sqlmock.AnyArg(), int32(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.MarkPromoCodeUsed(ctx, 1, "WELCOME10")
		assert.NoError(t, err)
	})

	t.Run("Already recorded", func(t *testing.T) {
		mock.ExpectExec("UPDATE users SET used_promo_codes = array_append").
			WithArgs("WELCOME10", sqlmock.AnyArg(), int32(1)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.MarkPromoCodeUsed(ctx, 1, "WELCOME10")
		assert.Equal(t, sql.ErrNoRows, err)
	})
}
