package repository

import (
	"context"

	"sharelah-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id int32) error
	MarkPromoCodeUsed(ctx context.Context, userID int32, code string) error
}

type StallRepository interface {
	Create(ctx context.Context, stall *domain.Stall) error
	GetByID(ctx context.Context, id int32) (*domain.Stall, error)
	List(ctx context.Context) ([]domain.Stall, error)
	Update(ctx context.Context, stall *domain.Stall) error
	Delete(ctx context.Context, id int32) error
	// AdjustUmbrellaCount atomically changes the stall inventory by delta.
	// It fails rather than letting the count go negative.
	AdjustUmbrellaCount(ctx context.Context, id int32, delta int32) error
}

type TransactionRepository interface {
	Create(ctx context.Context, tx *domain.Transaction) error
	GetByID(ctx context.Context, id int32) (*domain.Transaction, error)
	GetByReference(ctx context.Context, reference string) (*domain.Transaction, error)
	// List returns all transactions with their user and stall snapshots
	// attached; filtering and pagination happen in memory downstream.
	List(ctx context.Context) ([]domain.Transaction, error)
	// ListOpen returns transactions that have no return date yet.
	ListOpen(ctx context.Context) ([]domain.Transaction, error)
	Update(ctx context.Context, tx *domain.Transaction) error
	Delete(ctx context.Context, id int32) error
}

type PromoCodeRepository interface {
	Create(ctx context.Context, promo *domain.PromoCode) error
	GetByID(ctx context.Context, id int32) (*domain.PromoCode, error)
	GetByCode(ctx context.Context, code string) (*domain.PromoCode, error)
	List(ctx context.Context) ([]domain.PromoCode, error)
	Update(ctx context.Context, promo *domain.PromoCode) error
	Delete(ctx context.Context, id int32) error
	IncrementUsage(ctx context.Context, id int32) error
	// DeactivateExpired clears the active flag on codes whose expiry has
	// passed and returns how many were touched.
	DeactivateExpired(ctx context.Context) (int64, error)
}
