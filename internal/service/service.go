package service

import (
	"context"

	"sharelah-backend/internal/domain"
	"sharelah-backend/internal/utils"
)

type AuthService interface {
	// SignIn verifies credentials and returns the user with a signed access
	// token carrying id, email, and roles.
	SignIn(ctx context.Context, email, password string) (*domain.User, string, error)
	Me(ctx context.Context, userID int32) (*domain.User, error)
}

type UserService interface {
	CreateUser(ctx context.Context, user *domain.User, password string) error
	GetUser(ctx context.Context, id int32) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	UpdateUser(ctx context.Context, user *domain.User) error
	DeleteUser(ctx context.Context, id int32) error
}

// StallUpdate carries the patchable stall fields. Nil leaves the current
// value untouched, so an explicit zero umbrella count is expressible.
type StallUpdate struct {
	Name          *string
	Code          *string
	DeviceName    *string
	Status        *string
	Latitude      *float64
	Longitude     *float64
	UmbrellaCount *int32
}

type StallService interface {
	CreateStall(ctx context.Context, stall *domain.Stall) error
	GetStall(ctx context.Context, id int32) (*domain.Stall, error)
	ListStalls(ctx context.Context) ([]domain.Stall, error)
	UpdateStall(ctx context.Context, id int32, upd StallUpdate) (*domain.Stall, error)
	DeleteStall(ctx context.Context, id int32) error
	// RentUmbrella takes one umbrella from an approved stall and opens a
	// transaction for it.
	RentUmbrella(ctx context.Context, stallID, userID int32, amountCents int32) (*domain.Transaction, error)
	// ReturnUmbrella closes the referenced transaction and puts the
	// umbrella back into the stall inventory.
	ReturnUmbrella(ctx context.Context, stallID int32, reference string) (*domain.Transaction, error)
}

// TransactionView is a transaction with its derived rental state attached.
type TransactionView struct {
	domain.Transaction
	Status              utils.TransactionStatus `json:"status"`
	IsLate              bool                    `json:"is_late"`
	IsPurchased         bool                    `json:"is_purchased"`
	IsReturned          bool                    `json:"is_returned"`
	IsOngoing           bool                    `json:"is_ongoing"`
	ElapsedBusinessDays int                     `json:"elapsed_business_days"`
}

// TransactionUpdate carries the patchable transaction fields, nil meaning
// keep the current value.
type TransactionUpdate struct {
	UserID      *int32
	StallID     *int32
	AmountCents *int32
	BorrowDate  *string
	ReturnDate  *string
}

type TransactionService interface {
	CreateTransaction(ctx context.Context, tx *domain.Transaction) error
	GetTransaction(ctx context.Context, id int32) (*TransactionView, error)
	// ListTransactions fetches the full set and applies search, date-range,
	// status filter, and pagination in memory.
	ListTransactions(ctx context.Context, state utils.ListState) (utils.PageResult[TransactionView], error)
	UpdateTransaction(ctx context.Context, id int32, upd TransactionUpdate) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, id int32) error
}

type PromoCodeService interface {
	CreatePromoCode(ctx context.Context, promo *domain.PromoCode) error
	GetPromoCode(ctx context.Context, id int32) (*domain.PromoCode, error)
	ListPromoCodes(ctx context.Context) ([]domain.PromoCode, error)
	UpdatePromoCode(ctx context.Context, promo *domain.PromoCode) error
	DeletePromoCode(ctx context.Context, id int32) error
	// Redeem validates a code against expiry, usage caps, minimum purchase,
	// and prior use by this user, then records the redemption. It returns
	// the discount in cents.
	Redeem(ctx context.Context, code string, userID int32, purchaseCents int32) (*domain.PromoCode, int32, error)
}

// DashboardStats is everything the dashboard landing page renders.
type DashboardStats struct {
	TotalUsers         int                   `json:"total_users"`
	TotalStalls        int                   `json:"total_stalls"`
	TotalTransactions  int                   `json:"total_transactions"`
	RevenueCents       int64                 `json:"revenue_cents"`
	Series             []utils.SeriesPoint   `json:"series"`
	Breakdown          utils.StatusBreakdown `json:"breakdown"`
	LatestUsers        []domain.User         `json:"latest_users"`
	LatestTransactions []domain.Transaction  `json:"latest_transactions"`
}

type AnalyticsService interface {
	// GetDashboardStats aggregates signups and rentals over the inclusive
	// [from, to] range (yyyy-MM-dd strings; both default to the last 30
	// days when empty).
	GetDashboardStats(ctx context.Context, from, to string) (*DashboardStats, error)
}

type EmailService interface {
	SendLateRentalReminder(ctx context.Context, email, name, stallName string, daysLate int) error
}
