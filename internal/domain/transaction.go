package domain

// Transaction is one borrow/return rental event tied to a user and a stall.
//
// Timestamps are RFC 3339 strings as returned by the API. BorrowDate and
// ReturnDate may be absent; an open rental has no return date. The rental
// status (on-time, late, purchased, ongoing) is never stored; it is derived
// at read time from the dates and the configured thresholds, so changing
// thresholds reclassifies every transaction immediately.
type Transaction struct {
	ID          int32   `json:"id"`
	Reference   string  `json:"reference"`
	UserID      int32   `json:"user_id"`
	StallID     int32   `json:"stall_id"`
	User        *User   `json:"user,omitempty"`
	Stall       *Stall  `json:"stall,omitempty"`
	AmountCents int32   `json:"amount_cents"`
	BorrowDate  *string `json:"borrow_date"`
	ReturnDate  *string `json:"return_date"`
	CreatedOn   string  `json:"created_on"`
	UpdatedOn   string  `json:"updated_on"`
}
