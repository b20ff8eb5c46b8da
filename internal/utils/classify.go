package utils

import (
	"time"

	"sharelah-backend/internal/domain"
)

type TransactionStatus string

const (
	StatusOnTime    TransactionStatus = "on-time"
	StatusLate      TransactionStatus = "late"
	StatusPurchased TransactionStatus = "purchased"
	StatusOngoing   TransactionStatus = "ongoing"
)

// Thresholds carries the configurable business-day cutoffs for rental
// classification. PurchaseDays should be >= LateDays for sane output; the
// classifier itself tolerates any values, including zero and negative.
type Thresholds struct {
	LateDays     int
	PurchaseDays int
}

// Classification is the derived rental state of a single transaction. The
// raw predicates are not mutually exclusive; Status is the single display
// bucket resolved with fixed priority purchased > late > ongoing > on-time.
type Classification struct {
	ElapsedBusinessDays int
	IsReturned          bool
	IsLate              bool
	IsPurchased         bool
	IsOngoing           bool
	Status              TransactionStatus
}

// Classify derives the rental state of a transaction at the given instant.
//
// The start date is the borrow date, falling back to the creation timestamp;
// if neither parses the transaction is unclassifiable and ok is false. The
// end date is the return date when present, otherwise now, so an open
// rental keeps accruing elapsed time. An unparseable return date is treated
// as absent.
func Classify(tx *domain.Transaction, th Thresholds, now time.Time) (Classification, bool) {
	var start time.Time
	ok := false
	if tx.BorrowDate != nil {
		start, ok = ParseDate(*tx.BorrowDate)
	}
	if !ok {
		start, ok = ParseDate(tx.CreatedOn)
	}
	if !ok {
		return Classification{}, false
	}

	returned := false
	end := now
	if tx.ReturnDate != nil {
		if ret, retOK := ParseDate(*tx.ReturnDate); retOK {
			returned = true
			end = ret
		}
	}

	elapsed := ElapsedBusinessDays(start, end)

	c := Classification{
		ElapsedBusinessDays: elapsed,
		IsReturned:          returned,
		IsLate:              elapsed > th.LateDays,
		IsPurchased:         returned && elapsed >= th.PurchaseDays,
		IsOngoing:           !returned && elapsed <= th.LateDays,
	}

	switch {
	case c.IsPurchased:
		c.Status = StatusPurchased
	case c.IsLate:
		c.Status = StatusLate
	case c.IsOngoing:
		c.Status = StatusOngoing
	default:
		c.Status = StatusOnTime
	}
	return c, true
}
