package utils

import (
	"time"

	"sharelah-backend/internal/domain"
)

// SeriesPoint is one calendar-day bucket of dashboard activity.
type SeriesPoint struct {
	Date         string `json:"date"`
	Users        int    `json:"users"`
	Transactions int    `json:"transactions"`
}

// StatusBreakdown splits a transaction set into three mutually exclusive
// counts. OnTime is computed as Total - Late - Purchased (clamped at zero)
// so the three always sum exactly to Total; ongoing and unclassifiable
// transactions therefore land in the on-time count.
type StatusBreakdown struct {
	Total     int `json:"total"`
	OnTime    int `json:"on_time"`
	Late      int `json:"late"`
	Purchased int `json:"purchased"`
}

// borrowDay resolves the calendar day a transaction counts toward: its
// borrow date, falling back to its creation timestamp.
func borrowDay(tx *domain.Transaction) (time.Time, bool) {
	if tx.BorrowDate != nil {
		if t, ok := ParseDate(*tx.BorrowDate); ok {
			return t, true
		}
	}
	return ParseDate(tx.CreatedOn)
}

// DailySeries buckets user signups and transaction borrows by calendar day
// over the inclusive [from, to] range. The result is gap-free and ordered
// ascending; days without activity are present with zero counts, which the
// charting frontend relies on. Records whose dates fail to parse or fall
// outside the range are silently skipped.
func DailySeries(from, to time.Time, users []domain.User, txns []domain.Transaction) []SeriesPoint {
	start := StartOfDay(from)
	stop := StartOfDay(to)
	if stop.Before(start) {
		return nil
	}

	var series []SeriesPoint
	index := make(map[string]int)
	for d := start; !d.After(stop); d = d.AddDate(0, 0, 1) {
		key := FormatDay(d)
		index[key] = len(series)
		series = append(series, SeriesPoint{Date: key})
	}

	// Bucket keys are local calendar days, so record timestamps must be
	// converted before formatting; a Z-suffixed value parses in UTC.
	for i := range users {
		created, ok := ParseDate(users[i].CreatedOn)
		if !ok {
			continue
		}
		if at, found := index[FormatDay(created.In(time.Local))]; found {
			series[at].Users++
		}
	}

	for i := range txns {
		day, ok := borrowDay(&txns[i])
		if !ok {
			continue
		}
		if at, found := index[FormatDay(day.In(time.Local))]; found {
			series[at].Transactions++
		}
	}

	return series
}

// BreakdownByStatus classifies every transaction with the same priority
// order as Classify, so per-row display buckets and aggregate counts can
// never disagree.
func BreakdownByStatus(txns []domain.Transaction, th Thresholds, now time.Time) StatusBreakdown {
	b := StatusBreakdown{Total: len(txns)}
	for i := range txns {
		c, ok := Classify(&txns[i], th, now)
		if !ok {
			continue
		}
		switch c.Status {
		case StatusPurchased:
			b.Purchased++
		case StatusLate:
			b.Late++
		}
	}
	b.OnTime = b.Total - b.Late - b.Purchased
	if b.OnTime < 0 {
		b.OnTime = 0
	}
	return b
}
