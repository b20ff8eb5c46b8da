package service

import (
	"context"
	"sort"
	"time"

	"sharelah-backend/internal/domain"
	"sharelah-backend/internal/repository"
	"sharelah-backend/internal/utils"
)

const latestLimit = 5

type analyticsService struct {
	userRepo   repository.UserRepository
	stallRepo  repository.StallRepository
	txRepo     repository.TransactionRepository
	thresholds utils.Thresholds
}

func NewAnalyticsService(
	userRepo repository.UserRepository,
	stallRepo repository.StallRepository,
	txRepo repository.TransactionRepository,
	thresholds utils.Thresholds,
) AnalyticsService {
	return &analyticsService{
		userRepo:   userRepo,
		stallRepo:  stallRepo,
		txRepo:     txRepo,
		thresholds: thresholds,
	}
}

func (s *analyticsService) GetDashboardStats(ctx context.Context, fromStr, toStr string) (*DashboardStats, error) {
	now := time.Now()

	from, ok := utils.ParseDate(fromStr)
	if !ok {
		from = now.AddDate(0, 0, -30)
	}
	to, ok := utils.ParseDate(toStr)
	if !ok {
		to = now
	}

	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	stalls, err := s.stallRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	txns, err := s.txRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	// The backend returns whole collections; range filtering happens here.
	// Records with unparseable dates are skipped, never fatal.
	rangeFrom := utils.FormatDay(from)
	rangeTo := utils.FormatDay(to)
	var rangeUsers []domain.User
	for _, u := range users {
		if created, ok := utils.ParseDate(u.CreatedOn); ok && utils.IsWithinRange(created, rangeFrom, rangeTo) {
			rangeUsers = append(rangeUsers, u)
		}
	}
	var rangeTxns []domain.Transaction
	var revenue int64
	for _, t := range txns {
		if day, ok := txBorrowDay(&t); ok && utils.IsWithinRange(day, rangeFrom, rangeTo) {
			rangeTxns = append(rangeTxns, t)
			revenue += int64(t.AmountCents)
		}
	}

	stats := &DashboardStats{
		TotalUsers:         len(users),
		TotalStalls:        len(stalls),
		TotalTransactions:  len(txns),
		RevenueCents:       revenue,
		Series:             utils.DailySeries(from, to, rangeUsers, rangeTxns),
		Breakdown:          utils.BreakdownByStatus(rangeTxns, s.thresholds, now),
		LatestUsers:        latestUsers(users),
		LatestTransactions: latestTransactions(txns),
	}
	return stats, nil
}

func txBorrowDay(t *domain.Transaction) (time.Time, bool) {
	if t.BorrowDate != nil {
		if d, ok := utils.ParseDate(*t.BorrowDate); ok {
			return d, true
		}
	}
	return utils.ParseDate(t.CreatedOn)
}

// latestUsers returns the most recent signups, newest first. Users whose
// creation timestamps fail to parse are dropped, matching the dashboard.
func latestUsers(users []domain.User) []domain.User {
	type dated struct {
		user domain.User
		at   time.Time
	}
	var withDates []dated
	for _, u := range users {
		if created, ok := utils.ParseDate(u.CreatedOn); ok {
			withDates = append(withDates, dated{user: u, at: created})
		}
	}
	sort.Slice(withDates, func(i, j int) bool { return withDates[i].at.After(withDates[j].at) })

	var latest []domain.User
	for i := 0; i < len(withDates) && i < latestLimit; i++ {
		latest = append(latest, withDates[i].user)
	}
	return latest
}

func latestTransactions(txns []domain.Transaction) []domain.Transaction {
	type dated struct {
		tx domain.Transaction
		at time.Time
	}
	var withDates []dated
	for _, t := range txns {
		if created, ok := utils.ParseDate(t.CreatedOn); ok {
			withDates = append(withDates, dated{tx: t, at: created})
		}
	}
	sort.Slice(withDates, func(i, j int) bool { return withDates[i].at.After(withDates[j].at) })

	var latest []domain.Transaction
	for i := 0; i < len(withDates) && i < latestLimit; i++ {
		latest = append(latest, withDates[i].tx)
	}
	return latest
}
