package service_test

import (
	"context"
	"testing"

	"sharelah-backend/internal/domain"
	"sharelah-backend/internal/service"

	"github.com/stretchr/testify/assert"
)

func TestAnalyticsService_GetDashboardStats(t *testing.T) {
	ctx := context.Background()

	users := []domain.User{
		{ID: 1, Name: "Alice Tan", CreatedOn: "2024-01-15T10:00:00"},
		{ID: 2, Name: "Bob Lim", CreatedOn: "2024-01-16T10:00:00"},
		{ID: 3, Name: "Outside Range", CreatedOn: "2023-06-01T10:00:00"},
	}
	stalls := []domain.Stall{
		{ID: 1, Name: "Marina Bay"},
		{ID: 2, Name: "Orchard"},
	}
	txns := sampleTransactions()

	t.Run("Aggregates over explicit range", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		stallRepo := new(MockStallRepo)
		txRepo := new(MockTransactionRepo)
		svc := service.NewAnalyticsService(userRepo, stallRepo, txRepo, testThresholds())

		userRepo.On("List", ctx).Return(users, nil)
		stallRepo.On("List", ctx).Return(stalls, nil)
		txRepo.On("List", ctx).Return(txns, nil)

		stats, err := svc.GetDashboardStats(ctx, "2024-01-15", "2024-01-21")
		assert.NoError(t, err)

		// Totals count everything, not just the range.
		assert.Equal(t, 3, stats.TotalUsers)
		assert.Equal(t, 2, stats.TotalStalls)
		assert.Equal(t, 3, stats.TotalTransactions)

		// All three borrows happened on 2024-01-15, inside the range.
		assert.Equal(t, int64(2600), stats.RevenueCents)

		// Gap-free daily series over 7 days.
		assert.Len(t, stats.Series, 7)
		assert.Equal(t, "2024-01-15", stats.Series[0].Date)
		assert.Equal(t, 1, stats.Series[0].Users)
		assert.Equal(t, 3, stats.Series[0].Transactions)
		assert.Equal(t, 1, stats.Series[1].Users)
		assert.Equal(t, 0, stats.Series[2].Users)

		// Breakdown sums exactly to its total.
		b := stats.Breakdown
		assert.Equal(t, 3, b.Total)
		assert.Equal(t, b.Total, b.OnTime+b.Late+b.Purchased)
		assert.Equal(t, 1, b.Late)
		assert.Equal(t, 1, b.Purchased)

		// Latest lists are newest first.
		assert.Equal(t, int32(2), stats.LatestUsers[0].ID)
	})

	t.Run("Repo failure bubbles up", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		stallRepo := new(MockStallRepo)
		txRepo := new(MockTransactionRepo)
		svc := service.NewAnalyticsService(userRepo, stallRepo, txRepo, testThresholds())

		userRepo.On("List", ctx).Return(nil, assert.AnError)

		stats, err := svc.GetDashboardStats(ctx, "", "")
		assert.Error(t, err)
		assert.Nil(t, stats)
	})
}
