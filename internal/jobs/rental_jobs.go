package jobs

import (
	"context"
	"time"

	"sharelah-backend/internal/logger"
	"sharelah-backend/internal/utils"
)

// SendLateReminders emails every renter whose open rental has crossed the
// late threshold.
func (jr *JobRunner) SendLateReminders() {
	jr.runWithRecovery("SendLateReminders", func() {
		ctx := context.Background()

		open, err := jr.store.TransactionRepository.ListOpen(ctx)
		if err != nil {
			logger.Error("Failed to list open transactions", "error", err)
			return
		}

		thresholds := utils.Thresholds{
			LateDays:     jr.config.Rental.LateThresholdDays,
			PurchaseDays: jr.config.Rental.PurchaseThresholdDays,
		}

		now := time.Now()
		sent := 0
		for i := range open {
			tx := &open[i]
			c, ok := utils.Classify(tx, thresholds, now)
			if !ok || !c.IsLate {
				continue
			}

			user, err := jr.store.UserRepository.GetByID(ctx, tx.UserID)
			if err != nil {
				logger.Error("Failed to load user for late reminder", "user_id", tx.UserID, "error", err)
				continue
			}
			stall, err := jr.store.StallRepository.GetByID(ctx, tx.StallID)
			if err != nil {
				logger.Error("Failed to load stall for late reminder", "stall_id", tx.StallID, "error", err)
				continue
			}

			daysLate := c.ElapsedBusinessDays - jr.config.Rental.LateThresholdDays
			if err := jr.services.Email.SendLateRentalReminder(ctx, user.Email, user.Name, stall.Name, daysLate); err != nil {
				logger.Error("Failed to send late rental reminder",
					"user_id", user.ID,
					"reference", tx.Reference,
					"error", err)
				continue
			}
			sent++
			logger.Debug("Sent late rental reminder",
				"user_id", user.ID,
				"reference", tx.Reference,
				"days_late", daysLate)
		}

		logger.Info("Late rental reminders sent", "count", sent, "open_rentals", len(open))
	})
}
