package jobs

import (
	"context"

	"sharelah-backend/internal/logger"
)

// DeactivateExpiredPromos clears the active flag on promo codes whose
// expiry date has passed.
func (jr *JobRunner) DeactivateExpiredPromos() {
	jr.runWithRecovery("DeactivateExpiredPromos", func() {
		ctx := context.Background()

		count, err := jr.store.PromoCodeRepository.DeactivateExpired(ctx)
		if err != nil {
			logger.Error("Failed to deactivate expired promo codes", "error", err)
			return
		}

		logger.Info("Deactivated expired promo codes", "count", count)
	})
}
