package service

import (
	"context"
	"errors"
	"time"

	"sharelah-backend/internal/domain"
	"sharelah-backend/internal/logger"
	"sharelah-backend/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrStallNotApproved = errors.New("stall is not approved for rentals")
	ErrNoUmbrellas      = errors.New("stall has no umbrellas available")
	ErrWrongStall       = errors.New("transaction does not belong to this stall")
	ErrAlreadyReturned  = errors.New("transaction is already closed")
)

type stallService struct {
	stallRepo repository.StallRepository
	txRepo    repository.TransactionRepository
}

func NewStallService(stallRepo repository.StallRepository, txRepo repository.TransactionRepository) StallService {
	return &stallService{
		stallRepo: stallRepo,
		txRepo:    txRepo,
	}
}

func (s *stallService) CreateStall(ctx context.Context, stall *domain.Stall) error {
	return s.stallRepo.Create(ctx, stall)
}

func (s *stallService) GetStall(ctx context.Context, id int32) (*domain.Stall, error) {
	return s.stallRepo.GetByID(ctx, id)
}

func (s *stallService) ListStalls(ctx context.Context) ([]domain.Stall, error) {
	return s.stallRepo.List(ctx)
}

func (s *stallService) UpdateStall(ctx context.Context, id int32, upd StallUpdate) (*domain.Stall, error) {
	stall, err := s.stallRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if upd.Name != nil {
		stall.Name = *upd.Name
	}
	if upd.Code != nil {
		stall.Code = *upd.Code
	}
	if upd.DeviceName != nil {
		stall.DeviceName = *upd.DeviceName
	}
	if upd.Status != nil {
		stall.Status = domain.StallStatus(*upd.Status)
	}
	if upd.Latitude != nil {
		stall.Latitude = *upd.Latitude
	}
	if upd.Longitude != nil {
		stall.Longitude = *upd.Longitude
	}
	if upd.UmbrellaCount != nil {
		stall.UmbrellaCount = *upd.UmbrellaCount
	}
	if err := s.stallRepo.Update(ctx, stall); err != nil {
		return nil, err
	}
	return stall, nil
}

func (s *stallService) DeleteStall(ctx context.Context, id int32) error {
	return s.stallRepo.Delete(ctx, id)
}

func (s *stallService) RentUmbrella(ctx context.Context, stallID, userID int32, amountCents int32) (*domain.Transaction, error) {
	stall, err := s.stallRepo.GetByID(ctx, stallID)
	if err != nil {
		return nil, err
	}
	if stall.Status != domain.StallStatusApproved {
		return nil, ErrStallNotApproved
	}
	if stall.UmbrellaCount <= 0 {
		return nil, ErrNoUmbrellas
	}

	if err := s.stallRepo.AdjustUmbrellaCount(ctx, stallID, -1); err != nil {
		return nil, ErrNoUmbrellas
	}

	now := time.Now().Format(time.RFC3339)
	tx := &domain.Transaction{
		Reference:   "txn_" + uuid.NewString(),
		UserID:      userID,
		StallID:     stallID,
		AmountCents: amountCents,
		BorrowDate:  &now,
	}
	if err := s.txRepo.Create(ctx, tx); err != nil {
		// Put the umbrella back so inventory stays consistent with the ledger.
		if restoreErr := s.stallRepo.AdjustUmbrellaCount(ctx, stallID, 1); restoreErr != nil {
			logger.Error("Failed to restore umbrella count after rent failure", "stall_id", stallID, "error", restoreErr)
		}
		return nil, err
	}

	logger.Info("Umbrella rented", "stall_id", stallID, "user_id", userID, "reference", tx.Reference)
	return tx, nil
}

func (s *stallService) ReturnUmbrella(ctx context.Context, stallID int32, reference string) (*domain.Transaction, error) {
	tx, err := s.txRepo.GetByReference(ctx, reference)
	if err != nil {
		return nil, err
	}
	if tx.StallID != stallID {
		return nil, ErrWrongStall
	}
	if tx.ReturnDate != nil {
		return nil, ErrAlreadyReturned
	}

	now := time.Now().Format(time.RFC3339)
	tx.ReturnDate = &now
	if err := s.txRepo.Update(ctx, tx); err != nil {
		return nil, err
	}

	if err := s.stallRepo.AdjustUmbrellaCount(ctx, stallID, 1); err != nil {
		logger.Error("Failed to restore umbrella count on return", "stall_id", stallID, "error", err)
	}

	logger.Info("Umbrella returned", "stall_id", stallID, "reference", reference)
	return tx, nil
}
