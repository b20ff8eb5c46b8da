package service

import (
	"context"
	"time"

	"sharelah-backend/internal/domain"
	"sharelah-backend/internal/repository"
	"sharelah-backend/internal/utils"
)

type transactionService struct {
	txRepo     repository.TransactionRepository
	thresholds utils.Thresholds
}

func NewTransactionService(txRepo repository.TransactionRepository, thresholds utils.Thresholds) TransactionService {
	return &transactionService{
		txRepo:     txRepo,
		thresholds: thresholds,
	}
}

func (s *transactionService) view(tx *domain.Transaction, now time.Time) TransactionView {
	v := TransactionView{Transaction: *tx}
	if c, ok := utils.Classify(tx, s.thresholds, now); ok {
		v.Status = c.Status
		v.IsLate = c.IsLate
		v.IsPurchased = c.IsPurchased
		v.IsReturned = c.IsReturned
		v.IsOngoing = c.IsOngoing
		v.ElapsedBusinessDays = c.ElapsedBusinessDays
	}
	return v
}

func (s *transactionService) CreateTransaction(ctx context.Context, tx *domain.Transaction) error {
	return s.txRepo.Create(ctx, tx)
}

func (s *transactionService) GetTransaction(ctx context.Context, id int32) (*TransactionView, error) {
	tx, err := s.txRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	v := s.view(tx, time.Now())
	return &v, nil
}

// dateFor picks the timestamp a date-range filter applies to.
func dateFor(tx *domain.Transaction, field string) (time.Time, bool) {
	switch field {
	case "return_date":
		if tx.ReturnDate == nil {
			return time.Time{}, false
		}
		return utils.ParseDate(*tx.ReturnDate)
	case "created_on":
		return utils.ParseDate(tx.CreatedOn)
	default: // borrow_date, with creation fallback
		if tx.BorrowDate != nil {
			if t, ok := utils.ParseDate(*tx.BorrowDate); ok {
				return t, true
			}
		}
		return utils.ParseDate(tx.CreatedOn)
	}
}

func (s *transactionService) ListTransactions(ctx context.Context, state utils.ListState) (utils.PageResult[TransactionView], error) {
	txns, err := s.txRepo.List(ctx)
	if err != nil {
		return utils.PageResult[TransactionView]{}, err
	}

	now := time.Now()
	var views []TransactionView
	for i := range txns {
		tx := &txns[i]

		var userName, userEmail, stallName, stallCode string
		if tx.User != nil {
			userName, userEmail = tx.User.Name, tx.User.Email
		}
		if tx.Stall != nil {
			stallName, stallCode = tx.Stall.Name, tx.Stall.Code
		}
		if !utils.MatchesQuery(state.Query, tx.Reference, userName, userEmail, stallName, stallCode) {
			continue
		}

		if state.From != "" || state.To != "" {
			d, ok := dateFor(tx, state.DateField)
			if !ok || !utils.IsWithinRange(d, state.From, state.To) {
				continue
			}
		}

		v := s.view(tx, now)
		if state.TypeFilter != "" && string(v.Status) != state.TypeFilter {
			continue
		}
		views = append(views, v)
	}

	return utils.Paginate(views, state.Page, state.PageSize), nil
}

func (s *transactionService) UpdateTransaction(ctx context.Context, id int32, upd TransactionUpdate) (*domain.Transaction, error) {
	tx, err := s.txRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if upd.UserID != nil {
		tx.UserID = *upd.UserID
	}
	if upd.StallID != nil {
		tx.StallID = *upd.StallID
	}
	if upd.AmountCents != nil {
		tx.AmountCents = *upd.AmountCents
	}
	if upd.BorrowDate != nil {
		tx.BorrowDate = upd.BorrowDate
	}
	if upd.ReturnDate != nil {
		tx.ReturnDate = upd.ReturnDate
	}
	if err := s.txRepo.Update(ctx, tx); err != nil {
		return nil, err
	}
	return tx, nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, id int32) error {
	return s.txRepo.Delete(ctx, id)
}
