package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"sharelah-backend/internal/domain"
	"sharelah-backend/internal/logger"
	"sharelah-backend/internal/repository"
	"sharelah-backend/internal/utils"

	"github.com/google/uuid"
)

var (
	ErrPromoNotFound    = errors.New("promo code not found")
	ErrPromoInactive    = errors.New("promo code is not active")
	ErrPromoExpired     = errors.New("promo code has expired")
	ErrPromoExhausted   = errors.New("promo code has reached its usage limit")
	ErrPromoAlreadyUsed = errors.New("promo code already used by this user")
	ErrPromoMinPurchase = errors.New("purchase amount below promo code minimum")
)

type promoCodeService struct {
	promoRepo repository.PromoCodeRepository
	userRepo  repository.UserRepository
}

func NewPromoCodeService(promoRepo repository.PromoCodeRepository, userRepo repository.UserRepository) PromoCodeService {
	return &promoCodeService{
		promoRepo: promoRepo,
		userRepo:  userRepo,
	}
}

func (s *promoCodeService) CreatePromoCode(ctx context.Context, promo *domain.PromoCode) error {
	if promo.Code == "" {
		// 8-char codes are enough for an admin-issued namespace.
		promo.Code = strings.ToUpper(uuid.NewString()[:8])
	}
	promo.Code = strings.ToUpper(promo.Code)
	if promo.DiscountType == "" {
		promo.DiscountType = domain.DiscountTypePercentage
	}
	return s.promoRepo.Create(ctx, promo)
}

func (s *promoCodeService) GetPromoCode(ctx context.Context, id int32) (*domain.PromoCode, error) {
	return s.promoRepo.GetByID(ctx, id)
}

func (s *promoCodeService) ListPromoCodes(ctx context.Context) ([]domain.PromoCode, error) {
	return s.promoRepo.List(ctx)
}

func (s *promoCodeService) UpdatePromoCode(ctx context.Context, promo *domain.PromoCode) error {
	current, err := s.promoRepo.GetByID(ctx, promo.ID)
	if err != nil {
		return err
	}
	if promo.Code == "" {
		promo.Code = current.Code
	}
	promo.Code = strings.ToUpper(promo.Code)
	if promo.DiscountType == "" {
		promo.DiscountType = current.DiscountType
	}
	if promo.DiscountValue == 0 {
		promo.DiscountValue = current.DiscountValue
	}
	if promo.MaxUses == 0 {
		promo.MaxUses = current.MaxUses
	}
	if promo.ExpiresOn == nil {
		promo.ExpiresOn = current.ExpiresOn
	}
	if promo.MinPurchaseCents == 0 {
		promo.MinPurchaseCents = current.MinPurchaseCents
	}
	return s.promoRepo.Update(ctx, promo)
}

func (s *promoCodeService) DeletePromoCode(ctx context.Context, id int32) error {
	return s.promoRepo.Delete(ctx, id)
}

func (s *promoCodeService) Redeem(ctx context.Context, code string, userID int32, purchaseCents int32) (*domain.PromoCode, int32, error) {
	promo, err := s.promoRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, 0, ErrPromoNotFound
	}

	if !promo.Active {
		return nil, 0, ErrPromoInactive
	}
	if promo.ExpiresOn != nil {
		if expires, ok := utils.ParseDate(*promo.ExpiresOn); ok && time.Now().After(expires) {
			return nil, 0, ErrPromoExpired
		}
	}
	if promo.MaxUses > 0 && promo.TimesUsed >= promo.MaxUses {
		return nil, 0, ErrPromoExhausted
	}
	if purchaseCents < promo.MinPurchaseCents {
		return nil, 0, ErrPromoMinPurchase
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	for _, used := range user.UsedPromoCodes {
		if strings.EqualFold(used, promo.Code) {
			return nil, 0, ErrPromoAlreadyUsed
		}
	}

	if err := s.promoRepo.IncrementUsage(ctx, promo.ID); err != nil {
		return nil, 0, ErrPromoExhausted
	}
	if err := s.userRepo.MarkPromoCodeUsed(ctx, userID, promo.Code); err != nil {
		logger.Error("Failed to record promo use on user", "user_id", userID, "code", promo.Code, "error", err)
	}
	promo.TimesUsed++

	var discount int32
	switch promo.DiscountType {
	case domain.DiscountTypeFixed:
		discount = promo.DiscountValue
	default:
		discount = purchaseCents * promo.DiscountValue / 100
	}
	if discount > purchaseCents {
		discount = purchaseCents
	}

	logger.Info("Promo code redeemed", "code", promo.Code, "user_id", userID, "discount_cents", discount)
	return promo, discount, nil
}
