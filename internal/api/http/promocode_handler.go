package http

import (
	"database/sql"
	"errors"
	"net/http"

	"sharelah-backend/internal/domain"
	"sharelah-backend/internal/service"
)

type PromoCodeHandler struct {
	promoSvc service.PromoCodeService
}

func NewPromoCodeHandler(promoSvc service.PromoCodeService) *PromoCodeHandler {
	return &PromoCodeHandler{promoSvc: promoSvc}
}

type promoCodeRequest struct {
	Code             string  `json:"code"`
	DiscountType     string  `json:"discount_type"`
	DiscountValue    int32   `json:"discount_value"`
	MaxUses          int32   `json:"max_uses"`
	ExpiresOn        *string `json:"expires_on"`
	Active           *bool   `json:"active"`
	MinPurchaseCents int32   `json:"min_purchase_cents"`
}

func (req *promoCodeRequest) toDomain() *domain.PromoCode {
	promo := &domain.PromoCode{
		Code:             req.Code,
		DiscountType:     domain.DiscountType(req.DiscountType),
		DiscountValue:    req.DiscountValue,
		MaxUses:          req.MaxUses,
		ExpiresOn:        req.ExpiresOn,
		MinPurchaseCents: req.MinPurchaseCents,
	}
	if req.Active != nil {
		promo.Active = *req.Active
	} else {
		promo.Active = true
	}
	return promo
}

// List handles GET /promo-codes and GET /promo-codes/all
func (h *PromoCodeHandler) List(w http.ResponseWriter, r *http.Request) {
	promos, err := h.promoSvc.ListPromoCodes(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to list promo codes")
		return
	}
	if promos == nil {
		promos = []domain.PromoCode{}
	}
	respondJSON(w, http.StatusOK, promos)
}

// Get handles GET /promo-codes/{id}
func (h *PromoCodeHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid promo code id")
		return
	}
	promo, err := h.promoSvc.GetPromoCode(r.Context(), id)
	if err != nil {
		respondError(w, http.StatusNotFound, "promo code not found")
		return
	}
	respondJSON(w, http.StatusOK, promo)
}

// Create handles POST /promo-codes
func (h *PromoCodeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req promoCodeRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	switch domain.DiscountType(req.DiscountType) {
	case domain.DiscountTypePercentage, domain.DiscountTypeFixed:
	default:
		respondError(w, http.StatusBadRequest, "discount_type must be percentage or fixed")
		return
	}
	if req.DiscountValue <= 0 {
		respondError(w, http.StatusBadRequest, "discount_value must be positive")
		return
	}

	promo := req.toDomain()
	if err := h.promoSvc.CreatePromoCode(r.Context(), promo); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to create promo code")
		return
	}
	respondJSON(w, http.StatusCreated, promo)
}

// Update handles PATCH /promo-codes/{id}
func (h *PromoCodeHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid promo code id")
		return
	}
	var req promoCodeRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	promo := req.toDomain()
	promo.ID = id
	if err := h.promoSvc.UpdatePromoCode(r.Context(), promo); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			respondError(w, http.StatusNotFound, "promo code not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to update promo code")
		return
	}
	respondJSON(w, http.StatusOK, promo)
}

// Delete handles DELETE /promo-codes/{id}
func (h *PromoCodeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid promo code id")
		return
	}
	if err := h.promoSvc.DeletePromoCode(r.Context(), id); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to delete promo code")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "promo code deleted"})
}

type redeemRequest struct {
	Code          string `json:"code"`
	PurchaseCents int32  `json:"purchase_cents"`
}

// Redeem handles POST /promo-codes/redeem
func (h *PromoCodeHandler) Redeem(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "authorization token is not provided")
		return
	}
	var req redeemRequest
	if err := decodeBody(r, &req); err != nil || req.Code == "" {
		respondError(w, http.StatusBadRequest, "code is required")
		return
	}

	promo, discount, err := h.promoSvc.Redeem(r.Context(), req.Code, claims.UserID, req.PurchaseCents)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPromoNotFound):
			respondError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrPromoInactive),
			errors.Is(err, service.ErrPromoExpired),
			errors.Is(err, service.ErrPromoExhausted),
			errors.Is(err, service.ErrPromoAlreadyUsed),
			errors.Is(err, service.ErrPromoMinPurchase):
			respondError(w, http.StatusBadRequest, err.Error())
		default:
			respondError(w, http.StatusInternalServerError, "failed to redeem promo code")
		}
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"code":           promo.Code,
		"discount_cents": discount,
	})
}
