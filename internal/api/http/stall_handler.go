package http

import (
	"database/sql"
	"errors"
	"net/http"

	"sharelah-backend/internal/domain"
	"sharelah-backend/internal/service"
)

type StallHandler struct {
	stallSvc service.StallService
}

func NewStallHandler(stallSvc service.StallService) *StallHandler {
	return &StallHandler{stallSvc: stallSvc}
}

type stallRequest struct {
	Name          string  `json:"name"`
	Code          string  `json:"code"`
	DeviceName    string  `json:"device_name"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
	UmbrellaCount int32   `json:"umbrella_count"`
	Status        string  `json:"status"`
}

func (req *stallRequest) toDomain() *domain.Stall {
	return &domain.Stall{
		Name:          req.Name,
		Code:          req.Code,
		DeviceName:    req.DeviceName,
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
		UmbrellaCount: req.UmbrellaCount,
		Status:        domain.StallStatus(req.Status),
	}
}

// List handles GET /stalls/all
func (h *StallHandler) List(w http.ResponseWriter, r *http.Request) {
	stalls, err := h.stallSvc.ListStalls(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to list stalls")
		return
	}
	if stalls == nil {
		stalls = []domain.Stall{}
	}
	respondJSON(w, http.StatusOK, stalls)
}

// Get handles GET /stalls/{id}
func (h *StallHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid stall id")
		return
	}
	stall, err := h.stallSvc.GetStall(r.Context(), id)
	if err != nil {
		respondError(w, http.StatusNotFound, "stall not found")
		return
	}
	respondJSON(w, http.StatusOK, stall)
}

// Create handles POST /stalls
func (h *StallHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req stallRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" || req.Code == "" {
		respondError(w, http.StatusBadRequest, "name and code are required")
		return
	}

	stall := req.toDomain()
	if err := h.stallSvc.CreateStall(r.Context(), stall); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to create stall")
		return
	}
	respondJSON(w, http.StatusCreated, stall)
}

// stallUpdateRequest uses pointers so a PATCH can set numeric fields to
// zero; absent fields keep their current values.
type stallUpdateRequest struct {
	Name          *string  `json:"name"`
	Code          *string  `json:"code"`
	DeviceName    *string  `json:"device_name"`
	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`
	UmbrellaCount *int32   `json:"umbrella_count"`
	Status        *string  `json:"status"`
}

// Update handles PATCH /stalls/{id}
func (h *StallHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid stall id")
		return
	}
	var req stallUpdateRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	stall, err := h.stallSvc.UpdateStall(r.Context(), id, service.StallUpdate{
		Name:          req.Name,
		Code:          req.Code,
		DeviceName:    req.DeviceName,
		Status:        req.Status,
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
		UmbrellaCount: req.UmbrellaCount,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			respondError(w, http.StatusNotFound, "stall not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to update stall")
		return
	}
	respondJSON(w, http.StatusOK, stall)
}

// Delete handles DELETE /stalls/{id}
func (h *StallHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid stall id")
		return
	}
	if err := h.stallSvc.DeleteStall(r.Context(), id); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to delete stall")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "stall deleted"})
}

type rentRequest struct {
	AmountCents int32 `json:"amount_cents"`
}

// Rent handles POST /stalls/{id}/rent
func (h *StallHandler) Rent(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid stall id")
		return
	}
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "authorization token is not provided")
		return
	}

	var req rentRequest
	if r.ContentLength > 0 {
		if err := decodeBody(r, &req); err != nil {
			respondError(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	tx, err := h.stallSvc.RentUmbrella(r.Context(), id, claims.UserID, req.AmountCents)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrStallNotApproved), errors.Is(err, service.ErrNoUmbrellas):
			respondError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, sql.ErrNoRows):
			respondError(w, http.StatusNotFound, "stall not found")
		default:
			respondError(w, http.StatusInternalServerError, "failed to rent stall")
		}
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message":       "Stall rented successfully",
		"transactionId": tx.Reference,
		"stallId":       id,
		"rentedAt":      tx.BorrowDate,
	})
}

type returnRequest struct {
	TransactionID string `json:"transactionId"`
}

// Return handles POST /stalls/{id}/return
func (h *StallHandler) Return(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid stall id")
		return
	}
	var req returnRequest
	if err := decodeBody(r, &req); err != nil || req.TransactionID == "" {
		respondError(w, http.StatusBadRequest, "Transaction ID is required")
		return
	}

	tx, err := h.stallSvc.ReturnUmbrella(r.Context(), id, req.TransactionID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrWrongStall), errors.Is(err, service.ErrAlreadyReturned):
			respondError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, sql.ErrNoRows):
			respondError(w, http.StatusNotFound, "transaction not found")
		default:
			respondError(w, http.StatusInternalServerError, "failed to return stall")
		}
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message":       "Stall returned successfully",
		"transactionId": tx.Reference,
		"stallId":       id,
		"returnedAt":    tx.ReturnDate,
	})
}
