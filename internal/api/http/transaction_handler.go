package http

import (
	"database/sql"
	"errors"
	"net/http"

	"sharelah-backend/internal/domain"
	"sharelah-backend/internal/service"
	"sharelah-backend/internal/utils"
)

type TransactionHandler struct {
	txSvc service.TransactionService
}

func NewTransactionHandler(txSvc service.TransactionService) *TransactionHandler {
	return &TransactionHandler{txSvc: txSvc}
}

type transactionRequest struct {
	UserID      int32   `json:"user_id"`
	StallID     int32   `json:"stall_id"`
	AmountCents int32   `json:"amount_cents"`
	BorrowDate  *string `json:"borrow_date"`
	ReturnDate  *string `json:"return_date"`
}

func (req *transactionRequest) toDomain() *domain.Transaction {
	return &domain.Transaction{
		UserID:      req.UserID,
		StallID:     req.StallID,
		AmountCents: req.AmountCents,
		BorrowDate:  req.BorrowDate,
		ReturnDate:  req.ReturnDate,
	}
}

// List handles GET /transactions and GET /transactions/all with search,
// date-range, status, and pagination query parameters.
func (h *TransactionHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	state := utils.NewListState()
	state.SetQuery(q.Get("search"))
	state.SetDateRange(q.Get("date_field"), q.Get("from"), q.Get("to"))
	state.SetTypeFilter(q.Get("status"))
	state.SetPageSize(queryInt(r, "page_size", utils.DefaultPageSize))
	state.SetPage(queryInt(r, "page", 1))

	page, err := h.txSvc.ListTransactions(r.Context(), state)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to list transactions")
		return
	}
	if page.Items == nil {
		page.Items = []service.TransactionView{}
	}
	respondJSON(w, http.StatusOK, page)
}

// Get handles GET /transactions/{id}
func (h *TransactionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid transaction id")
		return
	}
	view, err := h.txSvc.GetTransaction(r.Context(), id)
	if err != nil {
		respondError(w, http.StatusNotFound, "transaction not found")
		return
	}
	respondJSON(w, http.StatusOK, view)
}

// Create handles POST /transactions
func (h *TransactionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req transactionRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.UserID == 0 || req.StallID == 0 {
		respondError(w, http.StatusBadRequest, "user_id and stall_id are required")
		return
	}

	tx := req.toDomain()
	if err := h.txSvc.CreateTransaction(r.Context(), tx); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to create transaction")
		return
	}
	respondJSON(w, http.StatusCreated, tx)
}

// transactionUpdateRequest uses pointers so a PATCH can set the amount to
// zero; absent fields keep their current values.
type transactionUpdateRequest struct {
	UserID      *int32  `json:"user_id"`
	StallID     *int32  `json:"stall_id"`
	AmountCents *int32  `json:"amount_cents"`
	BorrowDate  *string `json:"borrow_date"`
	ReturnDate  *string `json:"return_date"`
}

// Update handles PATCH /transactions/{id}
func (h *TransactionHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid transaction id")
		return
	}
	var req transactionUpdateRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	tx, err := h.txSvc.UpdateTransaction(r.Context(), id, service.TransactionUpdate{
		UserID:      req.UserID,
		StallID:     req.StallID,
		AmountCents: req.AmountCents,
		BorrowDate:  req.BorrowDate,
		ReturnDate:  req.ReturnDate,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			respondError(w, http.StatusNotFound, "transaction not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to update transaction")
		return
	}
	respondJSON(w, http.StatusOK, tx)
}

// Delete handles DELETE /transactions/{id}
func (h *TransactionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid transaction id")
		return
	}
	if err := h.txSvc.DeleteTransaction(r.Context(), id); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to delete transaction")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "transaction deleted"})
}
