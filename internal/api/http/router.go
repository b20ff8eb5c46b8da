package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth        *AuthHandler
	User        *UserHandler
	Stall       *StallHandler
	Transaction *TransactionHandler
	PromoCode   *PromoCodeHandler
	Analytics   *AnalyticsHandler
}

// NewRouter builds the full route table. /auth/sign-in is the only public
// endpoint; everything else sits behind bearer auth, with mutations gated
// to admins and reads to admins or moderators. Collection GETs answer on
// both the bare path and /all; the dashboard uses the bare form for all
// entities except stalls.
func NewRouter(h *Handlers, auth *AuthMiddleware) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/auth/sign-in", h.Auth.SignIn).Methods(http.MethodPost)

	api := r.PathPrefix("/").Subrouter()
	api.Use(auth.Authenticate)

	api.HandleFunc("/users/me", h.Auth.Me).Methods(http.MethodGet)

	api.HandleFunc("/users", RequireAdminAccess(h.User.List)).Methods(http.MethodGet)
	api.HandleFunc("/users/all", RequireAdminAccess(h.User.List)).Methods(http.MethodGet)
	api.HandleFunc("/users", RequireAdmin(h.User.Create)).Methods(http.MethodPost)
	api.HandleFunc("/users/{id:[0-9]+}", RequireAdminAccess(h.User.Get)).Methods(http.MethodGet)
	api.HandleFunc("/users/{id:[0-9]+}", RequireAdmin(h.User.Update)).Methods(http.MethodPatch)
	api.HandleFunc("/users/{id:[0-9]+}", RequireAdmin(h.User.Delete)).Methods(http.MethodDelete)

	api.HandleFunc("/stalls/all", RequireAdminAccess(h.Stall.List)).Methods(http.MethodGet)
	api.HandleFunc("/stalls", RequireAdmin(h.Stall.Create)).Methods(http.MethodPost)
	api.HandleFunc("/stalls/{id:[0-9]+}", RequireAdminAccess(h.Stall.Get)).Methods(http.MethodGet)
	api.HandleFunc("/stalls/{id:[0-9]+}", RequireAdmin(h.Stall.Update)).Methods(http.MethodPatch)
	api.HandleFunc("/stalls/{id:[0-9]+}", RequireAdmin(h.Stall.Delete)).Methods(http.MethodDelete)
	api.HandleFunc("/stalls/{id:[0-9]+}/rent", h.Stall.Rent).Methods(http.MethodPost)
	api.HandleFunc("/stalls/{id:[0-9]+}/return", h.Stall.Return).Methods(http.MethodPost)

	api.HandleFunc("/transactions", RequireAdminAccess(h.Transaction.List)).Methods(http.MethodGet)
	api.HandleFunc("/transactions/all", RequireAdminAccess(h.Transaction.List)).Methods(http.MethodGet)
	api.HandleFunc("/transactions", RequireAdmin(h.Transaction.Create)).Methods(http.MethodPost)
	api.HandleFunc("/transactions/{id:[0-9]+}", RequireAdminAccess(h.Transaction.Get)).Methods(http.MethodGet)
	api.HandleFunc("/transactions/{id:[0-9]+}", RequireAdmin(h.Transaction.Update)).Methods(http.MethodPatch)
	api.HandleFunc("/transactions/{id:[0-9]+}", RequireAdmin(h.Transaction.Delete)).Methods(http.MethodDelete)

	api.HandleFunc("/promo-codes", RequireAdminAccess(h.PromoCode.List)).Methods(http.MethodGet)
	api.HandleFunc("/promo-codes/all", RequireAdminAccess(h.PromoCode.List)).Methods(http.MethodGet)
	api.HandleFunc("/promo-codes", RequireAdmin(h.PromoCode.Create)).Methods(http.MethodPost)
	api.HandleFunc("/promo-codes/redeem", h.PromoCode.Redeem).Methods(http.MethodPost)
	api.HandleFunc("/promo-codes/{id:[0-9]+}", RequireAdminAccess(h.PromoCode.Get)).Methods(http.MethodGet)
	api.HandleFunc("/promo-codes/{id:[0-9]+}", RequireAdmin(h.PromoCode.Update)).Methods(http.MethodPatch)
	api.HandleFunc("/promo-codes/{id:[0-9]+}", RequireAdmin(h.PromoCode.Delete)).Methods(http.MethodDelete)

	api.HandleFunc("/analytics/dashboard", RequireAdminAccess(h.Analytics.Dashboard)).Methods(http.MethodGet)

	return r
}
