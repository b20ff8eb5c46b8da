package http

import (
	"net/http"

	"sharelah-backend/internal/service"
)

type AnalyticsHandler struct {
	analyticsSvc service.AnalyticsService
}

func NewAnalyticsHandler(analyticsSvc service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsSvc: analyticsSvc}
}

// Dashboard handles GET /analytics/dashboard?from=yyyy-MM-dd&to=yyyy-MM-dd
func (h *AnalyticsHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	stats, err := h.analyticsSvc.GetDashboardStats(r.Context(), q.Get("from"), q.Get("to"))
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load dashboard stats")
		return
	}
	respondJSON(w, http.StatusOK, stats)
}
