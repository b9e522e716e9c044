package api

import (
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"limoride/internal/logging"
	"limoride/internal/service"
)

// RatesHandler serves the public rate cards for the marketing site.
type RatesHandler struct {
	Service *service.BookingService
}

func NewRatesHandler(svc *service.BookingService) *RatesHandler {
	return &RatesHandler{Service: svc}
}

// GetRates returns every vehicle with its hourly and daily totals. An
// optional ?hours=N adds a per-vehicle hourly line total.
func (h *RatesHandler) GetRates(w http.ResponseWriter, r *http.Request) {
	hours := 0
	if raw := r.URL.Query().Get("hours"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			http.Error(w, "hours must be a positive integer", http.StatusBadRequest)
			return
		}
		hours = n
	}

	cards, err := h.Service.RateCards(r.Context(), hours)
	if err != nil {
		logging.GetLogger().Error("loading rate cards failed", zap.Error(err))
		http.Error(w, "Could not load rates", http.StatusBadGateway)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"rates": cards})
}
