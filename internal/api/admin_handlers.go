package api

import (
	"encoding/json"
	"net/http"

	"limoride/internal/pricing"
)

// AdminHandler serves the back-office pricing surface.
type AdminHandler struct{}

func NewAdminHandler() *AdminHandler {
	return &AdminHandler{}
}

// PricePreview itemizes the all-inclusive total an operator would publish
// for a candidate base rate. The daily minimum-duration rule is enforced
// here, at price entry, not in the reservation wizard.
func (h *AdminHandler) PricePreview(w http.ResponseWriter, r *http.Request) {
	var req PricePreviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.BaseRate <= 0 {
		http.Error(w, "A base rate greater than zero is required", http.StatusBadRequest)
		return
	}

	serviceType := pricing.ServiceType(req.ServiceType)
	switch serviceType {
	case pricing.Hourly, pricing.Daily, pricing.PointToPoint:
	default:
		http.Error(w, "Unknown service type", http.StatusBadRequest)
		return
	}

	if serviceType == pricing.PointToPoint && (req.PerKmRate == nil || *req.PerKmRate <= 0) {
		http.Error(w, "Per KM rate is required for point-to-point service", http.StatusBadRequest)
		return
	}
	if serviceType == pricing.Daily && req.MinHours < 10 {
		http.Error(w, "Daily rate requires minimum 10 hours", http.StatusBadRequest)
		return
	}

	breakdown := pricing.Quote(req.BaseRate, serviceType)
	writeJSON(w, http.StatusOK, PricePreviewResponse{
		ServiceType: string(serviceType),
		Breakdown:   breakdown,
		Display:     pricing.FormatUSD(pricing.Float(pricing.Round2(breakdown.Total))),
	})
}
