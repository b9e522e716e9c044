package api

import (
	"limoride/internal/pricing"
	"limoride/internal/repository"
	"limoride/internal/reservation"
)

// Wizard session
type SetFieldRequest struct {
	Key   string `json:"key"`
	Value any    `json:"value"`
}

type SelectVehicleRequest struct {
	VehicleID int `json:"vehicle_id"`
}

// VehicleOfferResponse is one catalog entry as the vehicle picker sees it:
// display totals for both lists plus the one that applies to the session's
// current service type.
type VehicleOfferResponse struct {
	VehicleID       int      `json:"vehicle_id"`
	Name            string   `json:"name"`
	Seats           int      `json:"seats"`
	LuggageCapacity int      `json:"luggageCapacity"`
	Features        []string `json:"features"`
	ImageURL        string   `json:"imageUrl"`
	HourlyTotal     *float64 `json:"hourlyTotal"`
	DailyTotal      *float64 `json:"dailyTotal"`
	ServicePrice    *float64 `json:"servicePrice"`
	Selected        bool     `json:"selected"`
}

// WizardStateResponse is returned by every wizard endpoint so the caller
// always renders from the authoritative state.
type WizardStateResponse struct {
	SessionID    string                 `json:"session_id"`
	Step         int                    `json:"step"`
	Form         reservation.Form       `json:"form"`
	Errors       map[string]string      `json:"errors"`
	Submitted    bool                   `json:"submitted"`
	DisplayPrice string                 `json:"displayPrice"`
	ServiceTypes []string               `json:"serviceTypes"`
	Vehicles     []VehicleOfferResponse `json:"vehicles"`
	Message      string                 `json:"message,omitempty"`
}

func newWizardState(session *repository.Session) WizardStateResponse {
	w := session.Wizard
	serviceType := pricing.ParseServiceType(w.Form.ServiceType)

	vehicles := make([]VehicleOfferResponse, 0, len(session.Catalog))
	for _, offer := range session.Catalog {
		v := VehicleOfferResponse{
			VehicleID:       offer.Vehicle.VehicleID,
			Name:            offer.Vehicle.Name,
			Seats:           offer.Vehicle.Seats,
			LuggageCapacity: offer.Vehicle.LuggageCapacity,
			Features:        offer.Vehicle.FeatureLabels(),
			ImageURL:        offer.ImageURL,
			HourlyTotal:     offer.HourlyTotal(),
			DailyTotal:      offer.DailyTotal(),
			Selected:        offer.Vehicle.VehicleID == w.Form.VehicleID,
		}
		if serviceType == pricing.Daily {
			v.ServicePrice = offer.DailyTotal()
		} else {
			v.ServicePrice = offer.HourlyTotal()
		}
		vehicles = append(vehicles, v)
	}

	return WizardStateResponse{
		SessionID:    session.ID,
		Step:         int(w.Step),
		Form:         w.Form,
		Errors:       w.Errors,
		Submitted:    w.Submitted,
		DisplayPrice: pricing.FormatUSD(w.Form.SelectedPrice),
		ServiceTypes: reservation.ServiceTypes,
		Vehicles:     vehicles,
	}
}

// Admin pricing preview
type PricePreviewRequest struct {
	ServiceType string   `json:"serviceType"`
	BaseRate    float64  `json:"baseRate"`
	PerKmRate   *float64 `json:"perKmRate"`
	MinHours    int      `json:"minHours"`
}

type PricePreviewResponse struct {
	ServiceType string            `json:"serviceType"`
	Breakdown   pricing.Breakdown `json:"breakdown"`
	Display     string            `json:"display"`
}
