package entities

// PriceEntry is one row of the upstream price list. A vehicle may carry one
// entry per service type; only entries with IsActive set are considered.
type PriceEntry struct {
	PriceID     int      `json:"price_id"`
	VehicleID   int      `json:"vehicle_id"`
	ServiceType string   `json:"serviceType"` // hourly, daily, point-to-point
	BaseRate    float64  `json:"baseRate"`
	PerKmRate   *float64 `json:"perKmRate,omitempty"` // point-to-point only
	MinHours    int      `json:"minHours"`
	TotalPrice  float64  `json:"totalPrice"`
	IsActive    bool     `json:"isActive"`
	Description string   `json:"description,omitempty"`
}
