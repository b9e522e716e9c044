package pricing

import (
	"fmt"
	"math"
	"strings"
)

// ServiceType selects which price list entry and discount rule applies.
type ServiceType string

const (
	Hourly       ServiceType = "hourly"
	Daily        ServiceType = "daily"
	PointToPoint ServiceType = "point-to-point"
)

// Rate components applied on top of every base rate. The congestion
// surcharge is flat; everything else is a fraction of the base.
const (
	operatingCostRate    = 0.20
	creditCardFeeRate    = 0.03
	stateSalesTaxRate    = 0.089
	congestionSurcharge  = 2.75
	businessDiscountRate = 0.30 // daily service only
)

// ParseServiceType maps a wizard display label onto a price-list service
// type. Anything that is neither hourly nor daily books against the hourly
// list, matching how the reservation front end resolves it.
func ParseServiceType(label string) ServiceType {
	s := strings.ToLower(label)
	switch {
	case strings.Contains(s, "hour"):
		return Hourly
	case strings.Contains(s, "daily"):
		return Daily
	default:
		return Hourly
	}
}

// Breakdown itemizes every component of an all-inclusive total for a single
// base rate. The admin preview renders each line.
type Breakdown struct {
	BaseRate            float64 `json:"baseRate"`
	OperatingCost       float64 `json:"operatingCost"`
	CreditCardFee       float64 `json:"creditCardFee"`
	StateSalesTax       float64 `json:"stateSalesTax"`
	CongestionSurcharge float64 `json:"congestionSurcharge"`
	BusinessDiscount    float64 `json:"businessDiscount"`
	Total               float64 `json:"total"`
}

// Quote computes the full fee breakdown for a base rate. This is the single
// source of truth for every displayed price: rate cards, the admin preview
// and the live reservation total all go through it.
func Quote(baseRate float64, serviceType ServiceType) Breakdown {
	b := Breakdown{
		BaseRate:            baseRate,
		OperatingCost:       baseRate * operatingCostRate,
		CreditCardFee:       baseRate * creditCardFeeRate,
		StateSalesTax:       baseRate * stateSalesTaxRate,
		CongestionSurcharge: congestionSurcharge,
	}
	if serviceType == Daily {
		b.BusinessDiscount = baseRate * businessDiscountRate
	}
	b.Total = b.BaseRate + b.OperatingCost + b.CreditCardFee + b.StateSalesTax +
		b.CongestionSurcharge - b.BusinessDiscount
	return b
}

// Total returns the all-inclusive total for a base rate.
func Total(baseRate float64, serviceType ServiceType) float64 {
	return Quote(baseRate, serviceType).Total
}

// LineTotal multiplies the per-hour all-inclusive total by the booked
// duration, rounded to cents. Used by the hourly wizard flow and the rate
// card hour selector.
func LineTotal(hourlyBaseRate float64, hours float64) float64 {
	return Round2(Total(hourlyBaseRate, Hourly) * hours)
}

// Round2 rounds to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// FormatUSD renders a price for display. A missing or non-numeric value
// degrades to an em-dash rather than zero or a panic.
func FormatUSD(v *float64) string {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return "—"
	}
	return fmt.Sprintf("$%.2f", *v)
}

// Float returns a pointer to v, for the optional price fields on wire types.
func Float(v float64) *float64 {
	return &v
}
