package inventory

import (
	"context"

	"limoride/internal/entities"
	"limoride/internal/fetch"
	"limoride/internal/pricing"
)

// Offer is one vehicle merged with its active price entries and resolved
// display image. A catalog is snapshotted once per wizard session and never
// mutated afterwards.
type Offer struct {
	Vehicle  entities.Vehicle        `json:"vehicle"`
	Hourly   *entities.PriceEntry    `json:"hourly,omitempty"`
	Daily    *entities.PriceEntry    `json:"daily,omitempty"`
	Images   []entities.VehicleImage `json:"images,omitempty"`
	ImageURL string                  `json:"imageUrl"`
}

// HourlyRate returns the active hourly base rate, or nil when the vehicle
// has no active hourly entry.
func (o Offer) HourlyRate() *float64 {
	if o.Hourly == nil {
		return nil
	}
	return pricing.Float(o.Hourly.BaseRate)
}

// DailyRate returns the active daily base rate, or nil.
func (o Offer) DailyRate() *float64 {
	if o.Daily == nil {
		return nil
	}
	return pricing.Float(o.Daily.BaseRate)
}

// HourlyTotal is the all-inclusive per-hour price, computed through the
// shared calculator rather than trusted from the upstream row.
func (o Offer) HourlyTotal() *float64 {
	if o.Hourly == nil {
		return nil
	}
	return pricing.Float(pricing.Round2(pricing.Total(o.Hourly.BaseRate, pricing.Hourly)))
}

// DailyTotal is the all-inclusive daily price.
func (o Offer) DailyTotal() *float64 {
	if o.Daily == nil {
		return nil
	}
	return pricing.Float(pricing.Round2(pricing.Total(o.Daily.BaseRate, pricing.Daily)))
}

// LoadCatalog fetches vehicles and prices, then fans out per-vehicle image
// requests through the bounded fetcher. One vehicle's failing gallery never
// blocks the catalog; that vehicle simply has no images.
func (c *Client) LoadCatalog(ctx context.Context) ([]Offer, error) {
	vehicles, err := c.FetchVehicles(ctx)
	if err != nil {
		return nil, err
	}
	prices, err := c.FetchPrices(ctx)
	if err != nil {
		return nil, err
	}

	galleries := fetch.Map(ctx, vehicles, c.imageConcurrency,
		func(ctx context.Context, v entities.Vehicle) ([]entities.VehicleImage, error) {
			return c.FetchVehicleImages(ctx, v.VehicleID)
		})

	offers := make([]Offer, len(vehicles))
	for i, v := range vehicles {
		offers[i] = Offer{
			Vehicle:  v,
			Hourly:   activePrice(prices, v.VehicleID, pricing.Hourly),
			Daily:    activePrice(prices, v.VehicleID, pricing.Daily),
			Images:   galleries[i],
			ImageURL: c.ToPublicURL(DefaultImageURL(galleries[i])),
		}
	}
	return offers, nil
}

// activePrice picks the active entry for a (vehicle, service type) pair.
// When more than one row is active, the lowest price_id wins so the choice
// is deterministic regardless of upstream row order.
func activePrice(prices []entities.PriceEntry, vehicleID int, serviceType pricing.ServiceType) *entities.PriceEntry {
	var best *entities.PriceEntry
	for i := range prices {
		p := &prices[i]
		if p.VehicleID != vehicleID || !p.IsActive || pricing.ServiceType(p.ServiceType) != serviceType {
			continue
		}
		if best == nil || p.PriceID < best.PriceID {
			best = p
		}
	}
	return best
}

// DefaultImageURL resolves a gallery's display image: the entry flagged
// default, else the first entry, else empty.
func DefaultImageURL(images []entities.VehicleImage) string {
	for _, img := range images {
		if img.IsDefault {
			return img.ImageURL
		}
	}
	if len(images) > 0 {
		return images[0].ImageURL
	}
	return ""
}
