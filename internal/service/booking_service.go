package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"limoride/internal/entities"
	"limoride/internal/inventory"
	"limoride/internal/logging"
	"limoride/internal/pricing"
	"limoride/internal/repository"
	"limoride/internal/reservation"
)

// BookingService drives wizard sessions: it snapshots the catalog when a
// session starts, routes every mutation through the state machine, and
// persists the session after each transition.
type BookingService struct {
	Inventory *inventory.Client
	Store     repository.SessionStore
	Submitter reservation.Submitter
	Sender    *SenderService
	TTL       time.Duration
}

func NewBookingService(inv *inventory.Client, store repository.SessionStore, submitter reservation.Submitter, sender *SenderService, ttl time.Duration) *BookingService {
	return &BookingService{
		Inventory: inv,
		Store:     store,
		Submitter: submitter,
		Sender:    sender,
		TTL:       ttl,
	}
}

// StartSession creates a wizard with an empty form and a catalog snapshot
// fetched once for the whole session.
func (s *BookingService) StartSession(ctx context.Context) (*repository.Session, error) {
	catalog, err := s.Inventory.LoadCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}

	now := time.Now()
	session := &repository.Session{
		ID:        uuid.NewString(),
		Wizard:    reservation.NewWizard(),
		Catalog:   catalog,
		CreatedAt: now,
		ExpiresAt: now.Add(s.TTL),
	}
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("saving session: %w", err)
	}

	logging.GetLogger().Info("wizard session started",
		zap.String("session_id", session.ID), zap.Int("vehicles", len(catalog)))
	return session, nil
}

// GetSession loads a live session.
func (s *BookingService) GetSession(ctx context.Context, id string) (*repository.Session, error) {
	return s.Store.Get(ctx, id)
}

// SetField applies one field change through the wizard's single mutation
// entry point.
func (s *BookingService) SetField(ctx context.Context, id, key string, value any) (*repository.Session, error) {
	session, err := s.Store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := session.Wizard.Set(key, value); err != nil {
		return nil, err
	}
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("saving session: %w", err)
	}
	return session, nil
}

// Next attempts a validated advance. An ErrInvalid result still persists
// the session so the refreshed error map survives the round trip.
func (s *BookingService) Next(ctx context.Context, id string) (*repository.Session, error) {
	session, err := s.Store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	gateErr := session.Wizard.Next()
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("saving session: %w", err)
	}
	return session, gateErr
}

// Back retreats one step unconditionally.
func (s *BookingService) Back(ctx context.Context, id string) (*repository.Session, error) {
	session, err := s.Store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	session.Wizard.Back()
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("saving session: %w", err)
	}
	return session, nil
}

// SelectVehicle resolves the picked vehicle against the session's catalog
// snapshot and applies the selection, which also auto-advances the wizard.
func (s *BookingService) SelectVehicle(ctx context.Context, id string, vehicleID int) (*repository.Session, error) {
	session, err := s.Store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	var offer *inventory.Offer
	for i := range session.Catalog {
		if session.Catalog[i].Vehicle.VehicleID == vehicleID {
			offer = &session.Catalog[i]
			break
		}
	}
	if offer == nil {
		return nil, fmt.Errorf("vehicle %d is not in this session's catalog", vehicleID)
	}

	if err := session.Wizard.SelectVehicle(reservation.VehicleSelection{
		VehicleID:  offer.Vehicle.VehicleID,
		Name:       offer.Vehicle.Name,
		ImageURL:   offer.ImageURL,
		HourlyRate: offer.HourlyRate(),
		DailyRate:  offer.DailyRate(),
	}); err != nil {
		return nil, err
	}

	if err := s.Store.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("saving session: %w", err)
	}
	return session, nil
}

// Submit finishes the wizard and, on success, dispatches the confirmation
// notifications in the background.
func (s *BookingService) Submit(ctx context.Context, id string) (*entities.SubmitResponse, *repository.Session, error) {
	session, err := s.Store.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	resp, submitErr := session.Wizard.Submit(ctx, s.Submitter)
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, nil, fmt.Errorf("saving session: %w", err)
	}
	if submitErr != nil {
		return nil, session, submitErr
	}

	s.Sender.SendReservationConfirmation(session.Wizard.Form, reservation.BuildPayload(session.Wizard.Form))

	logging.GetLogger().Info("reservation submitted",
		zap.String("session_id", session.ID), zap.String("vehicle", session.Wizard.Form.VehicleType))
	return resp, session, nil
}

// RateCard is one vehicle's public rate listing, with totals computed
// through the shared calculator.
type RateCard struct {
	VehicleID   int      `json:"vehicle_id"`
	Name        string   `json:"name"`
	Seats       int      `json:"seats"`
	Luggage     int      `json:"luggage"`
	Features    []string `json:"features"`
	ImageURL    string   `json:"imageUrl"`
	HourlyTotal *float64 `json:"hourlyTotal"`
	DailyTotal  *float64 `json:"dailyTotal"`
	// LineTotal is HourlyTotal multiplied by the requested hours, when both
	// apply.
	LineTotal     *float64 `json:"lineTotal,omitempty"`
	DailyMinHours int      `json:"dailyMinHours,omitempty"`
}

// RateCards loads the current catalog and renders it as public rate
// listings. hours > 0 adds an hourly line total per vehicle.
func (s *BookingService) RateCards(ctx context.Context, hours int) ([]RateCard, error) {
	catalog, err := s.Inventory.LoadCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}

	cards := make([]RateCard, 0, len(catalog))
	for _, offer := range catalog {
		card := RateCard{
			VehicleID:   offer.Vehicle.VehicleID,
			Name:        offer.Vehicle.Name,
			Seats:       offer.Vehicle.Seats,
			Luggage:     offer.Vehicle.LuggageCapacity,
			Features:    offer.Vehicle.FeatureLabels(),
			ImageURL:    offer.ImageURL,
			HourlyTotal: offer.HourlyTotal(),
			DailyTotal:  offer.DailyTotal(),
		}
		if offer.Hourly != nil && hours > 0 {
			card.LineTotal = pricing.Float(pricing.LineTotal(offer.Hourly.BaseRate, float64(hours)))
		}
		if offer.Daily != nil {
			card.DailyMinHours = offer.Daily.MinHours
		}
		cards = append(cards, card)
	}
	return cards, nil
}
