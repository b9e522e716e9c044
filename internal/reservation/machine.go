package reservation

import (
	"context"
	"errors"
	"fmt"

	"limoride/internal/entities"
)

// Step is the wizard's position. Forward movement goes through the current
// step's validation gate; backward movement is unconditional.
type Step int

const (
	StepTrip Step = iota
	StepVehicle
	StepPassenger
	StepConfirm
)

// ErrInvalid is returned when a validation gate blocks the requested
// transition. The wizard's Errors map carries the field messages.
var ErrInvalid = errors.New("form has validation errors")

// Submitter posts a finished payload to the booking intake.
type Submitter interface {
	Submit(ctx context.Context, payload entities.ReservationPayload) (*entities.SubmitResponse, error)
}

// SubmitError is a rejected submission. Fields, when present, carries the
// intake's per-field messages to reconcile back onto the form.
type SubmitError struct {
	Status  int
	Message string
	Fields  map[string]string
}

func (e *SubmitError) Error() string {
	return e.Message
}

// VehicleSelection is the data a vehicle pick applies to the form in one
// atomic step.
type VehicleSelection struct {
	VehicleID  int
	Name       string
	ImageURL   string
	HourlyRate *float64
	DailyRate  *float64
}

// Wizard is one booking session: step index, form, and the error map scoped
// to the current step. Not safe for concurrent use; a session is driven by
// one caller at a time.
type Wizard struct {
	Step      Step              `json:"step"`
	Form      Form              `json:"form"`
	Errors    map[string]string `json:"errors"`
	Submitted bool              `json:"submitted"`
}

// NewWizard starts a session at the trip step with an empty form.
func NewWizard() *Wizard {
	return &Wizard{Errors: map[string]string{}}
}

// Set mutates a single form field. It clears any error recorded for that
// field and synchronously recomputes the selected price, so a pricing input
// can never leave a stale total behind.
func (w *Wizard) Set(key string, value any) error {
	if w.Submitted {
		return fmt.Errorf("reservation already submitted")
	}
	if err := w.Form.set(key, value); err != nil {
		return err
	}
	delete(w.Errors, key)
	w.Form.recomputePrice()
	return nil
}

// Next runs the current step's gate. On failure the error map is replaced
// wholesale and the step does not move; calling it again without fixing the
// form neither advances nor piles up duplicate messages. On success the
// error map is cleared and the index advances, clamped at the confirm step.
func (w *Wizard) Next() error {
	errs := ValidateStep(w.Step, w.Form)
	w.Errors = errs
	if len(errs) > 0 {
		return ErrInvalid
	}
	if w.Step < StepConfirm {
		w.Step++
	}
	return nil
}

// Back always retreats one step, clamped at the trip step. It neither
// clears nor re-validates anything.
func (w *Wizard) Back() {
	if w.Step > StepTrip {
		w.Step--
	}
}

// SelectVehicle applies a vehicle pick: identifier, display name, image and
// both base rates land atomically, the live total is recomputed from the new
// rates, and the wizard auto-advances without running the gate — a valid
// selection is by itself sufficient to leave the vehicle step. Selection is
// the vehicle step's own action: from any other step it is rejected, so the
// advance can never skip an earlier gate.
func (w *Wizard) SelectVehicle(sel VehicleSelection) error {
	if w.Submitted {
		return fmt.Errorf("reservation already submitted")
	}
	if w.Step != StepVehicle {
		return fmt.Errorf("vehicle selection is only allowed on the vehicle step")
	}

	w.Form.VehicleID = sel.VehicleID
	w.Form.VehicleType = sel.Name
	w.Form.VehicleImage = sel.ImageURL
	w.Form.HourlyRate = sel.HourlyRate
	w.Form.DailyRate = sel.DailyRate
	w.Form.recomputePrice()

	delete(w.Errors, "vehicleType")
	w.Step++
	return nil
}

// Submit finishes the wizard. Only reachable from the confirm step; the
// passenger gate runs once more defensively, then the normalized payload is
// posted. Field errors returned by the intake are merged into the current
// error map without discarding unrelated entries, and the wizard stays on
// the confirm step so the caller can retry.
func (w *Wizard) Submit(ctx context.Context, submitter Submitter) (*entities.SubmitResponse, error) {
	if w.Submitted {
		return nil, fmt.Errorf("reservation already submitted")
	}
	if w.Step != StepConfirm {
		return nil, fmt.Errorf("submission is only allowed from the confirm step")
	}

	if errs := ValidateStep(StepPassenger, w.Form); len(errs) > 0 {
		w.Errors = errs
		return nil, ErrInvalid
	}

	resp, err := submitter.Submit(ctx, BuildPayload(w.Form))
	if err != nil {
		var submitErr *SubmitError
		if errors.As(err, &submitErr) {
			for field, msg := range submitErr.Fields {
				w.Errors[field] = msg
			}
		}
		return nil, err
	}

	w.Submitted = true
	return resp, nil
}
