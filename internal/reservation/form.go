// Package reservation implements the booking wizard: the form aggregate,
// the per-step validation gates, the step state machine and the submission
// payload builder.
package reservation

import (
	"fmt"
	"strconv"

	"limoride/internal/pricing"
)

// Service type labels offered by the wizard. Pricing maps them onto the
// hourly or daily price list; everything that is not hourly or daily books
// against the hourly list.
const (
	ServiceHourly          = "Hourly / As Directed"
	ServicePointToPoint    = "Point to Point"
	ServiceAirportTransfer = "Airport Transfer"
	ServiceWedding         = "Wedding"
	ServiceCorporate       = "Corporate"
)

// ServiceTypes lists the labels in display order.
var ServiceTypes = []string{
	ServicePointToPoint,
	ServiceHourly,
	ServiceAirportTransfer,
	ServiceWedding,
	ServiceCorporate,
}

// Form is the wizard's mutable aggregate. Free-text numeric inputs
// (duration, passengers, luggage) stay strings until validation or payload
// building coerces them, matching how the booking form captures them.
type Form struct {
	// Trip
	ServiceType     string `json:"serviceType"`
	PickupDate      string `json:"pickupDate"`
	PickupTime      string `json:"pickupTime"`
	PickupLocation  string `json:"pickupLocation"`
	DropoffLocation string `json:"dropoffLocation"`
	DurationHours   string `json:"durationHours"`
	Passengers      string `json:"passengers"`
	Luggage         string `json:"luggage"`
	ReturnTrip      bool   `json:"returnTrip"`
	ReturnDate      string `json:"returnDate"`
	ReturnTime      string `json:"returnTime"`
	IsAirport       bool   `json:"isAirport"`
	Airline         string `json:"airline"`
	FlightNumber    string `json:"flightNumber"`
	ArrivalTime     string `json:"arrivalTime"`
	MeetGreet       bool   `json:"meetGreet"`
	ChildSeat       bool   `json:"childSeat"`
	BoosterSeat     bool   `json:"boosterSeat"`

	// Vehicle. Both base rates are kept so the live total can be recomputed
	// whenever service type or duration changes.
	VehicleID    int      `json:"vehicleId"`
	VehicleType  string   `json:"vehicleType"`
	VehicleImage string   `json:"vehicleImage"`
	HourlyRate   *float64 `json:"hourlyRate"`
	DailyRate    *float64 `json:"dailyRate"`

	// Passenger
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Notes     string `json:"notes"`

	// Derived. Always reflects the current vehicle, service type and
	// duration; recomputed synchronously on every change to those inputs.
	SelectedPrice *float64 `json:"selectedPrice"`
}

// IsHourly reports whether the hourly service flow applies: duration input
// instead of a drop-off location, and per-hour pricing.
func (f Form) IsHourly() bool {
	return f.ServiceType == ServiceHourly
}

// HasVehicle reports whether a vehicle has been selected. Selection sets
// both the identifier and the display name atomically.
func (f Form) HasVehicle() bool {
	return f.VehicleID != 0 && f.VehicleType != ""
}

// set routes a single field mutation. Unknown keys are rejected so a typo
// on the wire can't silently drop into the void.
func (f *Form) set(key string, value any) error {
	switch key {
	case "serviceType":
		return setString(&f.ServiceType, key, value)
	case "pickupDate":
		return setString(&f.PickupDate, key, value)
	case "pickupTime":
		return setString(&f.PickupTime, key, value)
	case "pickupLocation":
		return setString(&f.PickupLocation, key, value)
	case "dropoffLocation":
		return setString(&f.DropoffLocation, key, value)
	case "durationHours":
		return setString(&f.DurationHours, key, value)
	case "passengers":
		return setString(&f.Passengers, key, value)
	case "luggage":
		return setString(&f.Luggage, key, value)
	case "returnTrip":
		return setBool(&f.ReturnTrip, key, value)
	case "returnDate":
		return setString(&f.ReturnDate, key, value)
	case "returnTime":
		return setString(&f.ReturnTime, key, value)
	case "isAirport":
		return setBool(&f.IsAirport, key, value)
	case "airline":
		return setString(&f.Airline, key, value)
	case "flightNumber":
		return setString(&f.FlightNumber, key, value)
	case "arrivalTime":
		return setString(&f.ArrivalTime, key, value)
	case "meetGreet":
		return setBool(&f.MeetGreet, key, value)
	case "childSeat":
		return setBool(&f.ChildSeat, key, value)
	case "boosterSeat":
		return setBool(&f.BoosterSeat, key, value)
	case "firstName":
		return setString(&f.FirstName, key, value)
	case "lastName":
		return setString(&f.LastName, key, value)
	case "email":
		return setString(&f.Email, key, value)
	case "phone":
		return setString(&f.Phone, key, value)
	case "notes":
		return setString(&f.Notes, key, value)
	default:
		return fmt.Errorf("unknown form field %q", key)
	}
}

func setString(dst *string, key string, value any) error {
	s, ok := value.(string)
	if !ok {
		return fmt.Errorf("field %q expects a string", key)
	}
	*dst = s
	return nil
}

func setBool(dst *bool, key string, value any) error {
	b, ok := value.(bool)
	if !ok {
		return fmt.Errorf("field %q expects a boolean", key)
	}
	*dst = b
	return nil
}

// recomputePrice re-derives SelectedPrice from the selected vehicle's base
// rates, the service type and the entered duration. It runs after every
// mutation that can affect pricing so the displayed total is never stale,
// even transiently.
func (f *Form) recomputePrice() {
	if !f.HasVehicle() {
		f.SelectedPrice = nil
		return
	}
	switch pricing.ParseServiceType(f.ServiceType) {
	case pricing.Daily:
		if f.DailyRate == nil {
			f.SelectedPrice = nil
			return
		}
		f.SelectedPrice = pricing.Float(pricing.Round2(pricing.Total(*f.DailyRate, pricing.Daily)))
	default:
		if f.HourlyRate == nil {
			f.SelectedPrice = nil
			return
		}
		if hours, err := strconv.ParseFloat(f.DurationHours, 64); err == nil && hours > 0 && f.IsHourly() {
			f.SelectedPrice = pricing.Float(pricing.LineTotal(*f.HourlyRate, hours))
			return
		}
		f.SelectedPrice = pricing.Float(pricing.Round2(pricing.Total(*f.HourlyRate, pricing.Hourly)))
	}
}
