package reservation

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	emailPattern    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	nonDigitPattern = regexp.MustCompile(`[^\d]`)
)

// ValidateStep runs the gate for one step against the full form and returns
// the field-error map. An empty map means the gate passes. Messages are the
// exact copy shown inline next to each field.
func ValidateStep(step Step, form Form) map[string]string {
	errs := map[string]string{}

	switch step {
	case StepTrip:
		if form.ServiceType == "" {
			errs["serviceType"] = "Service type is required."
		}
		if form.PickupDate == "" {
			errs["pickupDate"] = "Pickup date is required."
		}
		if form.PickupTime == "" {
			errs["pickupTime"] = "Pickup time is required."
		}
		if strings.TrimSpace(form.PickupLocation) == "" {
			errs["pickupLocation"] = "Pickup location is required."
		}

		if form.IsHourly() {
			h, err := strconv.ParseFloat(form.DurationHours, 64)
			if form.DurationHours == "" || err != nil || h <= 0 {
				errs["durationHours"] = "Enter valid hours."
			}
		} else if strings.TrimSpace(form.DropoffLocation) == "" {
			errs["dropoffLocation"] = "Drop-off location is required."
		}

		pax, err := strconv.ParseFloat(form.Passengers, 64)
		if form.Passengers == "" || err != nil || pax < 1 {
			errs["passengers"] = "Passengers must be 1+."
		}

		if form.ReturnTrip {
			if form.ReturnDate == "" {
				errs["returnDate"] = "Return date is required."
			}
			if form.ReturnTime == "" {
				errs["returnTime"] = "Return time is required."
			}
		}

		if form.IsAirport {
			if strings.TrimSpace(form.Airline) == "" {
				errs["airline"] = "Airline is required."
			}
			if strings.TrimSpace(form.FlightNumber) == "" {
				errs["flightNumber"] = "Flight number is required."
			}
			if strings.TrimSpace(form.ArrivalTime) == "" {
				errs["arrivalTime"] = "Arrival time is required."
			}
		}

	case StepVehicle:
		if form.VehicleID == 0 || form.VehicleType == "" {
			errs["vehicleType"] = "Please select a vehicle to continue."
		}

	case StepPassenger:
		if strings.TrimSpace(form.FirstName) == "" {
			errs["firstName"] = "First name is required."
		}
		if strings.TrimSpace(form.LastName) == "" {
			errs["lastName"] = "Last name is required."
		}

		if strings.TrimSpace(form.Email) == "" {
			errs["email"] = "Email is required."
		} else if !emailPattern.MatchString(form.Email) {
			errs["email"] = "Enter a valid email."
		}

		if strings.TrimSpace(form.Phone) == "" {
			errs["phone"] = "Phone is required."
		} else if len(nonDigitPattern.ReplaceAllString(form.Phone, "")) < 10 {
			errs["phone"] = "Enter a valid phone."
		}

	case StepConfirm:
		// No fields of its own; submission re-runs the passenger gate.
	}

	return errs
}
