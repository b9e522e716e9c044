package reservation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validTripForm() Form {
	return Form{
		ServiceType:     ServicePointToPoint,
		PickupDate:      "2026-09-12",
		PickupTime:      "10:30",
		PickupLocation:  "JFK Terminal 4",
		DropoffLocation: "Manhattan",
		Passengers:      "2",
	}
}

func TestTripGateEmptyForm(t *testing.T) {
	errs := ValidateStep(StepTrip, Form{})

	assert.Equal(t, "Service type is required.", errs["serviceType"])
	assert.Equal(t, "Pickup date is required.", errs["pickupDate"])
	assert.Equal(t, "Pickup time is required.", errs["pickupTime"])
	assert.Equal(t, "Pickup location is required.", errs["pickupLocation"])
	assert.Equal(t, "Drop-off location is required.", errs["dropoffLocation"])
	assert.Equal(t, "Passengers must be 1+.", errs["passengers"])
}

func TestTripGateValid(t *testing.T) {
	assert.Empty(t, ValidateStep(StepTrip, validTripForm()))
}

func TestTripGateHourlyDuration(t *testing.T) {
	form := validTripForm()
	form.ServiceType = ServiceHourly
	form.DropoffLocation = ""

	form.DurationHours = ""
	assert.Equal(t, "Enter valid hours.", ValidateStep(StepTrip, form)["durationHours"])

	form.DurationHours = "abc"
	assert.Equal(t, "Enter valid hours.", ValidateStep(StepTrip, form)["durationHours"])

	form.DurationHours = "0"
	assert.Equal(t, "Enter valid hours.", ValidateStep(StepTrip, form)["durationHours"])

	form.DurationHours = "3"
	errs := ValidateStep(StepTrip, form)
	assert.Empty(t, errs)
	// hourly never requires a drop-off
	assert.NotContains(t, errs, "dropoffLocation")
}

func TestTripGateReturnTrip(t *testing.T) {
	form := validTripForm()
	form.ReturnTrip = true

	errs := ValidateStep(StepTrip, form)
	assert.Equal(t, "Return date is required.", errs["returnDate"])
	assert.Equal(t, "Return time is required.", errs["returnTime"])

	form.ReturnDate = "2026-09-14"
	form.ReturnTime = "18:00"
	assert.Empty(t, ValidateStep(StepTrip, form))
}

func TestTripGateAirport(t *testing.T) {
	form := validTripForm()
	form.IsAirport = true

	errs := ValidateStep(StepTrip, form)
	assert.Equal(t, "Airline is required.", errs["airline"])
	assert.Equal(t, "Flight number is required.", errs["flightNumber"])
	assert.Equal(t, "Arrival time is required.", errs["arrivalTime"])
}

func TestVehicleGate(t *testing.T) {
	errs := ValidateStep(StepVehicle, Form{})
	assert.Equal(t, "Please select a vehicle to continue.", errs["vehicleType"])

	// the id alone is not enough; selection sets both fields atomically
	errs = ValidateStep(StepVehicle, Form{VehicleID: 4})
	assert.Contains(t, errs, "vehicleType")

	assert.Empty(t, ValidateStep(StepVehicle, Form{VehicleID: 4, VehicleType: "Stretch Limo"}))
}

func TestPassengerGate(t *testing.T) {
	errs := ValidateStep(StepPassenger, Form{})
	assert.Equal(t, "First name is required.", errs["firstName"])
	assert.Equal(t, "Last name is required.", errs["lastName"])
	assert.Equal(t, "Email is required.", errs["email"])
	assert.Equal(t, "Phone is required.", errs["phone"])

	form := Form{FirstName: "Ada", LastName: "Lovelace", Email: "not-an-email", Phone: "123"}
	errs = ValidateStep(StepPassenger, form)
	assert.Equal(t, "Enter a valid email.", errs["email"])
	assert.Equal(t, "Enter a valid phone.", errs["phone"])

	form.Email = "ada@example.com"
	form.Phone = "(212) 555-01 23"
	assert.Empty(t, ValidateStep(StepPassenger, form))
}

func TestPhoneCountsDigitsOnly(t *testing.T) {
	form := Form{FirstName: "A", LastName: "B", Email: "a@b.co", Phone: "++--(212)555"}
	errs := ValidateStep(StepPassenger, form)
	assert.Equal(t, "Enter a valid phone.", errs["phone"])
}

func TestConfirmGateHasNoFields(t *testing.T) {
	assert.Empty(t, ValidateStep(StepConfirm, Form{}))
}
