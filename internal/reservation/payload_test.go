package reservation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPayloadHourlyBlanksDropoff(t *testing.T) {
	form := Form{
		ServiceType:     ServiceHourly,
		DropoffLocation: "stale from a previous service type",
		DurationHours:   "4",
	}

	payload := BuildPayload(form)
	assert.Equal(t, "", payload.DropoffLocation)
	assert.Equal(t, "4", payload.DurationHours)
}

func TestBuildPayloadNonHourlyBlanksDuration(t *testing.T) {
	form := Form{
		ServiceType:     ServicePointToPoint,
		DropoffLocation: "Midtown",
		DurationHours:   "4",
	}

	payload := BuildPayload(form)
	assert.Equal(t, "Midtown", payload.DropoffLocation)
	assert.Equal(t, "", payload.DurationHours)
}

func TestBuildPayloadReturnFieldsFollowFlag(t *testing.T) {
	form := Form{
		ReturnTrip: false,
		ReturnDate: "2026-09-14",
		ReturnTime: "18:00",
	}
	payload := BuildPayload(form)
	assert.False(t, payload.ReturnTrip)
	assert.Equal(t, "", payload.ReturnDate)
	assert.Equal(t, "", payload.ReturnTime)

	form.ReturnTrip = true
	payload = BuildPayload(form)
	assert.Equal(t, "2026-09-14", payload.ReturnDate)
	assert.Equal(t, "18:00", payload.ReturnTime)
}

func TestBuildPayloadAirportFieldsFollowFlag(t *testing.T) {
	form := Form{
		IsAirport:    false,
		Airline:      "Delta",
		FlightNumber: "DL123",
		ArrivalTime:  "14:05",
	}
	payload := BuildPayload(form)
	assert.Equal(t, "", payload.Airline)
	assert.Equal(t, "", payload.FlightNumber)
	assert.Equal(t, "", payload.ArrivalTime)

	form.IsAirport = true
	payload = BuildPayload(form)
	assert.Equal(t, "Delta", payload.Airline)
	assert.Equal(t, "DL123", payload.FlightNumber)
	assert.Equal(t, "14:05", payload.ArrivalTime)
}

func TestBuildPayloadCoercesCounts(t *testing.T) {
	payload := BuildPayload(Form{Passengers: "3", Luggage: "2"})
	assert.Equal(t, 3, payload.Passengers)
	assert.Equal(t, 2, payload.Luggage)

	payload = BuildPayload(Form{Passengers: "", Luggage: "junk"})
	assert.Equal(t, 1, payload.Passengers)
	assert.Equal(t, 0, payload.Luggage)

	payload = BuildPayload(Form{Passengers: "-2"})
	assert.Equal(t, 1, payload.Passengers)
}

func TestBuildPayloadDoesNotMutateForm(t *testing.T) {
	form := Form{ServiceType: ServiceHourly, DropoffLocation: "Midtown"}
	_ = BuildPayload(form)
	assert.Equal(t, "Midtown", form.DropoffLocation)
}
