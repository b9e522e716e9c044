package reservation

import (
	"strconv"

	"limoride/internal/entities"
)

// BuildPayload derives the submission body from the form. Pure: the form is
// not touched. Sub-fields that don't apply to the chosen service type are
// blanked explicitly so a service-type change mid-session can never leak
// stale values to the intake.
func BuildPayload(form Form) entities.ReservationPayload {
	hourly := form.IsHourly()

	dropoff := form.DropoffLocation
	duration := form.DurationHours
	if hourly {
		dropoff = ""
	} else {
		duration = ""
	}

	returnDate, returnTime := "", ""
	if form.ReturnTrip {
		returnDate = form.ReturnDate
		returnTime = form.ReturnTime
	}

	airline, flightNumber, arrivalTime := "", "", ""
	if form.IsAirport {
		airline = form.Airline
		flightNumber = form.FlightNumber
		arrivalTime = form.ArrivalTime
	}

	return entities.ReservationPayload{
		ServiceType:    form.ServiceType,
		PickupDate:     form.PickupDate,
		PickupTime:     form.PickupTime,
		PickupLocation: form.PickupLocation,

		DropoffLocation: dropoff,
		DurationHours:   duration,

		ReturnTrip: form.ReturnTrip,
		ReturnDate: returnDate,
		ReturnTime: returnTime,

		Passengers: atoiDefault(form.Passengers, 1),
		Luggage:    atoiDefault(form.Luggage, 0),

		VehicleType: form.VehicleType,

		MeetGreet:   form.MeetGreet,
		ChildSeat:   form.ChildSeat,
		BoosterSeat: form.BoosterSeat,

		IsAirport:    form.IsAirport,
		Airline:      airline,
		FlightNumber: flightNumber,
		ArrivalTime:  arrivalTime,

		FirstName: form.FirstName,
		LastName:  form.LastName,
		Email:     form.Email,
		Phone:     form.Phone,

		Notes: form.Notes,
	}
}

func atoiDefault(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return def
	}
	return n
}
