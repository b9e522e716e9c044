package entities

// ReservationPayload is the normalized submission body sent to the upstream
// booking intake. Fields irrelevant to the chosen service type are blanked,
// never omitted, so the backend can't receive stale sub-fields left over from
// an earlier service-type choice.
type ReservationPayload struct {
	ServiceType    string `json:"serviceType"`
	PickupDate     string `json:"pickupDate"`
	PickupTime     string `json:"pickupTime"`
	PickupLocation string `json:"pickupLocation"`

	DropoffLocation string `json:"dropoffLocation"`
	DurationHours   string `json:"durationHours"`

	ReturnTrip bool   `json:"returnTrip"`
	ReturnDate string `json:"returnDate"`
	ReturnTime string `json:"returnTime"`

	Passengers int `json:"passengers"`
	Luggage    int `json:"luggage"`

	VehicleType string `json:"vehicleType"`

	MeetGreet   bool `json:"meetGreet"`
	ChildSeat   bool `json:"childSeat"`
	BoosterSeat bool `json:"boosterSeat"`

	IsAirport    bool   `json:"isAirport"`
	Airline      string `json:"airline"`
	FlightNumber string `json:"flightNumber"`
	ArrivalTime  string `json:"arrivalTime"`

	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`

	Notes string `json:"notes"`
}

// SubmitResponse is the upstream intake's body. On non-success responses
// Errors carries per-field messages keyed by payload field name.
type SubmitResponse struct {
	OK      bool              `json:"ok"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}
