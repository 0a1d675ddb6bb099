package models

type OrderSegment struct {
	DepartureAirport  string `json:"departureAirport"`
	ArrivalAirport    string `json:"arrivalAirport"`
	DepartureTime     string `json:"departureTime,omitempty"`
	ArrivalTime       string `json:"arrivalTime,omitempty"`
	MarketingCarrier  string `json:"marketingCarrier,omitempty"`
	OperatingCarrier  string `json:"operatingCarrier,omitempty"`
	FlightNumber      string `json:"flightNumber,omitempty"`
	AirlinePNR        string `json:"airlinePnr,omitempty"`
	BookingClass      string `json:"bookingClass,omitempty"`
	SegmentStatusCode string `json:"segmentStatusCode,omitempty"`
}

type OrderItem struct {
	ValidatingCarrier string         `json:"validatingCarrier,omitempty"`
	Segments          []OrderSegment `json:"segments"`
}

type OrderPassenger struct {
	PTC       string `json:"ptc"`
	GivenName string `json:"givenName"`
	Surname   string `json:"surname"`
}

type OrderPrice struct {
	TotalAmount float64 `json:"totalAmount"`
	Currency    string  `json:"currency,omitempty"`
}

// OrderPayload is the provider-shaped order body. Field presence varies
// between provider versions; every field is optional in practice.
type OrderPayload struct {
	ReferenceNo    string           `json:"referenceNo"`
	Status         string           `json:"status"`
	Timestamp      string           `json:"timestamp"`
	PNR            string           `json:"pnr,omitempty"`
	CreatedBy      string           `json:"createdBy,omitempty"`
	CreatedByEmail string           `json:"createdByEmail,omitempty"`
	OrderItems     []OrderItem      `json:"orderItems"`
	PaxList        []OrderPassenger `json:"paxList"`
	Price          *OrderPrice      `json:"price,omitempty"`
}

// OrderResponseEnvelope absorbs the provider's casing drift: newer payloads
// nest the order under "response", legacy ones under "Response".
type OrderResponseEnvelope struct {
	Response       *OrderPayload `json:"response,omitempty"`
	LegacyResponse *OrderPayload `json:"Response,omitempty"`
}

// Payload returns whichever casing variant is populated, preferring the
// current lowercase form.
func (e OrderResponseEnvelope) Payload() *OrderPayload {
	if e.Response != nil {
		return e.Response
	}
	return e.LegacyResponse
}
