package models

type Layover struct {
	Airport  string `json:"airport"`
	City     string `json:"city,omitempty"`
	Duration int    `json:"duration_minutes"`
}

// FlightSegment is one physical flight. Timestamps stay in their upstream
// string form; consumers parse them tolerantly.
type FlightSegment struct {
	FlightNumber     string   `json:"flight_number,omitempty"`
	DepartureAirport string   `json:"departure_airport"`
	ArrivalAirport   string   `json:"arrival_airport"`
	DepartureTime    string   `json:"departure_time"`
	ArrivalTime      string   `json:"arrival_time"`
	Layover          *Layover `json:"layover,omitempty"`
}

// SegmentGroup is one directional leg of the journey (outbound or inbound),
// composed of one or more physical segments connected by layovers.
type SegmentGroup struct {
	Flights []FlightSegment `json:"flights"`
	Stops   int             `json:"stops"`
	// TotalDuration is the provider-supplied duration in minutes, used only
	// as a fallback when the timestamps do not yield a positive value.
	TotalDuration int `json:"total_duration_minutes,omitempty"`
}

type FareBreakdown struct {
	PTC      string  `json:"ptc"`
	Count    int     `json:"count"`
	BaseFare float64 `json:"base_fare"`
	Taxes    float64 `json:"taxes"`
	Total    float64 `json:"total"`
}

type Pricing struct {
	Total float64 `json:"total"`
	// Gross is the pre-discount displayed price. Absent when the offer
	// carries no markup, in which case Total is the displayed price.
	Gross     *float64        `json:"gross,omitempty"`
	Currency  string          `json:"currency"`
	Breakdown []FareBreakdown `json:"breakdown,omitempty"`
}

// DisplayPrice returns the gross price when present, else the total.
func (p Pricing) DisplayPrice() float64 {
	if p.Gross != nil {
		return *p.Gross
	}
	return p.Total
}

type Baggage struct {
	CabinKg   float64 `json:"cabin_kg,omitempty"`
	CheckedKg float64 `json:"checked_kg,omitempty"`
}

// FlightOffer is a priced, bookable itinerary produced by the upstream
// transformer. The filter engine consumes offers, it never builds them.
type FlightOffer struct {
	ID             string         `json:"id"`
	CarrierCode    string         `json:"carrier_code"`
	CarrierName    string         `json:"carrier_name,omitempty"`
	Refundable     bool           `json:"refundable"`
	FareType       string         `json:"fare_type,omitempty"`
	Segments       []SegmentGroup `json:"segments"`
	Pricing        Pricing        `json:"pricing"`
	Baggage        Baggage        `json:"baggage,omitempty"`
	SeatsRemaining int            `json:"seats_remaining,omitempty"`
	BestValueScore float64        `json:"best_value_score,omitempty"`
}
