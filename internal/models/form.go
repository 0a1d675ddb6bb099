package models

import "github.com/go-playground/validator/v10"

type TripType string

const (
	TripTypeOneway    TripType = "oneway"
	TripTypeRoundtrip TripType = "roundtrip"
	TripTypeMulticity TripType = "multicity"
)

type AirportRef struct {
	IATA    string `json:"iata"`
	City    string `json:"city,omitempty"`
	Country string `json:"country,omitempty"`
	Name    string `json:"name,omitempty"`
}

type FormSegment struct {
	From          AirportRef `json:"from"`
	To            AirportRef `json:"to"`
	DepartureDate string     `json:"departure_date"`
}

type TravelerData struct {
	Adults       int    `json:"adults" validate:"min=0"`
	Children     int    `json:"children" validate:"min=0"`
	Infants      int    `json:"infants" validate:"min=0"`
	ChildrenAges []int  `json:"children_ages,omitempty"`
	TravelClass  string `json:"travel_class,omitempty"`
}

// SearchForm is the UI-facing search payload. It is ephemeral: built per
// search and consumed once by the request builder.
type SearchForm struct {
	TripType         TripType      `json:"trip_type" validate:"required,oneof=oneway roundtrip multicity"`
	From             AirportRef    `json:"from"`
	To               AirportRef    `json:"to"`
	DepartureDate    string        `json:"departure_date"`
	ReturnDate       string        `json:"return_date,omitempty"`
	Segments         []FormSegment `json:"segments,omitempty"`
	Travelers        TravelerData  `json:"travelers" validate:"required"`
	PreferredAirline string        `json:"preferred_airline,omitempty"`
	FareType         string        `json:"fare_type,omitempty"`
}

var validate = validator.New()

// Validate applies defaults and checks structural constraints at the HTTP
// boundary. Malformed-but-well-typed fields past this point are absorbed
// downstream, never rejected.
func (f *SearchForm) Validate() error {
	if f.Travelers.Adults == 0 && f.Travelers.Children == 0 && f.Travelers.Infants == 0 {
		f.Travelers.Adults = 1
	}
	if f.Travelers.TravelClass == "" {
		f.Travelers.TravelClass = "economy"
	}
	return validate.Struct(f)
}
