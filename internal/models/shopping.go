package models

type ShoppingTripType string

const (
	ShoppingOneway ShoppingTripType = "Oneway"
	ShoppingReturn ShoppingTripType = "Return"
	ShoppingCircle ShoppingTripType = "Circle"
)

type DeparturePoint struct {
	AirportCode string `json:"airport_code"`
	Date        string `json:"date"`
}

type ArrivalPoint struct {
	AirportCode string `json:"airport_code"`
}

type OriginDest struct {
	Departure DeparturePoint `json:"departure"`
	Arrival   ArrivalPoint   `json:"arrival"`
}

type Passenger struct {
	ID  string `json:"id"`
	PTC string `json:"ptc"`
}

type ShoppingCriteria struct {
	TripType          ShoppingTripType `json:"trip_type"`
	CabinCode         string           `json:"cabin_code"`
	VendorPreferences []string         `json:"vendor_preferences,omitempty"`
	PreferCombine     bool             `json:"prefer_combine"`
}

// ShoppingRequest is the wire-format body posted to the upstream
// flight-shopping API.
type ShoppingRequest struct {
	PointOfSale string           `json:"point_of_sale"`
	OriginDest  []OriginDest     `json:"origin_dest"`
	Pax         []Passenger      `json:"pax"`
	Criteria    ShoppingCriteria `json:"shopping_criteria"`
}
