package models

import (
	"math"

	"github.com/rizkypratama/flightdesk/internal/alliance"
)

type StopBucket string

const (
	StopsNonStop StopBucket = "non-stop"
	StopsOne     StopBucket = "1-stop"
	StopsTwoPlus StopBucket = "2-plus"
)

type TimeSlot string

const (
	SlotEarlyMorning TimeSlot = "00-06"
	SlotMorning      TimeSlot = "06-12"
	SlotAfternoon    TimeSlot = "12-18"
	SlotEvening      TimeSlot = "18-24"
)

type LayoverBucket string

const (
	LayoverShort    LayoverBucket = "0-5h"
	LayoverMedium   LayoverBucket = "5-10h"
	LayoverLong     LayoverBucket = "10-15h"
	LayoverVeryLong LayoverBucket = "15h+"
)

// RangeFilter bounds a numeric predicate. Max of +Inf means "no upper
// bound"; a JSON payload with the max omitted decodes to 0, which the
// Active guard also treats as unconfigured.
type RangeFilter struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Active reports whether the range should exclude anything. A zeroed or
// infinite upper bound marks the filter as not configured.
func (r RangeFilter) Active() bool {
	if math.IsInf(r.Max, 0) || math.IsNaN(r.Max) || r.Max == 0 {
		return false
	}
	if math.IsInf(r.Min, 0) || math.IsNaN(r.Min) {
		return false
	}
	return r.Min <= r.Max
}

type FlightFilters struct {
	Stops           []StopBucket        `json:"stops,omitempty"`
	RefundableOnly  bool                `json:"refundable_only,omitempty"`
	PriceRange      RangeFilter         `json:"price_range"`
	DurationRange   RangeFilter         `json:"duration_range"`
	DepartureSlots  []TimeSlot          `json:"departure_time_slots,omitempty"`
	LayoverTime     []LayoverBucket     `json:"layover_time,omitempty"`
	Alliances       []alliance.Alliance `json:"alliances,omitempty"`
	Airlines        []string            `json:"airlines,omitempty"`
	LayoverAirports []string            `json:"layover_airports,omitempty"`
}

// DefaultFilters is the untouched UI state: every predicate inactive.
func DefaultFilters() FlightFilters {
	return FlightFilters{
		PriceRange:    RangeFilter{Min: 0, Max: math.Inf(1)},
		DurationRange: RangeFilter{Min: 0, Max: math.Inf(1)},
	}
}

type AirlineOption struct {
	Code     string  `json:"code"`
	Name     string  `json:"name,omitempty"`
	Count    int     `json:"count"`
	MinPrice float64 `json:"min_price"`
}

type AirportOption struct {
	Code     string  `json:"code"`
	Count    int     `json:"count"`
	MinPrice float64 `json:"min_price"`
}

type AllianceOption struct {
	Alliance alliance.Alliance `json:"alliance"`
	Count    int               `json:"count"`
}

type StopOption struct {
	Bucket StopBucket `json:"bucket"`
	Count  int        `json:"count"`
}

// FilterOptions is the facet set computed from one offer list.
type FilterOptions struct {
	PriceRange      RangeFilter      `json:"price_range"`
	DurationRange   RangeFilter      `json:"duration_range"`
	Airlines        []AirlineOption  `json:"airlines"`
	LayoverAirports []AirportOption  `json:"layover_airports"`
	Alliances       []AllianceOption `json:"alliance_options"`
	Stops           []StopOption     `json:"stops_options"`
}
