package filter

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/rizkypratama/flightdesk/internal/alliance"
	"github.com/rizkypratama/flightdesk/internal/models"
)

// Apply keeps the offers that pass every active predicate. The default
// filter state activates nothing, so Apply(offers, DefaultFilters()) is the
// identity over the offer list.
func Apply(offers []models.FlightOffer, f models.FlightFilters) []models.FlightOffer {
	result := make([]models.FlightOffer, 0, len(offers))
	for _, o := range offers {
		if matches(o, f) {
			result = append(result, o)
		}
	}
	return result
}

func matches(o models.FlightOffer, f models.FlightFilters) bool {
	if len(f.Stops) > 0 {
		if !containsStop(f.Stops, stopBucket(maxStops(o))) {
			return false
		}
	}

	if f.RefundableOnly && !o.Refundable {
		return false
	}

	if f.PriceRange.Active() {
		p := o.Pricing.DisplayPrice()
		if p < f.PriceRange.Min || p > f.PriceRange.Max {
			return false
		}
	}

	if f.DurationRange.Active() {
		d := float64(maxGroupDuration(o))
		if d < f.DurationRange.Min || d > f.DurationRange.Max {
			return false
		}
	}

	if len(f.DepartureSlots) > 0 {
		// Fail closed: an offer without a parseable departure timestamp is
		// excluded whenever a slot filter is active.
		t, ok := firstDeparture(o)
		if !ok {
			return false
		}
		if !containsSlot(f.DepartureSlots, slotFor(t.UTC().Hour())) {
			return false
		}
	}

	if len(f.LayoverTime) > 0 {
		// Fail open: offers without layovers bypass the bucket check.
		if maxLay, ok := maxLayover(o); ok {
			if !containsLayoverBucket(f.LayoverTime, layoverBucket(maxLay)) {
				return false
			}
		}
	}

	if len(f.Alliances) > 0 {
		a, ok := alliance.Lookup(o.CarrierCode)
		if !ok || !containsAlliance(f.Alliances, a) {
			return false
		}
	}

	if len(f.Airlines) > 0 && !containsFold(f.Airlines, o.CarrierCode) {
		return false
	}

	if len(f.LayoverAirports) > 0 && !hasLayoverAirport(o, f.LayoverAirports) {
		return false
	}

	return true
}

// maxStops classifies an offer by its worst leg: a roundtrip with a
// non-stop outbound and a 1-stop return counts as 1-stop.
func maxStops(o models.FlightOffer) int {
	stops := 0
	for _, g := range o.Segments {
		if g.Stops > stops {
			stops = g.Stops
		}
	}
	return stops
}

func stopBucket(stops int) models.StopBucket {
	switch {
	case stops <= 0:
		return models.StopsNonStop
	case stops == 1:
		return models.StopsOne
	default:
		return models.StopsTwoPlus
	}
}

// groupDuration recomputes a leg's duration from its endpoint timestamps,
// falling back to the provider-supplied total only when the computed value
// is non-positive.
func groupDuration(g models.SegmentGroup) int {
	if len(g.Flights) == 0 {
		return g.TotalDuration
	}
	dep, okDep := parseTime(g.Flights[0].DepartureTime)
	arr, okArr := parseTime(g.Flights[len(g.Flights)-1].ArrivalTime)
	if okDep && okArr {
		if d := int(math.Round(arr.Sub(dep).Minutes())); d > 0 {
			return d
		}
	}
	return g.TotalDuration
}

func maxGroupDuration(o models.FlightOffer) int {
	d := 0
	for _, g := range o.Segments {
		if gd := groupDuration(g); gd > d {
			d = gd
		}
	}
	return d
}

func firstDeparture(o models.FlightOffer) (time.Time, bool) {
	if len(o.Segments) == 0 || len(o.Segments[0].Flights) == 0 {
		return time.Time{}, false
	}
	return parseTime(o.Segments[0].Flights[0].DepartureTime)
}

func slotFor(hour int) models.TimeSlot {
	switch {
	case hour < 6:
		return models.SlotEarlyMorning
	case hour < 12:
		return models.SlotMorning
	case hour < 18:
		return models.SlotAfternoon
	default:
		return models.SlotEvening
	}
}

func maxLayover(o models.FlightOffer) (int, bool) {
	maxMin, found := 0, false
	for _, g := range o.Segments {
		for _, s := range g.Flights {
			if s.Layover == nil {
				continue
			}
			found = true
			if s.Layover.Duration > maxMin {
				maxMin = s.Layover.Duration
			}
		}
	}
	return maxMin, found
}

func layoverBucket(minutes int) models.LayoverBucket {
	switch {
	case minutes < 300:
		return models.LayoverShort
	case minutes < 600:
		return models.LayoverMedium
	case minutes < 900:
		return models.LayoverLong
	default:
		return models.LayoverVeryLong
	}
}

func hasLayoverAirport(o models.FlightOffer, codes []string) bool {
	for _, g := range o.Segments {
		for _, s := range g.Flights {
			if s.Layover != nil && containsFold(codes, s.Layover.Airport) {
				return true
			}
		}
	}
	return false
}

func containsStop(list []models.StopBucket, b models.StopBucket) bool {
	for _, v := range list {
		if v == b {
			return true
		}
	}
	return false
}

func containsSlot(list []models.TimeSlot, s models.TimeSlot) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func containsLayoverBucket(list []models.LayoverBucket, b models.LayoverBucket) bool {
	for _, v := range list {
		if v == b {
			return true
		}
	}
	return false
}

func containsAlliance(list []alliance.Alliance, a alliance.Alliance) bool {
	for _, v := range list {
		if v == a {
			return true
		}
	}
	return false
}

func containsFold(list []string, s string) bool {
	for _, v := range list {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}

var timeFormats = []string{
	time.RFC3339,
	"2006-01-02T15:04:05-0700",
	"2006-01-02T15:04:05Z",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
}

func parseTime(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, format := range timeFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// OfferStops exposes the max-stops classification for ranking.
func OfferStops(o models.FlightOffer) int {
	return maxStops(o)
}

// OfferDuration exposes the offer's maximum leg duration for ranking.
func OfferDuration(o models.FlightOffer) int {
	return maxGroupDuration(o)
}

// SortOffers orders offers in place for presentation. Unknown keys fall
// back to price ascending.
func SortOffers(offers []models.FlightOffer, sortBy, sortOrder string) []models.FlightOffer {
	if len(offers) == 0 {
		return offers
	}

	ascending := strings.ToLower(sortOrder) != "desc"

	less := func(a, b models.FlightOffer) bool {
		return a.Pricing.DisplayPrice() < b.Pricing.DisplayPrice()
	}

	switch strings.ToLower(sortBy) {
	case "duration":
		less = func(a, b models.FlightOffer) bool {
			return maxGroupDuration(a) < maxGroupDuration(b)
		}
	case "departure":
		less = func(a, b models.FlightOffer) bool {
			at, aok := firstDeparture(a)
			bt, bok := firstDeparture(b)
			if aok != bok {
				return aok
			}
			return at.Before(bt)
		}
	case "stops":
		less = func(a, b models.FlightOffer) bool {
			return maxStops(a) < maxStops(b)
		}
	case "best_value":
		less = func(a, b models.FlightOffer) bool {
			return a.BestValueScore < b.BestValueScore
		}
	}

	sort.SliceStable(offers, func(i, j int) bool {
		if ascending {
			return less(offers[i], offers[j])
		}
		return less(offers[j], offers[i])
	})

	return offers
}
