package shopping

import (
	"fmt"
	"strings"

	"github.com/rizkypratama/flightdesk/internal/models"
)

// BuildRequest translates a UI search form into the upstream wire request.
// It is deterministic and total: incomplete optional data shrinks the
// request instead of failing it.
func BuildRequest(form models.SearchForm, pointOfSale string) models.ShoppingRequest {
	return models.ShoppingRequest{
		PointOfSale: pointOfSale,
		OriginDest:  buildOriginDest(form),
		Pax:         buildPaxList(form.Travelers),
		Criteria: models.ShoppingCriteria{
			TripType:          tripType(form.TripType),
			CabinCode:         cabinCode(form.Travelers.TravelClass),
			VendorPreferences: vendorPreferences(form.PreferredAirline),
			// Combined-fare pricing only applies to circle trips.
			PreferCombine: form.TripType == models.TripTypeMulticity,
		},
	}
}

func tripType(t models.TripType) models.ShoppingTripType {
	switch t {
	case models.TripTypeRoundtrip:
		return models.ShoppingReturn
	case models.TripTypeMulticity:
		return models.ShoppingCircle
	default:
		return models.ShoppingOneway
	}
}

func buildOriginDest(form models.SearchForm) []models.OriginDest {
	if form.TripType == models.TripTypeMulticity {
		legs := make([]models.OriginDest, 0, len(form.Segments))
		for _, seg := range form.Segments {
			// Incomplete segments are dropped, not rejected.
			if seg.From.IATA == "" || seg.To.IATA == "" || seg.DepartureDate == "" {
				continue
			}
			legs = append(legs, leg(seg.From.IATA, seg.To.IATA, seg.DepartureDate))
		}
		return legs
	}

	legs := []models.OriginDest{leg(form.From.IATA, form.To.IATA, form.DepartureDate)}
	if form.TripType == models.TripTypeRoundtrip &&
		form.To.IATA != "" && form.From.IATA != "" && form.ReturnDate != "" {
		legs = append(legs, leg(form.To.IATA, form.From.IATA, form.ReturnDate))
	}
	return legs
}

func leg(from, to, date string) models.OriginDest {
	return models.OriginDest{
		Departure: models.DeparturePoint{AirportCode: from, Date: date},
		Arrival:   models.ArrivalPoint{AirportCode: to},
	}
}

const defaultChildAge = 11

func buildPaxList(t models.TravelerData) []models.Passenger {
	pax := make([]models.Passenger, 0, t.Adults+t.Children+t.Infants)
	n := 0

	next := func(ptc string) models.Passenger {
		n++
		return models.Passenger{ID: fmt.Sprintf("PAX%d", n), PTC: ptc}
	}

	for i := 0; i < t.Adults; i++ {
		pax = append(pax, next("ADT"))
	}
	for i := 0; i < t.Children; i++ {
		age := defaultChildAge
		if i < len(t.ChildrenAges) {
			age = t.ChildrenAges[i]
		}
		ptc := "CHD"
		if age < 12 {
			ptc = fmt.Sprintf("C%02d", age)
		}
		pax = append(pax, next(ptc))
	}
	for i := 0; i < t.Infants; i++ {
		pax = append(pax, next("INF"))
	}
	return pax
}

func cabinCode(class string) string {
	switch strings.ToLower(class) {
	case "premium_economy", "premium economy", "premium":
		return "W"
	case "business":
		return "C"
	case "first":
		return "F"
	default:
		return "Y"
	}
}

func vendorPreferences(preferred string) []string {
	if preferred == "" {
		return nil
	}
	return []string{preferred}
}
