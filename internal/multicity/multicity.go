package multicity

import "github.com/rizkypratama/flightdesk/internal/models"

// CityInfo is what the airport lookup collaborator resolves an IATA code to.
type CityInfo struct {
	City        string
	CountryCode string
}

type CityLookup interface {
	GetCityInfo(iataCode string) *CityInfo
}

// IsDomestic reports whether every distinct airport referenced across the
// form's segments resolves to the same country. An unresolvable airport
// forces false.
func IsDomestic(form models.SearchForm, lookup CityLookup) bool {
	codes := distinctAirports(form.Segments)
	if len(codes) == 0 || lookup == nil {
		return false
	}

	country := ""
	for _, code := range codes {
		info := lookup.GetCityInfo(code)
		if info == nil || info.CountryCode == "" {
			return false
		}
		if country == "" {
			country = info.CountryCode
			continue
		}
		if info.CountryCode != country {
			return false
		}
	}
	return true
}

// DisplayAsTwoOneway gates the special presentation of a two-leg domestic
// multicity trip as a pair of one-way bookings. Display hint only, never a
// validation shortcut.
func DisplayAsTwoOneway(form models.SearchForm, lookup CityLookup) bool {
	return len(form.Segments) == 2 && IsDomestic(form, lookup)
}

func distinctAirports(segments []models.FormSegment) []string {
	seen := make(map[string]bool)
	var codes []string
	for _, seg := range segments {
		for _, code := range []string{seg.From.IATA, seg.To.IATA} {
			if code == "" || seen[code] {
				continue
			}
			seen[code] = true
			codes = append(codes, code)
		}
	}
	return codes
}
