package multicity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rizkypratama/flightdesk/internal/models"
)

type mapLookup map[string]string

func (m mapLookup) GetCityInfo(iata string) *CityInfo {
	cc, ok := m[iata]
	if !ok {
		return nil
	}
	return &CityInfo{CountryCode: cc}
}

var indonesian = mapLookup{"CGK": "ID", "DPS": "ID", "SUB": "ID", "SIN": "SG"}

func form(segments ...models.FormSegment) models.SearchForm {
	return models.SearchForm{TripType: models.TripTypeMulticity, Segments: segments}
}

func seg(from, to string) models.FormSegment {
	return models.FormSegment{
		From:          models.AirportRef{IATA: from},
		To:            models.AirportRef{IATA: to},
		DepartureDate: "2026-10-01",
	}
}

func TestIsDomestic(t *testing.T) {
	assert.True(t, IsDomestic(form(seg("CGK", "DPS"), seg("DPS", "SUB")), indonesian))
	assert.False(t, IsDomestic(form(seg("CGK", "SIN")), indonesian))
}

func TestIsDomestic_FailsClosed(t *testing.T) {
	// Unresolvable airport forces false.
	assert.False(t, IsDomestic(form(seg("CGK", "XXX")), indonesian))
	// No segments as well.
	assert.False(t, IsDomestic(form(), indonesian))
	assert.False(t, IsDomestic(form(seg("CGK", "DPS")), nil))
}

func TestDisplayAsTwoOneway(t *testing.T) {
	two := form(seg("CGK", "DPS"), seg("DPS", "CGK"))
	assert.True(t, DisplayAsTwoOneway(two, indonesian))

	one := form(seg("CGK", "DPS"))
	assert.False(t, DisplayAsTwoOneway(one, indonesian))

	three := form(seg("CGK", "DPS"), seg("DPS", "SUB"), seg("SUB", "CGK"))
	assert.False(t, DisplayAsTwoOneway(three, indonesian))

	international := form(seg("CGK", "SIN"), seg("SIN", "CGK"))
	assert.False(t, DisplayAsTwoOneway(international, indonesian))
}
