package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rizkypratama/flightdesk/internal/alliance"
	"github.com/rizkypratama/flightdesk/internal/models"
)

func TestExtractOptions_EmptyDefaults(t *testing.T) {
	got := ExtractOptions(nil)

	assert.Equal(t, models.RangeFilter{Min: 0, Max: 100000}, got.PriceRange)
	assert.Equal(t, models.RangeFilter{Min: 0, Max: 2400}, got.DurationRange)
	assert.Empty(t, got.Airlines)
	assert.Empty(t, got.LayoverAirports)
	assert.Empty(t, got.Alliances)
	assert.Empty(t, got.Stops)

	// Facet slices are present-but-empty, not nil, so the UI always gets
	// arrays.
	assert.NotNil(t, got.Airlines)
	assert.NotNil(t, got.Stops)
}

func TestExtractOptions_PriceRangePrefersGross(t *testing.T) {
	gross := 1500000.0
	offers := []models.FlightOffer{
		{CarrierCode: "GA", Pricing: models.Pricing{Total: 1000000, Gross: &gross}},
		{CarrierCode: "SQ", Pricing: models.Pricing{Total: 2000000}},
	}

	got := ExtractOptions(offers)

	assert.Equal(t, 1500000.0, got.PriceRange.Min)
	assert.Equal(t, 2000000.0, got.PriceRange.Max)
}

func TestExtractOptions_DurationExcludesCorrupt(t *testing.T) {
	offers := []models.FlightOffer{
		offer("o1", "GA", 100, group(0, "2026-10-01T08:00:00Z", "2026-10-01T10:00:00Z")),
		// 8 days between the endpoints: corrupt, excluded.
		offer("o2", "GA", 100, group(0, "2026-10-01T08:00:00Z", "2026-10-09T08:00:00Z")),
	}

	got := ExtractOptions(offers)

	assert.Equal(t, models.RangeFilter{Min: 120, Max: 120}, got.DurationRange)
}

func TestExtractOptions_DurationDefaultWhenAllCorrupt(t *testing.T) {
	offers := []models.FlightOffer{
		offer("o1", "GA", 100, group(0, "2026-10-01T08:00:00Z", "2026-10-09T08:00:00Z")),
	}

	got := ExtractOptions(offers)

	assert.Equal(t, models.RangeFilter{Min: 0, Max: 2400}, got.DurationRange)
}

func TestExtractOptions_AirlineFacetsSortedByCount(t *testing.T) {
	offers := []models.FlightOffer{
		offer("o1", "SQ", 2500000),
		offer("o2", "GA", 1200000),
		offer("o3", "GA", 1400000),
	}

	got := ExtractOptions(offers)

	require.Len(t, got.Airlines, 2)
	assert.Equal(t, "GA", got.Airlines[0].Code)
	assert.Equal(t, 2, got.Airlines[0].Count)
	assert.Equal(t, 1200000.0, got.Airlines[0].MinPrice)
	assert.Equal(t, "SQ", got.Airlines[1].Code)
}

func TestExtractOptions_LayoverAirportsSortedByPrice(t *testing.T) {
	layoverGroup := func(airport string) models.SegmentGroup {
		return models.SegmentGroup{
			Stops: 1,
			Flights: []models.FlightSegment{{
				DepartureAirport: "CGK", ArrivalAirport: airport,
				DepartureTime: "2026-10-01T08:00:00Z", ArrivalTime: "2026-10-01T10:00:00Z",
				Layover: &models.Layover{Airport: airport, Duration: 120},
			}},
		}
	}

	offers := []models.FlightOffer{
		offer("o1", "SQ", 3000000, layoverGroup("SIN")),
		offer("o2", "MH", 1500000, layoverGroup("KUL")),
		offer("o3", "SQ", 2000000, layoverGroup("SIN")),
	}

	got := ExtractOptions(offers)

	require.Len(t, got.LayoverAirports, 2)
	// Cheapest layover option first, opposite of the airline ordering.
	assert.Equal(t, "KUL", got.LayoverAirports[0].Code)
	assert.Equal(t, 1500000.0, got.LayoverAirports[0].MinPrice)
	assert.Equal(t, "SIN", got.LayoverAirports[1].Code)
	assert.Equal(t, 2, got.LayoverAirports[1].Count)
	assert.Equal(t, 2000000.0, got.LayoverAirports[1].MinPrice)
}

func TestExtractOptions_AllianceDeclarationOrder(t *testing.T) {
	offers := []models.FlightOffer{
		offer("o1", "GA", 100), // SkyTeam
		offer("o2", "SQ", 100), // Star Alliance
		offer("o3", "QZ", 100), // unaffiliated
	}

	got := ExtractOptions(offers)

	require.Len(t, got.Alliances, 2)
	assert.Equal(t, alliance.StarAlliance, got.Alliances[0].Alliance)
	assert.Equal(t, alliance.SkyTeam, got.Alliances[1].Alliance)
}

func TestExtractOptions_StopBucketsFixedOrderNonZeroOnly(t *testing.T) {
	offers := []models.FlightOffer{
		offer("o1", "GA", 100, models.SegmentGroup{Stops: 0}),
		offer("o2", "GA", 100, models.SegmentGroup{Stops: 0}, models.SegmentGroup{Stops: 2}),
	}

	got := ExtractOptions(offers)

	require.Len(t, got.Stops, 2)
	assert.Equal(t, models.StopsNonStop, got.Stops[0].Bucket)
	assert.Equal(t, 1, got.Stops[0].Count)
	assert.Equal(t, models.StopsTwoPlus, got.Stops[1].Bucket)
	assert.Equal(t, 1, got.Stops[1].Count)
}
