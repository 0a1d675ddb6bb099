package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rizkypratama/flightdesk/internal/cache"
	"github.com/rizkypratama/flightdesk/internal/events"
	"github.com/rizkypratama/flightdesk/internal/models"
	"github.com/rizkypratama/flightdesk/internal/store"
)

type stubShopper struct {
	offers  []models.FlightOffer
	lastReq models.ShoppingRequest
}

func (s *stubShopper) Shop(ctx context.Context, req models.ShoppingRequest) ([]models.FlightOffer, error) {
	s.lastReq = req
	return s.offers, nil
}

type stubOrders struct {
	env models.OrderResponseEnvelope
}

func (s *stubOrders) GetOrder(ctx context.Context, referenceNo string) (models.OrderResponseEnvelope, error) {
	return s.env, nil
}

func sampleOffer(id, carrier string, price float64) models.FlightOffer {
	return models.FlightOffer{
		ID:          id,
		CarrierCode: carrier,
		Segments: []models.SegmentGroup{{
			Flights: []models.FlightSegment{{
				DepartureAirport: "CGK",
				ArrivalAirport:   "DPS",
				DepartureTime:    "2026-10-01T08:00:00Z",
				ArrivalTime:      "2026-10-01T10:00:00Z",
			}},
		}},
		Pricing: models.Pricing{Total: price, Currency: "IDR"},
	}
}

func TestSearchHandler_Search(t *testing.T) {
	shopper := &stubShopper{offers: []models.FlightOffer{
		sampleOffer("o1", "GA", 1500000),
		sampleOffer("o2", "QZ", 900000),
	}}
	h := NewSearchHandler(shopper, cache.NewNoOpCache(), nil, "ID", nil)

	body := `{
		"trip_type": "oneway",
		"from": {"iata": "CGK"},
		"to": {"iata": "DPS"},
		"departure_date": "2026-10-01",
		"travelers": {"adults": 1}
	}`
	rec := doJSON(t, h.Search, http.MethodPost, "/api/v1/flights/search", body)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.SearchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "ID", shopper.lastReq.PointOfSale)
	assert.Equal(t, models.ShoppingOneway, shopper.lastReq.Criteria.TripType)
	assert.Equal(t, 2, resp.Metadata.TotalResults)
	assert.False(t, resp.Metadata.CacheHit)
	assert.Equal(t, "IDR 900.000", resp.Metadata.CheapestFormatted)
	require.Len(t, resp.Options.Airlines, 2)
	// Default ordering is best value, so the cheap non-stop leads.
	assert.Equal(t, "o2", resp.Offers[0].ID)
}

func TestSearchHandler_SearchRejectsBadTripType(t *testing.T) {
	h := NewSearchHandler(&stubShopper{}, cache.NewNoOpCache(), nil, "ID", nil)

	rec := doJSON(t, h.Search, http.MethodPost, "/api/v1/flights/search", `{"trip_type": "teleport"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSearchHandler_Filter(t *testing.T) {
	h := NewSearchHandler(&stubShopper{}, cache.NewNoOpCache(), nil, "ID", nil)

	req := models.FilterRequest{
		Offers: []models.FlightOffer{
			sampleOffer("o1", "GA", 1500000),
			sampleOffer("o2", "QZ", 900000),
		},
		Filters: models.FlightFilters{Airlines: []string{"GA"}},
	}
	body, err := json.Marshal(req)
	require.NoError(t, err)

	rec := doJSON(t, h.Filter, http.MethodPost, "/api/v1/flights/filter", string(body))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.FilterResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	require.Equal(t, 1, resp.TotalResults)
	assert.Equal(t, "o1", resp.Offers[0].ID)
	// Facets describe the unfiltered result set.
	assert.Len(t, resp.Options.Airlines, 2)
}

func TestBookingHandler_SyncUpsertsRecord(t *testing.T) {
	orders := &stubOrders{env: models.OrderResponseEnvelope{
		Response: &models.OrderPayload{
			ReferenceNo: "FD-1001",
			Status:      "Confirmed",
			Timestamp:   "2026-08-20T09:30:00Z",
			PaxList:     []models.OrderPassenger{{PTC: "ADT", GivenName: "john", Surname: "doe"}},
			Price:       &models.OrderPrice{TotalAmount: 3250000, Currency: "IDR"},
		},
	}}
	bookingStore := store.NewMemoryStore()
	h := NewBookingHandler(orders, bookingStore, events.NewNoOpPublisher(), nil)

	rec := doJSON(t, h.Sync, http.MethodPost, "/api/v1/bookings/sync", `{"reference_no": "FD-1001"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.BookingSyncResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, models.StatusConfirmed, resp.Record.Status)
	assert.Equal(t, "JOHN DOE", resp.Record.Name)
	assert.Equal(t, "IDR 3.250.000", resp.FareFormatted)

	stored, err := bookingStore.Get(context.Background(), "FD-1001")
	require.NoError(t, err)
	assert.Equal(t, models.StatusConfirmed, stored.Status)
}

func TestBookingHandler_SyncRequiresReference(t *testing.T) {
	h := NewBookingHandler(&stubOrders{}, store.NewMemoryStore(), events.NewNoOpPublisher(), nil)

	rec := doJSON(t, h.Sync, http.MethodPost, "/api/v1/bookings/sync", `{}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBookingHandler_GetNotFound(t *testing.T) {
	h := NewBookingHandler(&stubOrders{}, store.NewMemoryStore(), events.NewNoOpPublisher(), nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/FD-404", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("ref")
	c.SetParamValues("FD-404")

	require.NoError(t, h.Get(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func doJSON(t *testing.T, fn echo.HandlerFunc, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	require.NoError(t, fn(e.NewContext(req, rec)))
	return rec
}
