package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"

	"github.com/rizkypratama/flightdesk/internal/cache"
	"github.com/rizkypratama/flightdesk/internal/filter"
	"github.com/rizkypratama/flightdesk/internal/models"
	"github.com/rizkypratama/flightdesk/internal/multicity"
	"github.com/rizkypratama/flightdesk/internal/ranking"
	"github.com/rizkypratama/flightdesk/internal/shopping"
	"github.com/rizkypratama/flightdesk/pkg/currency"
)

type ShoppingClient interface {
	Shop(ctx context.Context, req models.ShoppingRequest) ([]models.FlightOffer, error)
}

type SearchHandler struct {
	client      ShoppingClient
	cache       cache.Cache
	lookup      multicity.CityLookup
	pointOfSale string
	logger      *charmlog.Logger
}

func NewSearchHandler(client ShoppingClient, c cache.Cache, lookup multicity.CityLookup, pointOfSale string, logger *charmlog.Logger) *SearchHandler {
	if logger == nil {
		logger = charmlog.Default()
	}
	return &SearchHandler{
		client:      client,
		cache:       c,
		lookup:      lookup,
		pointOfSale: pointOfSale,
		logger:      logger,
	}
}

func (h *SearchHandler) Search(c echo.Context) error {
	startTime := time.Now()
	ctx := c.Request().Context()

	var form models.SearchForm
	if err := c.Bind(&form); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Failed to parse request body: " + err.Error(),
			Code:    http.StatusBadRequest,
		})
	}

	if err := form.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
			Code:    http.StatusBadRequest,
		})
	}

	req := shopping.BuildRequest(form, h.pointOfSale)

	offers, cacheHit := h.cache.Get(ctx, req)
	if !cacheHit {
		var err error
		offers, err = h.client.Shop(ctx, req)
		if err != nil {
			h.logger.Error("shopping request failed", "err", err)
			return c.JSON(http.StatusBadGateway, models.ErrorResponse{
				Error:   "search_error",
				Message: "Failed to search flights: " + err.Error(),
				Code:    http.StatusBadGateway,
			})
		}
		_ = h.cache.Set(ctx, req, offers)
	}

	options := filter.ExtractOptions(offers)

	offers = ranking.CalculateScores(offers)
	offers = filter.SortOffers(offers, "best_value", "asc")

	return c.JSON(http.StatusOK, models.SearchResponse{
		Request: req,
		Metadata: models.SearchMetadata{
			TotalResults:      len(offers),
			SearchTimeMs:      time.Since(startTime).Milliseconds(),
			CacheHit:          cacheHit,
			CheapestFormatted: cheapestFormatted(offers, options),
		},
		Offers:  offers,
		Options: options,
	})
}

// Filter re-applies predicates over an offer list the UI already holds.
// The engine is pure, so every filter change is a fresh call.
func (h *SearchHandler) Filter(c echo.Context) error {
	var req models.FilterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Failed to parse request body: " + err.Error(),
			Code:    http.StatusBadRequest,
		})
	}

	filtered := filter.Apply(req.Offers, req.Filters)
	if strings.EqualFold(req.SortBy, "best_value") {
		filtered = ranking.CalculateScores(filtered)
	}
	filtered = filter.SortOffers(filtered, req.SortBy, req.SortOrder)

	return c.JSON(http.StatusOK, models.FilterResponse{
		TotalResults: len(filtered),
		Offers:       filtered,
		Options:      filter.ExtractOptions(req.Offers),
	})
}

// DisplayHints exposes the multicity presentation predicates to the UI.
func (h *SearchHandler) DisplayHints(c echo.Context) error {
	var form models.SearchForm
	if err := c.Bind(&form); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Failed to parse request body: " + err.Error(),
			Code:    http.StatusBadRequest,
		})
	}

	return c.JSON(http.StatusOK, map[string]bool{
		"is_domestic":           multicity.IsDomestic(form, h.lookup),
		"display_as_two_oneway": multicity.DisplayAsTwoOneway(form, h.lookup),
	})
}

func cheapestFormatted(offers []models.FlightOffer, options models.FilterOptions) string {
	if len(offers) == 0 {
		return ""
	}
	return currency.Format(options.PriceRange.Min, offers[0].Pricing.Currency)
}

func HealthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}
