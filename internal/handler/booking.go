package handler

import (
	"context"
	"errors"
	"net/http"

	charmlog "github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"

	"github.com/rizkypratama/flightdesk/internal/booking"
	"github.com/rizkypratama/flightdesk/internal/events"
	"github.com/rizkypratama/flightdesk/internal/models"
	"github.com/rizkypratama/flightdesk/internal/store"
	"github.com/rizkypratama/flightdesk/pkg/currency"
)

type OrderClient interface {
	GetOrder(ctx context.Context, referenceNo string) (models.OrderResponseEnvelope, error)
}

type BookingHandler struct {
	client OrderClient
	store  store.BookingStore
	events events.Publisher
	logger *charmlog.Logger
}

func NewBookingHandler(client OrderClient, s store.BookingStore, p events.Publisher, logger *charmlog.Logger) *BookingHandler {
	if logger == nil {
		logger = charmlog.Default()
	}
	return &BookingHandler{
		client: client,
		store:  s,
		events: p,
		logger: logger,
	}
}

// Sync fetches the order payload upstream, normalizes it into the
// canonical booking record and upserts it. Re-syncing the same reference
// is idempotent.
func (h *BookingHandler) Sync(c echo.Context) error {
	ctx := c.Request().Context()

	var req models.BookingSyncRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Failed to parse request body: " + err.Error(),
			Code:    http.StatusBadRequest,
		})
	}
	if req.ReferenceNo == "" {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "validation_error",
			Message: "reference_no is required",
			Code:    http.StatusBadRequest,
		})
	}

	env, err := h.client.GetOrder(ctx, req.ReferenceNo)
	if err != nil {
		h.logger.Error("order fetch failed", "reference_no", req.ReferenceNo, "err", err)
		return c.JSON(http.StatusBadGateway, models.ErrorResponse{
			Error:   "order_error",
			Message: "Failed to fetch order: " + err.Error(),
			Code:    http.StatusBadGateway,
		})
	}

	rec := booking.OrderToRecord(env, booking.RecordOptions{
		IssuedAt:       req.IssuedAt,
		CreatedBy:      req.SyncedBy,
		CreatedByEmail: req.SyncEmail,
	})
	// Legacy payloads sometimes omit their own reference number.
	if rec.ReferenceNo == "" {
		rec.ReferenceNo = req.ReferenceNo
	}

	rec, err = h.store.Upsert(ctx, rec)
	if err != nil {
		h.logger.Error("booking upsert failed", "reference_no", rec.ReferenceNo, "err", err)
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "store_error",
			Message: "Failed to persist booking: " + err.Error(),
			Code:    http.StatusInternalServerError,
		})
	}

	if err := h.events.PublishBookingUpserted(ctx, rec); err != nil {
		h.logger.Warn("booking event publish failed", "reference_no", rec.ReferenceNo, "err", err)
	}

	return c.JSON(http.StatusOK, models.BookingSyncResponse{
		Record:        rec,
		FareFormatted: formatFare(rec, env),
	})
}

func (h *BookingHandler) Get(c echo.Context) error {
	ctx := c.Request().Context()
	ref := c.Param("ref")

	rec, err := h.store.Get(ctx, ref)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error:   "not_found",
				Message: "No booking for reference " + ref,
				Code:    http.StatusNotFound,
			})
		}
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "store_error",
			Message: err.Error(),
			Code:    http.StatusInternalServerError,
		})
	}

	return c.JSON(http.StatusOK, rec)
}

func (h *BookingHandler) List(c echo.Context) error {
	records, err := h.store.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "store_error",
			Message: err.Error(),
			Code:    http.StatusInternalServerError,
		})
	}
	return c.JSON(http.StatusOK, records)
}

func formatFare(rec models.BookingRecord, env models.OrderResponseEnvelope) string {
	cur := ""
	if p := env.Payload(); p != nil && p.Price != nil {
		cur = p.Price.Currency
	}
	return currency.Format(rec.Fare, cur)
}
