package store

import (
	"context"
	"errors"
	"time"

	"github.com/rizkypratama/flightdesk/internal/models"
)

var ErrNotFound = errors.New("booking not found")

// BookingStore persists canonical booking records keyed by reference
// number. Upsert is idempotent: re-syncing the same order merges into the
// existing record instead of duplicating it.
type BookingStore interface {
	Upsert(ctx context.Context, rec models.BookingRecord) (models.BookingRecord, error)
	Get(ctx context.Context, referenceNo string) (*models.BookingRecord, error)
	List(ctx context.Context) ([]models.BookingRecord, error)
}

// merge folds an incoming record into an existing one. Incoming values win
// whenever they are known; fields the new payload could not resolve keep
// their stored values.
func merge(existing, incoming models.BookingRecord, now time.Time) models.BookingRecord {
	out := incoming

	if out.CreateDate == "" {
		out.CreateDate = existing.CreateDate
	}
	if out.PNR == nil {
		out.PNR = existing.PNR
	}
	if out.Name == "" || out.Name == "–" {
		if existing.Name != "" {
			out.Name = existing.Name
		}
	}
	if out.FlyDate == "" {
		out.FlyDate = existing.FlyDate
	}
	if out.Airline == "" {
		out.Airline = existing.Airline
	}
	if out.Issued == "" {
		out.Issued = existing.Issued
	}
	if out.PassengerType == "" {
		out.PassengerType = existing.PassengerType
	}
	if out.Route == "" || out.Route == "–" {
		if existing.Route != "" {
			out.Route = existing.Route
		}
	}
	if out.CreatedBy == "" {
		out.CreatedBy = existing.CreatedBy
	}
	if out.CreatedByEmail == nil {
		out.CreatedByEmail = existing.CreatedByEmail
	}

	ts := now.UTC().Format(time.RFC3339)
	out.UpdatedAt = &ts
	return out
}
