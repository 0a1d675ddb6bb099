package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rizkypratama/flightdesk/internal/models"
)

func record(ref string) models.BookingRecord {
	pnr := "ABC123"
	return models.BookingRecord{
		ReferenceNo: ref,
		CreateDate:  "2026-08-20T09:30:00Z",
		Status:      models.StatusPending,
		PNR:         &pnr,
		Name:        "JOHN DOE",
		FlyDate:     "2026-09-15",
		Airline:     "GA",
		Fare:        3250000,
		Route:       "CGK-DPS",
		CreatedBy:   "agent.smith",
	}
}

func TestMemoryStore_UpsertAndGet(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	_, err := s.Upsert(ctx, record("FD-1"))
	require.NoError(t, err)

	got, err := s.Get(ctx, "FD-1")
	require.NoError(t, err)
	assert.Equal(t, "JOHN DOE", got.Name)
	assert.Nil(t, got.UpdatedAt)

	_, err = s.Get(ctx, "FD-404")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_UpsertMergesAndStampsUpdatedAt(t *testing.T) {
	s := NewMemoryStore()
	s.now = func() time.Time { return time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC) }
	ctx := context.Background()

	_, err := s.Upsert(ctx, record("FD-1"))
	require.NoError(t, err)

	// Re-sync with a sparser payload: the known fields win, the missing
	// ones keep their stored values.
	update := models.BookingRecord{
		ReferenceNo: "FD-1",
		Status:      models.StatusConfirmed,
		Name:        "–",
		Route:       "–",
	}
	merged, err := s.Upsert(ctx, update)
	require.NoError(t, err)

	assert.Equal(t, models.StatusConfirmed, merged.Status)
	assert.Equal(t, "JOHN DOE", merged.Name)
	assert.Equal(t, "CGK-DPS", merged.Route)
	assert.Equal(t, "GA", merged.Airline)
	assert.Equal(t, "2026-08-20T09:30:00Z", merged.CreateDate)
	require.NotNil(t, merged.PNR)
	assert.Equal(t, "ABC123", *merged.PNR)
	require.NotNil(t, merged.UpdatedAt)
	assert.Equal(t, "2026-08-29T12:00:00Z", *merged.UpdatedAt)
}

func TestMemoryStore_UpsertIdempotent(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	_, err := s.Upsert(ctx, record("FD-1"))
	require.NoError(t, err)
	_, err = s.Upsert(ctx, record("FD-1"))
	require.NoError(t, err)

	records, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestMemoryStore_ListSorted(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	for _, ref := range []string{"FD-3", "FD-1", "FD-2"} {
		_, err := s.Upsert(ctx, record(ref))
		require.NoError(t, err)
	}

	records, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "FD-1", records[0].ReferenceNo)
	assert.Equal(t, "FD-3", records[2].ReferenceNo)
}
