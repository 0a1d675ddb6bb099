package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/rizkypratama/flightdesk/internal/models"
)

// MemoryStore is the in-process fallback used when redis is disabled, and
// the store of choice in tests.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]models.BookingRecord
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records: make(map[string]models.BookingRecord),
		now:     time.Now,
	}
}

func (s *MemoryStore) Upsert(ctx context.Context, rec models.BookingRecord) (models.BookingRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.records[rec.ReferenceNo]; ok {
		rec = merge(existing, rec, s.now())
	}
	s.records[rec.ReferenceNo] = rec
	return rec, nil
}

func (s *MemoryStore) Get(ctx context.Context, referenceNo string) (*models.BookingRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[referenceNo]
	if !ok {
		return nil, ErrNotFound
	}
	return &rec, nil
}

func (s *MemoryStore) List(ctx context.Context) ([]models.BookingRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]models.BookingRecord, 0, len(s.records))
	for _, rec := range s.records {
		records = append(records, rec)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].ReferenceNo < records[j].ReferenceNo
	})
	return records, nil
}
