package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rizkypratama/flightdesk/internal/models"
)

const bookingsKey = "bookings"

// RedisStore keeps booking records in one redis hash, field per reference
// number.
type RedisStore struct {
	client *redis.Client
	now    func() time.Time
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client, now: time.Now}
}

func (s *RedisStore) Upsert(ctx context.Context, rec models.BookingRecord) (models.BookingRecord, error) {
	if existing, err := s.Get(ctx, rec.ReferenceNo); err == nil {
		rec = merge(*existing, rec, s.now())
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return models.BookingRecord{}, err
	}
	if err := s.client.HSet(ctx, bookingsKey, rec.ReferenceNo, data).Err(); err != nil {
		return models.BookingRecord{}, err
	}
	return rec, nil
}

func (s *RedisStore) Get(ctx context.Context, referenceNo string) (*models.BookingRecord, error) {
	data, err := s.client.HGet(ctx, bookingsKey, referenceNo).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var rec models.BookingRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *RedisStore) List(ctx context.Context) ([]models.BookingRecord, error) {
	fields, err := s.client.HGetAll(ctx, bookingsKey).Result()
	if err != nil {
		return nil, err
	}

	records := make([]models.BookingRecord, 0, len(fields))
	for _, data := range fields {
		var rec models.BookingRecord
		if err := json.Unmarshal([]byte(data), &rec); err != nil {
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}
