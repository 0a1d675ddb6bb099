package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/rizkypratama/flightdesk/internal/models"
)

type BookingEvent struct {
	Type        string `json:"type"`
	ReferenceNo string `json:"reference_no"`
	Status      string `json:"status"`
	Airline     string `json:"airline,omitempty"`
	FlyDate     string `json:"fly_date,omitempty"`
	Route       string `json:"route,omitempty"`
	OccurredAt  string `json:"occurred_at"`
}

type Publisher interface {
	PublishBookingUpserted(ctx context.Context, rec models.BookingRecord) error
	Close() error
}

type Producer struct {
	writer *kafka.Writer
	topic  string
	now    func() time.Time
}

func NewProducer(brokers []string, topic string) *Producer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 50 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
	}

	return &Producer{writer: writer, topic: topic, now: time.Now}
}

func (p *Producer) PublishBookingUpserted(ctx context.Context, rec models.BookingRecord) error {
	event := BookingEvent{
		Type:        "booking_upserted",
		ReferenceNo: rec.ReferenceNo,
		Status:      string(rec.Status),
		Airline:     rec.Airline,
		FlyDate:     rec.FlyDate,
		Route:       rec.Route,
		OccurredAt:  p.now().UTC().Format(time.RFC3339),
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal booking event: %w", err)
	}

	message := kafka.Message{
		Topic: p.topic,
		Key:   []byte(rec.ReferenceNo),
		Value: data,
		Time:  p.now(),
	}

	if err := p.writer.WriteMessages(ctx, message); err != nil {
		return fmt.Errorf("write booking event: %w", err)
	}
	return nil
}

func (p *Producer) Close() error {
	return p.writer.Close()
}

// NoOpPublisher is used when event publishing is disabled.
type NoOpPublisher struct{}

func NewNoOpPublisher() *NoOpPublisher {
	return &NoOpPublisher{}
}

func (p *NoOpPublisher) PublishBookingUpserted(ctx context.Context, rec models.BookingRecord) error {
	return nil
}

func (p *NoOpPublisher) Close() error {
	return nil
}
