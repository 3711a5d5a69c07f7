// Package events publishes order lifecycle events to kafka. Publishing is
// best effort: the order is already committed when an event goes out, so a
// broker failure is logged and never surfaced to the customer.
package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/OtabekMamajonov/choyxona-bot/internal/models"
)

// Topic carries every order event.
const Topic = "order_events"

const publishTimeout = 5 * time.Second

// OrderRecorded is the envelope for a committed order. It carries totals
// only; customer and chat metadata stay out of the broker.
type OrderRecorded struct {
	EventID    string `json:"event_id"`
	Type       string `json:"type"`
	OrderID    uint   `json:"order_id"`
	Subtotal   int64  `json:"subtotal"`
	TotalDue   int64  `json:"total_due"`
	AmountPaid int64  `json:"amount_paid"`
	ChangeDue  int64  `json:"change_due"`
	CreatedAt  int64  `json:"created_at"`
}

func NewOrderRecorded(order models.Order) OrderRecorded {
	return OrderRecorded{
		EventID:    uuid.NewString(),
		Type:       "order_recorded",
		OrderID:    order.ID,
		Subtotal:   order.Subtotal,
		TotalDue:   order.TotalDue,
		AmountPaid: order.AmountPaid,
		ChangeDue:  order.ChangeDue,
		CreatedAt:  order.CreatedAt,
	}
}

type Producer struct {
	writer *kafka.Writer
	log    *slog.Logger
}

// NewProducer returns a producer for addr. An empty addr disables
// publishing and every method becomes a no-op.
func NewProducer(addr string, log *slog.Logger) *Producer {
	p := &Producer{log: log}
	if addr == "" {
		return p
	}
	p.writer = &kafka.Writer{
		Addr:                   kafka.TCP(addr),
		Topic:                  Topic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
		WriteTimeout:           publishTimeout,
	}
	return p
}

func (p *Producer) Enabled() bool { return p != nil && p.writer != nil }

// PublishOrderRecorded sends the order_recorded event, keyed by order id.
func (p *Producer) PublishOrderRecorded(ctx context.Context, order models.Order) {
	if !p.Enabled() {
		return
	}

	event := NewOrderRecorded(order)
	data, err := json.Marshal(event)
	if err != nil {
		p.log.Error("kafka: marshal event", "error", err, "order_id", order.ID)
		return
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatUint(uint64(order.ID), 10)),
		Value: data,
	})
	if err != nil {
		p.log.Error("kafka: publish order_recorded", "error", err, "order_id", order.ID)
		return
	}
	p.log.Debug("published order_recorded", "order_id", order.ID, "event_id", event.EventID)
}

func (p *Producer) Close() error {
	if !p.Enabled() {
		return nil
	}
	return p.writer.Close()
}
