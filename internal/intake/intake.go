// Package intake turns raw web app payloads into stored orders. The bridge
// is the only write path: parse, re-price, append, then publish.
package intake

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/OtabekMamajonov/choyxona-bot/internal/events"
	"github.com/OtabekMamajonov/choyxona-bot/internal/menu"
	"github.com/OtabekMamajonov/choyxona-bot/internal/metrics"
	"github.com/OtabekMamajonov/choyxona-bot/internal/models"
	"github.com/OtabekMamajonov/choyxona-bot/internal/pricing"
	"github.com/OtabekMamajonov/choyxona-bot/internal/receipt"
	"github.com/OtabekMamajonov/choyxona-bot/internal/repo"
)

// ErrInvalidPayload marks payloads that could not be decoded into an order
// request.
var ErrInvalidPayload = errors.New("invalid payload")

// Meta is the transport identity of the submitting chat.
type Meta struct {
	ChatID   int64
	Username string
}

type Bridge struct {
	menu     *menu.Catalogue
	repo     *repo.OrderRepo
	producer *events.Producer
	log      *slog.Logger
}

func New(cat *menu.Catalogue, r *repo.OrderRepo, p *events.Producer, log *slog.Logger) *Bridge {
	return &Bridge{menu: cat, repo: r, producer: p, log: log}
}

type itemRequest struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
}

type orderRequest struct {
	Customer     string        `json:"customer"`
	Items        []itemRequest `json:"items"`
	Discount     int64         `json:"discount"`
	DiscountType string        `json:"discount_type"`
	Paid         int64         `json:"paid"`
}

// parsePayload decodes the form payload. Unknown keys are ignored; a
// missing discount_type means flat, matching forms that predate percent
// discounts.
func parsePayload(raw []byte) (*orderRequest, error) {
	var req orderRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	req.Customer = strings.TrimSpace(req.Customer)

	switch req.DiscountType {
	case "", string(pricing.DiscountFlat), string(pricing.DiscountPercent):
	default:
		return nil, fmt.Errorf("%w: discount_type must be %q or %q",
			ErrInvalidPayload, pricing.DiscountFlat, pricing.DiscountPercent)
	}
	return &req, nil
}

func (r *orderRequest) lines() []pricing.Line {
	lines := make([]pricing.Line, 0, len(r.Items))
	for _, it := range r.Items {
		lines = append(lines, pricing.Line{MenuID: it.ID, Quantity: it.Quantity})
	}
	return lines
}

func (r *orderRequest) discount() pricing.Discount {
	if r.DiscountType == string(pricing.DiscountPercent) {
		return pricing.PercentDiscount(r.Discount)
	}
	return pricing.FlatDiscount(r.Discount)
}

// Submit prices and records one submission. Every validation failure
// surfaces before any write; a storage failure means the order was not
// recorded and must not be reported as success.
func (b *Bridge) Submit(ctx context.Context, raw []byte, meta Meta) (receipt.Receipt, error) {
	req, err := parsePayload(raw)
	if err != nil {
		metrics.OrderFailures.WithLabelValues("invalid_payload").Inc()
		return receipt.Receipt{}, err
	}

	priced, err := pricing.Price(b.menu, req.lines(), req.discount(), req.Paid)
	if err != nil {
		metrics.OrderFailures.WithLabelValues(failureReason(err)).Inc()
		return receipt.Receipt{}, err
	}

	order := buildOrder(priced, req.Customer, meta)
	if _, err := b.repo.Append(ctx, order); err != nil {
		metrics.OrderFailures.WithLabelValues("storage").Inc()
		b.log.Error("order append failed", "error", err, "chat_id", meta.ChatID)
		return receipt.Receipt{}, err
	}

	b.producer.PublishOrderRecorded(ctx, *order)
	metrics.OrdersRecorded.Inc()
	b.log.Info("order recorded",
		"order_id", order.ID,
		"chat_id", meta.ChatID,
		"lines", len(order.Items),
		"total_due", order.TotalDue,
		"amount_paid", order.AmountPaid,
		"change_due", order.ChangeDue,
	)

	return receipt.FromOrder(*order), nil
}

func buildOrder(p pricing.PricedOrder, customer string, meta Meta) *models.Order {
	order := &models.Order{
		ChatID:         meta.ChatID,
		Username:       meta.Username,
		Customer:       customer,
		Subtotal:       p.Subtotal,
		DiscountType:   string(p.Discount.Kind),
		DiscountValue:  p.Discount.Value,
		DiscountAmount: p.DiscountAmount,
		TotalDue:       p.TotalDue,
		AmountPaid:     p.AmountPaid,
		ChangeDue:      p.ChangeDue,
		Items:          make([]models.OrderItem, 0, len(p.Lines)),
	}
	for _, ln := range p.Lines {
		order.Items = append(order.Items, models.OrderItem{
			MenuID:    ln.MenuID,
			Name:      ln.Name,
			Quantity:  ln.Quantity,
			UnitPrice: ln.UnitPrice,
			LineTotal: ln.LineTotal,
		})
	}
	return order
}

// failureReason folds a submission error into a metric label.
func failureReason(err error) string {
	switch {
	case errors.Is(err, pricing.ErrEmptyOrder):
		return "empty_order"
	case errors.Is(err, pricing.ErrUnknownItem):
		return "unknown_item"
	case errors.Is(err, pricing.ErrInvalidQuantity):
		return "invalid_quantity"
	case errors.Is(err, pricing.ErrInvalidDiscount):
		return "invalid_discount"
	case errors.Is(err, pricing.ErrInvalidPayment):
		return "invalid_payment"
	default:
		return "other"
	}
}
