// Package pricing re-prices submitted order lines against the catalogue.
// Unit prices always come from the catalogue, never from the client.
package pricing

import (
	"errors"
	"fmt"

	"github.com/OtabekMamajonov/choyxona-bot/internal/menu"
)

var (
	ErrEmptyOrder      = errors.New("empty order")
	ErrUnknownItem     = errors.New("unknown menu item")
	ErrInvalidQuantity = errors.New("invalid quantity")
	ErrInvalidDiscount = errors.New("invalid discount")
	ErrInvalidPayment  = errors.New("invalid payment")
)

type DiscountKind string

const (
	DiscountFlat    DiscountKind = "flat"
	DiscountPercent DiscountKind = "percent"
)

// Discount is a tagged variant: a flat amount in so'm, or a percentage of
// the subtotal in [0, 100].
type Discount struct {
	Kind  DiscountKind
	Value int64
}

func FlatDiscount(v int64) Discount    { return Discount{Kind: DiscountFlat, Value: v} }
func PercentDiscount(v int64) Discount { return Discount{Kind: DiscountPercent, Value: v} }

// amount resolves the discount against a subtotal. Percent discounts round
// down to a whole so'm.
func (d Discount) amount(subtotal int64) int64 {
	if d.Kind == DiscountPercent {
		return subtotal * d.Value / 100
	}
	return d.Value
}

func (d Discount) validate() error {
	switch d.Kind {
	case DiscountFlat:
		if d.Value < 0 {
			return fmt.Errorf("%w: flat discount cannot be negative", ErrInvalidDiscount)
		}
	case DiscountPercent:
		if d.Value < 0 || d.Value > 100 {
			return fmt.Errorf("%w: percent discount must be between 0 and 100", ErrInvalidDiscount)
		}
	default:
		return fmt.Errorf("%w: unknown discount kind %q", ErrInvalidDiscount, d.Kind)
	}
	return nil
}

// Line is one submitted order row. The quantity is the client's; the price
// is not.
type Line struct {
	MenuID   string
	Quantity int
}

type PricedLine struct {
	MenuID    string
	Name      string
	Quantity  int
	UnitPrice int64
	LineTotal int64
}

type PricedOrder struct {
	Lines          []PricedLine
	Subtotal       int64
	Discount       Discount
	DiscountAmount int64
	TotalDue       int64
	AmountPaid     int64
	ChangeDue      int64
}

// LineError reports which submitted line failed and why.
type LineError struct {
	Index  int
	MenuID string
	Err    error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("items[%d] (%s): %v", e.Index, e.MenuID, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }

// Price resolves every line against the catalogue and computes the totals:
// subtotal, discounted total due (floored at zero) and signed change due,
// where a negative change is an outstanding balance. It performs no I/O;
// a non-nil error means nothing may be persisted.
func Price(cat *menu.Catalogue, lines []Line, d Discount, amountPaid int64) (PricedOrder, error) {
	if len(lines) == 0 {
		return PricedOrder{}, fmt.Errorf("%w: at least one item is required", ErrEmptyOrder)
	}
	if amountPaid < 0 {
		return PricedOrder{}, fmt.Errorf("%w: amount paid cannot be negative", ErrInvalidPayment)
	}
	if err := d.validate(); err != nil {
		return PricedOrder{}, err
	}

	priced := PricedOrder{
		Lines:      make([]PricedLine, 0, len(lines)),
		Discount:   d,
		AmountPaid: amountPaid,
	}
	for i, ln := range lines {
		if ln.Quantity <= 0 {
			return PricedOrder{}, &LineError{
				Index:  i,
				MenuID: ln.MenuID,
				Err:    fmt.Errorf("%w: quantity must be greater than 0", ErrInvalidQuantity),
			}
		}
		item, err := cat.Lookup(ln.MenuID)
		if err != nil {
			return PricedOrder{}, &LineError{Index: i, MenuID: ln.MenuID, Err: ErrUnknownItem}
		}

		lineTotal := item.Price * int64(ln.Quantity)
		priced.Lines = append(priced.Lines, PricedLine{
			MenuID:    item.ID,
			Name:      item.Name,
			Quantity:  ln.Quantity,
			UnitPrice: item.Price,
			LineTotal: lineTotal,
		})
		priced.Subtotal += lineTotal
	}

	priced.DiscountAmount = d.amount(priced.Subtotal)
	priced.TotalDue = priced.Subtotal - priced.DiscountAmount
	if priced.TotalDue < 0 {
		priced.TotalDue = 0
	}
	priced.ChangeDue = amountPaid - priced.TotalDue

	return priced, nil
}
