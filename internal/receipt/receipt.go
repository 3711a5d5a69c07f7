// Package receipt renders order confirmations as Telegram HTML. A receipt
// is a value composed from the stored order at reply time, not a persisted
// record of its own.
package receipt

import (
	"fmt"
	"html"
	"strconv"
	"strings"

	"github.com/OtabekMamajonov/choyxona-bot/internal/models"
)

// FormatSum renders an amount of so'm with thousands separated by spaces,
// e.g. 18000 -> "18 000 so'm".
func FormatSum(amount int64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}
	digits := strconv.FormatInt(amount, 10)

	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(d)
	}
	if neg {
		return "-" + b.String() + " so'm"
	}
	return b.String() + " so'm"
}

type Line struct {
	Name      string
	Quantity  int
	LineTotal int64
}

type Receipt struct {
	OrderID        uint
	Customer       string
	Lines          []Line
	Subtotal       int64
	DiscountAmount int64
	TotalDue       int64
	AmountPaid     int64
	ChangeDue      int64
}

func FromOrder(o models.Order) Receipt {
	r := Receipt{
		OrderID:        o.ID,
		Customer:       o.Customer,
		Lines:          make([]Line, 0, len(o.Items)),
		Subtotal:       o.Subtotal,
		DiscountAmount: o.DiscountAmount,
		TotalDue:       o.TotalDue,
		AmountPaid:     o.AmountPaid,
		ChangeDue:      o.ChangeDue,
	}
	for _, it := range o.Items {
		r.Lines = append(r.Lines, Line{Name: it.Name, Quantity: it.Quantity, LineTotal: it.LineTotal})
	}
	return r
}

// HTML renders the confirmation sent back to the chat. A positive change
// is rendered as Qaytim, a negative one as Qarz; zero shows neither.
func (r Receipt) HTML() string {
	lines := []string{
		"<b>Buyurtma qabul qilindi</b>",
		"Buyurtma №" + strconv.FormatUint(uint64(r.OrderID), 10),
	}
	if r.Customer != "" {
		lines = append(lines, "Mijoz: "+html.EscapeString(r.Customer))
	}
	for _, ln := range r.Lines {
		lines = append(lines, fmt.Sprintf("• %s × %d = %s", ln.Name, ln.Quantity, FormatSum(ln.LineTotal)))
	}
	lines = append(lines, "Jami: "+FormatSum(r.Subtotal))
	if r.DiscountAmount != 0 {
		lines = append(lines, "Chegirma: −"+FormatSum(r.DiscountAmount))
	}
	lines = append(lines, "To'lanishi kerak: "+FormatSum(r.TotalDue))
	lines = append(lines, "Olingan to'lov: "+FormatSum(r.AmountPaid))
	if r.ChangeDue > 0 {
		lines = append(lines, "Qaytim: "+FormatSum(r.ChangeDue))
	}
	if r.ChangeDue < 0 {
		lines = append(lines, "Qarz: "+FormatSum(-r.ChangeDue))
	}
	return strings.Join(lines, "\n")
}
