// Package summary aggregates one day of orders into the /summary report.
package summary

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/OtabekMamajonov/choyxona-bot/internal/receipt"
	"github.com/OtabekMamajonov/choyxona-bot/internal/repo"
)

type Summary struct {
	Date         time.Time
	ReceiptCount int
	Revenue      int64
	Collected    int64
	Outstanding  int64
	ChangeGiven  int64
}

type Aggregator struct {
	repo *repo.OrderRepo
	loc  *time.Location
}

// New returns an aggregator whose notion of "day" is midnight to midnight
// in loc.
func New(r *repo.OrderRepo, loc *time.Location) *Aggregator {
	return &Aggregator{repo: r, loc: loc}
}

// Daily reports the day containing t. An empty day is a zero Summary, not
// an error.
func (a *Aggregator) Daily(ctx context.Context, t time.Time) (Summary, error) {
	t = t.In(a.loc)
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, a.loc)
	end := start.AddDate(0, 0, 1)

	orders, err := a.repo.QueryRange(ctx, start, end)
	if err != nil {
		return Summary{}, err
	}

	s := Summary{Date: start}
	for _, o := range orders {
		s.ReceiptCount++
		s.Revenue += o.TotalDue
		s.Collected += o.AmountPaid
		if diff := o.TotalDue - o.AmountPaid; diff > 0 {
			s.Outstanding += diff
		} else {
			s.ChangeGiven += -diff
		}
	}
	return s, nil
}

func (s Summary) HTML() string {
	lines := []string{
		"<b>Kunlik hisobot</b>",
		"Sana: " + s.Date.Format("2006-01-02"),
		"Buyurtmalar soni: " + strconv.Itoa(s.ReceiptCount),
		"Jami tushum: " + receipt.FormatSum(s.Revenue),
		"Olingan to'lovlar: " + receipt.FormatSum(s.Collected),
		"Qaytim berilgan: " + receipt.FormatSum(s.ChangeGiven),
		"Qarzdorlik: " + receipt.FormatSum(s.Outstanding),
	}
	return strings.Join(lines, "\n")
}
