package pricing

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/OtabekMamajonov/choyxona-bot/internal/menu"
)

func testCatalogue(t *testing.T) *menu.Catalogue {
	t.Helper()
	c, err := menu.New([]menu.Item{
		{ID: "tea", Name: "Choy", Category: "Ichimliklar", Price: 5000},
		{ID: "samsa", Name: "Somsa", Category: "Somsa", Price: 8000},
		{ID: "chai_latte", Name: "Sutli choy", Category: "Ichimliklar", Price: 999},
	})
	require.NoError(t, err)
	return c
}

func TestPriceWithChange(t *testing.T) {
	cat := testCatalogue(t)

	priced, err := Price(cat, []Line{{"tea", 2}, {"samsa", 1}}, FlatDiscount(0), 20000)
	require.NoError(t, err)

	require.Equal(t, int64(18000), priced.Subtotal)
	require.Equal(t, int64(18000), priced.TotalDue)
	require.Equal(t, int64(2000), priced.ChangeDue)
	require.Equal(t, int64(20000), priced.AmountPaid)

	require.Len(t, priced.Lines, 2)
	require.Equal(t, PricedLine{MenuID: "tea", Name: "Choy", Quantity: 2, UnitPrice: 5000, LineTotal: 10000}, priced.Lines[0])
	require.Equal(t, PricedLine{MenuID: "samsa", Name: "Somsa", Quantity: 1, UnitPrice: 8000, LineTotal: 8000}, priced.Lines[1])
}

func TestDiscountLargerThanSubtotalFloorsAtZero(t *testing.T) {
	cat := testCatalogue(t)

	priced, err := Price(cat, []Line{{"tea", 1}}, FlatDiscount(10000), 0)
	require.NoError(t, err)

	require.Equal(t, int64(5000), priced.Subtotal)
	require.Equal(t, int64(10000), priced.DiscountAmount)
	require.Equal(t, int64(0), priced.TotalDue)
	require.Equal(t, int64(0), priced.ChangeDue)
}

func TestUnderpaymentIsNegativeChange(t *testing.T) {
	cat := testCatalogue(t)

	priced, err := Price(cat, []Line{{"tea", 2}, {"samsa", 1}}, FlatDiscount(0), 10000)
	require.NoError(t, err)
	require.Equal(t, int64(-8000), priced.ChangeDue)
}

func TestPercentDiscount(t *testing.T) {
	cat := testCatalogue(t)

	priced, err := Price(cat, []Line{{"tea", 2}, {"samsa", 1}}, PercentDiscount(25), 13500)
	require.NoError(t, err)
	require.Equal(t, int64(4500), priced.DiscountAmount)
	require.Equal(t, int64(13500), priced.TotalDue)
	require.Equal(t, int64(0), priced.ChangeDue)
}

func TestPercentDiscountRoundsDown(t *testing.T) {
	cat := testCatalogue(t)

	// 50% of 999 is 499.5 and must floor to 499.
	priced, err := Price(cat, []Line{{"chai_latte", 1}}, PercentDiscount(50), 500)
	require.NoError(t, err)
	require.Equal(t, int64(499), priced.DiscountAmount)
	require.Equal(t, int64(500), priced.TotalDue)
	require.Equal(t, int64(0), priced.ChangeDue)
}

func TestValidationFailures(t *testing.T) {
	cat := testCatalogue(t)

	tests := []struct {
		name     string
		lines    []Line
		discount Discount
		paid     int64
		wantErr  error
	}{
		{
			name:     "no lines",
			lines:    nil,
			discount: FlatDiscount(0),
			paid:     0,
			wantErr:  ErrEmptyOrder,
		},
		{
			name:     "unknown item",
			lines:    []Line{{"sushi", 1}},
			discount: FlatDiscount(0),
			paid:     0,
			wantErr:  ErrUnknownItem,
		},
		{
			name:     "zero quantity",
			lines:    []Line{{"tea", 0}},
			discount: FlatDiscount(0),
			paid:     0,
			wantErr:  ErrInvalidQuantity,
		},
		{
			name:     "negative quantity",
			lines:    []Line{{"tea", -3}},
			discount: FlatDiscount(0),
			paid:     0,
			wantErr:  ErrInvalidQuantity,
		},
		{
			name:     "negative flat discount",
			lines:    []Line{{"tea", 1}},
			discount: FlatDiscount(-1),
			paid:     0,
			wantErr:  ErrInvalidDiscount,
		},
		{
			name:     "negative percent discount",
			lines:    []Line{{"tea", 1}},
			discount: PercentDiscount(-1),
			paid:     0,
			wantErr:  ErrInvalidDiscount,
		},
		{
			name:     "percent discount over 100",
			lines:    []Line{{"tea", 1}},
			discount: PercentDiscount(101),
			paid:     0,
			wantErr:  ErrInvalidDiscount,
		},
		{
			name:     "negative payment",
			lines:    []Line{{"tea", 1}},
			discount: FlatDiscount(0),
			paid:     -100,
			wantErr:  ErrInvalidPayment,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Price(cat, tt.lines, tt.discount, tt.paid)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLineErrorNamesTheLine(t *testing.T) {
	cat := testCatalogue(t)

	_, err := Price(cat, []Line{{"tea", 1}, {"sushi", 2}}, FlatDiscount(0), 0)
	require.ErrorIs(t, err, ErrUnknownItem)

	var le *LineError
	require.True(t, errors.As(err, &le))
	require.Equal(t, 1, le.Index)
	require.Equal(t, "sushi", le.MenuID)
	require.Contains(t, err.Error(), "items[1]")
	require.Contains(t, err.Error(), "sushi")
}

func TestFullPercentDiscountIsFree(t *testing.T) {
	cat := testCatalogue(t)

	priced, err := Price(cat, []Line{{"samsa", 2}}, PercentDiscount(100), 0)
	require.NoError(t, err)
	require.Equal(t, int64(16000), priced.Subtotal)
	require.Equal(t, int64(16000), priced.DiscountAmount)
	require.Equal(t, int64(0), priced.TotalDue)
	require.Equal(t, int64(0), priced.ChangeDue)
}

func TestOverpaymentOnDiscountedOrder(t *testing.T) {
	cat := testCatalogue(t)

	priced, err := Price(cat, []Line{{"tea", 1}}, FlatDiscount(10000), 2000)
	require.NoError(t, err)
	require.Equal(t, int64(0), priced.TotalDue)
	require.Equal(t, int64(2000), priced.ChangeDue)
}
