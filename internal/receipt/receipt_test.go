package receipt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/OtabekMamajonov/choyxona-bot/internal/models"
)

func TestFormatSum(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0 so'm"},
		{500, "500 so'm"},
		{5000, "5 000 so'm"},
		{18000, "18 000 so'm"},
		{123456789, "123 456 789 so'm"},
		{-8000, "-8 000 so'm"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, FormatSum(tt.in))
	}
}

func sampleOrder() models.Order {
	return models.Order{
		ID:         7,
		Customer:   "Karim aka",
		Subtotal:   18000,
		TotalDue:   18000,
		AmountPaid: 20000,
		ChangeDue:  2000,
		Items: []models.OrderItem{
			{MenuID: "tea_green", Name: "Ko'k choy", Quantity: 2, UnitPrice: 5000, LineTotal: 10000},
			{MenuID: "somsa_lamb", Name: "Qo'y go'shtli somsa", Quantity: 1, UnitPrice: 8000, LineTotal: 8000},
		},
	}
}

func TestReceiptHTML(t *testing.T) {
	r := FromOrder(sampleOrder())
	out := r.HTML()

	require.True(t, strings.HasPrefix(out, "<b>Buyurtma qabul qilindi</b>"))
	require.Contains(t, out, "Buyurtma №7")
	require.Contains(t, out, "Mijoz: Karim aka")
	require.Contains(t, out, "• Ko'k choy × 2 = 10 000 so'm")
	require.Contains(t, out, "• Qo'y go'shtli somsa × 1 = 8 000 so'm")
	require.Contains(t, out, "Jami: 18 000 so'm")
	require.Contains(t, out, "To'lanishi kerak: 18 000 so'm")
	require.Contains(t, out, "Olingan to'lov: 20 000 so'm")
	require.Contains(t, out, "Qaytim: 2 000 so'm")
	require.NotContains(t, out, "Qarz:")
	require.NotContains(t, out, "Chegirma:")
}

func TestReceiptHTMLDebt(t *testing.T) {
	o := sampleOrder()
	o.AmountPaid = 10000
	o.ChangeDue = -8000

	out := FromOrder(o).HTML()
	require.Contains(t, out, "Qarz: 8 000 so'm")
	require.NotContains(t, out, "Qaytim:")
}

func TestReceiptHTMLDiscountAndNoCustomer(t *testing.T) {
	o := sampleOrder()
	o.Customer = ""
	o.DiscountAmount = 3000
	o.TotalDue = 15000
	o.AmountPaid = 15000
	o.ChangeDue = 0

	out := FromOrder(o).HTML()
	require.Contains(t, out, "Chegirma: −3 000 so'm")
	require.Contains(t, out, "To'lanishi kerak: 15 000 so'm")
	require.NotContains(t, out, "Mijoz:")
	require.NotContains(t, out, "Qaytim:")
	require.NotContains(t, out, "Qarz:")
}

func TestReceiptEscapesCustomer(t *testing.T) {
	o := sampleOrder()
	o.Customer = "<script>alert(1)</script>"

	out := FromOrder(o).HTML()
	require.NotContains(t, out, "<script>")
	require.Contains(t, out, "&lt;script&gt;")
}
