package helper

import (
	"math"
	"testing"

	"restaurant_manager/model"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCalculateBill(t *testing.T) {
	tests := []struct {
		name     string
		items    []model.OrderItem
		discount float64
		want     BillTotals
	}{
		{
			name: "single order",
			items: []model.OrderItem{
				{Name: "Paneer Tikka", Quantity: 1, Price: 150},
				{Name: "Butter Naan", Quantity: 2, Price: 50},
			},
			want: BillTotals{
				Subtotal:      250,
				ServiceCharge: 25,
				GST:           45,
				GrandTotal:    320,
			},
		},
		{
			name: "discount applied after charges",
			items: []model.OrderItem{
				{Name: "Thali", Quantity: 2, Price: 100},
			},
			discount: 20,
			want: BillTotals{
				Subtotal:      200,
				ServiceCharge: 20,
				GST:           36,
				Discount:      20,
				GrandTotal:    236,
			},
		},
		{
			name: "no items",
			want: BillTotals{},
		},
		{
			name: "fractional prices round per derived amount",
			items: []model.OrderItem{
				{Name: "Masala Chai", Quantity: 3, Price: 33.33},
			},
			want: BillTotals{
				Subtotal:      99.99,
				ServiceCharge: 10, // 9.999 rounds up
				GST:           18, // 17.9982 rounds up
				GrandTotal:    127.99,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateBill(tt.items, tt.discount)
			if !almostEqual(got.Subtotal, tt.want.Subtotal) {
				t.Errorf("Subtotal = %v, want %v", got.Subtotal, tt.want.Subtotal)
			}
			if !almostEqual(got.ServiceCharge, tt.want.ServiceCharge) {
				t.Errorf("ServiceCharge = %v, want %v", got.ServiceCharge, tt.want.ServiceCharge)
			}
			if !almostEqual(got.GST, tt.want.GST) {
				t.Errorf("GST = %v, want %v", got.GST, tt.want.GST)
			}
			if !almostEqual(got.Discount, tt.want.Discount) {
				t.Errorf("Discount = %v, want %v", got.Discount, tt.want.Discount)
			}
			if !almostEqual(got.GrandTotal, tt.want.GrandTotal) {
				t.Errorf("GrandTotal = %v, want %v", got.GrandTotal, tt.want.GrandTotal)
			}
		})
	}
}

func TestCalculateBillTotalLaw(t *testing.T) {
	items := []model.OrderItem{
		{Name: "Biryani", Quantity: 2, Price: 180.50},
		{Name: "Raita", Quantity: 1, Price: 40},
		{Name: "Lassi", Quantity: 3, Price: 59.99},
	}
	got := CalculateBill(items, 15)

	want := got.Subtotal + got.ServiceCharge + got.GST - got.Discount
	if !almostEqual(got.GrandTotal, math.Round(want*100)/100) {
		t.Errorf("GrandTotal = %v, want subtotal+service+gst-discount = %v", got.GrandTotal, want)
	}
}
