package helper

import (
	"math"

	"restaurant_manager/constants"
	"restaurant_manager/model"
)

type BillTotals struct {
	Subtotal      float64 `json:"subtotal"`
	ServiceCharge float64 `json:"serviceCharge"`
	GST           float64 `json:"gst"`
	Discount      float64 `json:"discount"`
	GrandTotal    float64 `json:"grandTotal"`
}

// CalculateBill derives the bill totals from order item snapshots.
// Rounding policy: each derived amount (service charge, GST, grand total)
// is rounded half-up to 2 decimal places; line amounts are never rounded.
func CalculateBill(items []model.OrderItem, discount float64) BillTotals {
	var subtotal float64
	for _, it := range items {
		subtotal += it.Price * float64(it.Quantity)
	}

	serviceCharge := round2(subtotal * constants.SERVICE_CHARGE_RATE)
	gst := round2(subtotal * constants.GST_RATE)

	return BillTotals{
		Subtotal:      round2(subtotal),
		ServiceCharge: serviceCharge,
		GST:           gst,
		Discount:      discount,
		GrandTotal:    round2(subtotal + serviceCharge + gst - discount),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
