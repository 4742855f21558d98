package model

import (
	"testing"

	"restaurant_manager/constants"
)

func TestValidOrderStatus(t *testing.T) {
	for _, status := range []string{
		constants.ORDER_PENDING,
		constants.ORDER_PREPARING,
		constants.ORDER_READY,
		constants.ORDER_SERVED,
	} {
		if !ValidOrderStatus(status) {
			t.Errorf("ValidOrderStatus(%q) = false", status)
		}
	}
	for _, status := range []string{"", "CANCELLED", "pending", "DONE"} {
		if ValidOrderStatus(status) {
			t.Errorf("ValidOrderStatus(%q) = true", status)
		}
	}
}

func TestOrderCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		want bool
	}{
		{"pending to preparing", constants.ORDER_PENDING, constants.ORDER_PREPARING, true},
		{"preparing to ready", constants.ORDER_PREPARING, constants.ORDER_READY, true},
		{"ready to served", constants.ORDER_READY, constants.ORDER_SERVED, true},
		{"skip ahead allowed", constants.ORDER_PENDING, constants.ORDER_SERVED, true},
		{"same status is a no-op", constants.ORDER_READY, constants.ORDER_READY, true},
		{"served cannot regress", constants.ORDER_SERVED, constants.ORDER_READY, false},
		{"ready cannot regress", constants.ORDER_READY, constants.ORDER_PENDING, false},
		{"preparing cannot regress", constants.ORDER_PREPARING, constants.ORDER_PENDING, false},
		{"unknown target rejected", constants.ORDER_PENDING, "CANCELLED", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order := Order{Status: tt.from}
			if got := order.CanTransition(tt.to); got != tt.want {
				t.Errorf("CanTransition(%q -> %q) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}
