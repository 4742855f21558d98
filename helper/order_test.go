package helper

import (
	"errors"
	"strings"
	"testing"

	"restaurant_manager/model"
)

func menuFixture() map[uint]*model.MenuItem {
	return map[uint]*model.MenuItem{
		1: {DTO: model.DTO{ID: 1}, Name: "Paneer Tikka", Price: 150, IsAvailable: true},
		2: {DTO: model.DTO{ID: 2}, Name: "Butter Naan", Price: 50, IsAvailable: true},
		3: {DTO: model.DTO{ID: 3}, Name: "Seasonal Special", Price: 220, IsAvailable: false},
	}
}

func TestSnapshotOrderItems(t *testing.T) {
	menu := menuFixture()
	resolve := func(id uint) *model.MenuItem { return menu[id] }

	items, err := SnapshotOrderItems([]model.OrderItemInput{
		{MenuItemId: 1, Quantity: 1},
		{MenuItemId: 2, Quantity: 3},
	}, resolve)
	if err != nil {
		t.Fatalf("SnapshotOrderItems() error = %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	if items[0].Name != "Paneer Tikka" || items[0].Price != 150 || items[0].Quantity != 1 {
		t.Errorf("first snapshot = %+v", items[0])
	}
	if items[1].Name != "Butter Naan" || items[1].Price != 50 || items[1].Quantity != 3 {
		t.Errorf("second snapshot = %+v", items[1])
	}
}

func TestSnapshotOrderItemsImmutable(t *testing.T) {
	menu := menuFixture()
	resolve := func(id uint) *model.MenuItem { return menu[id] }

	items, err := SnapshotOrderItems([]model.OrderItemInput{{MenuItemId: 1, Quantity: 2}}, resolve)
	if err != nil {
		t.Fatalf("SnapshotOrderItems() error = %v", err)
	}

	// A later menu edit must not leak into the captured snapshot.
	menu[1].Price = 999
	menu[1].Name = "Renamed"

	if items[0].Price != 150 {
		t.Errorf("snapshot price changed to %v after menu edit", items[0].Price)
	}
	if items[0].Name != "Paneer Tikka" {
		t.Errorf("snapshot name changed to %q after menu edit", items[0].Name)
	}
}

func TestSnapshotOrderItemsAllOrNothing(t *testing.T) {
	menu := menuFixture()
	resolve := func(id uint) *model.MenuItem { return menu[id] }

	items, err := SnapshotOrderItems([]model.OrderItemInput{
		{MenuItemId: 1, Quantity: 1},
		{MenuItemId: 42, Quantity: 1},
		{MenuItemId: 2, Quantity: 1},
	}, resolve)
	if items != nil {
		t.Errorf("got partial items %v, want nil", items)
	}

	var notFound ErrMenuItemNotFound
	if !errors.As(err, &notFound) {
		t.Fatalf("error = %v, want ErrMenuItemNotFound", err)
	}
	if notFound.MenuItemId != 42 {
		t.Errorf("MenuItemId = %d, want 42", notFound.MenuItemId)
	}
}

func TestSnapshotOrderItemsUnavailable(t *testing.T) {
	menu := menuFixture()
	resolve := func(id uint) *model.MenuItem { return menu[id] }

	_, err := SnapshotOrderItems([]model.OrderItemInput{{MenuItemId: 3, Quantity: 1}}, resolve)

	var unavailable ErrMenuItemUnavailable
	if !errors.As(err, &unavailable) {
		t.Fatalf("error = %v, want ErrMenuItemUnavailable", err)
	}
	if unavailable.Name != "Seasonal Special" {
		t.Errorf("Name = %q, want Seasonal Special", unavailable.Name)
	}
}

func TestNewOrderCode(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code := NewOrderCode()
		if !strings.HasPrefix(code, "ORD-") {
			t.Fatalf("code %q missing prefix", code)
		}
		if len(code) != len("ORD-")+8 {
			t.Fatalf("code %q has wrong length", code)
		}
		if code != strings.ToUpper(code) {
			t.Fatalf("code %q not uppercase", code)
		}
		if seen[code] {
			t.Fatalf("duplicate code %q", code)
		}
		seen[code] = true
	}
}
