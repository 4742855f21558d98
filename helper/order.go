package helper

import (
	"fmt"
	"strings"

	"restaurant_manager/model"

	"github.com/google/uuid"
)

// MenuResolver looks up a menu item by id; nil means not found.
type MenuResolver func(menuItemId uint) *model.MenuItem

// ErrMenuItemNotFound names the first unresolvable item id so the caller can
// surface it. Resolution is all-or-nothing: one miss and no order is created.
type ErrMenuItemNotFound struct {
	MenuItemId uint
}

func (e ErrMenuItemNotFound) Error() string {
	return fmt.Sprintf("menu item not found: %d", e.MenuItemId)
}

type ErrMenuItemUnavailable struct {
	Name string
}

func (e ErrMenuItemUnavailable) Error() string {
	return fmt.Sprintf("menu item is not available: %s", e.Name)
}

// SnapshotOrderItems resolves the requested items against the menu and
// captures an immutable {name, quantity, price} snapshot at call time.
func SnapshotOrderItems(inputs []model.OrderItemInput, resolve MenuResolver) ([]model.OrderItem, error) {
	items := make([]model.OrderItem, 0, len(inputs))
	for _, in := range inputs {
		menuItem := resolve(in.MenuItemId)
		if menuItem == nil {
			return nil, ErrMenuItemNotFound{MenuItemId: in.MenuItemId}
		}
		if !menuItem.IsAvailable {
			return nil, ErrMenuItemUnavailable{Name: menuItem.Name}
		}
		items = append(items, model.OrderItem{
			Name:     menuItem.Name,
			Quantity: in.Quantity,
			Price:    menuItem.Price,
		})
	}
	return items, nil
}

// NewOrderCode returns a short public order code, e.g. ORD-1A2B3C4D.
func NewOrderCode() string {
	id := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return "ORD-" + id[:8]
}
