package model

import (
	"time"

	"restaurant_manager/constants"
)

type Order struct {
	DTO
	PublicCode    string      `gorm:"uniqueIndex;size:20" json:"publicCode"`
	TableID       uint        `gorm:"index;not null" json:"tableId"`
	Table         *Table      `gorm:"foreignKey:TableID" json:"table,omitempty"`
	Items         []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
	Status        string      `gorm:"not null;default:PENDING" json:"status"`
	Paid          bool        `gorm:"not null;default:false" json:"paid"`
	PaidAt        *time.Time  `json:"paidAt,omitempty"`
	PaymentMethod string      `json:"paymentMethod,omitempty"`
}

type Orders []Order

// OrderItem is an immutable snapshot of {name, unit price} captured from
// the menu at placement time. Later menu edits never touch existing bills.
type OrderItem struct {
	DTO
	OrderID  uint    `gorm:"index;not null" json:"orderId"`
	Name     string  `gorm:"not null" json:"name"`
	Quantity int     `gorm:"not null" json:"quantity"`
	Price    float64 `gorm:"not null" json:"price"`
}

// statusRank orders the kitchen pipeline. Unknown statuses rank -1.
func statusRank(status string) int {
	switch status {
	case constants.ORDER_PENDING:
		return 0
	case constants.ORDER_PREPARING:
		return 1
	case constants.ORDER_READY:
		return 2
	case constants.ORDER_SERVED:
		return 3
	}
	return -1
}

// ValidOrderStatus reports whether status is one of the pipeline states.
func ValidOrderStatus(status string) bool {
	return statusRank(status) >= 0
}

// CanTransition enforces the forward-only pipeline: forward jumps are
// allowed, regressions are not. Re-asserting the current status is a no-op
// and allowed.
func (o *Order) CanTransition(newStatus string) bool {
	to := statusRank(newStatus)
	if to < 0 {
		return false
	}
	return to >= statusRank(o.Status)
}

type OrderItemInput struct {
	MenuItemId uint `json:"menuItemId" validate:"required"`
	Quantity   int  `json:"quantity" validate:"required,min=1"`
}

type CreateOrderInput struct {
	TableNumber string           `json:"tableNumber" validate:"required"`
	Items       []OrderItemInput `json:"items" validate:"required,min=1,dive"`
}

type UpdateOrderStatusInput struct {
	Status string `json:"status" validate:"required"`
}

type FilterOrder struct {
	Pagination
	Status  *string `json:"status" query:"status"`
	TableId *uint   `json:"tableId" query:"tableId"`
	Paid    *bool   `json:"paid" query:"paid"`
}
