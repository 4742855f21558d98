package model

import (
	"errors"
	"time"

	"restaurant_manager/constants"
)

var (
	ErrGuestsExceedCapacity = errors.New("current guests cannot exceed table capacity")
	ErrInvalidCapacity      = errors.New("table capacity must be between 1 and 20")
)

type Table struct {
	DTO
	TableNumber      string             `gorm:"uniqueIndex;not null" json:"tableNumber"`
	Capacity         int                `gorm:"not null" json:"capacity"`
	Status           string             `gorm:"not null;default:available" json:"status"`
	Section          string             `gorm:"not null;default:indoor" json:"section"`
	CurrentOrderID   *uint              `json:"currentOrderId"`
	CurrentOrder     *Order             `gorm:"foreignKey:CurrentOrderID" json:"currentOrder,omitempty"`
	CurrentGuests    int                `gorm:"not null;default:0" json:"currentGuests"`
	AssignedWaiter   *uint              `json:"assignedWaiterId"`
	Waiter           *User              `gorm:"foreignKey:AssignedWaiter" json:"assignedWaiter,omitempty"`
	QRCode           string             `json:"qrCode"`
	IsActive         bool               `gorm:"not null;default:true" json:"isActive"`
	LastOrderTime    *time.Time         `json:"lastOrderTime"`
	TotalOrdersToday int                `gorm:"not null;default:0" json:"totalOrdersToday"`
	Reservations     []Reservation      `gorm:"foreignKey:TableID" json:"reservations"`
	MaintenanceLog   []MaintenanceEntry `gorm:"foreignKey:TableID" json:"maintenanceLog"`
}

type Tables []Table

type Reservation struct {
	DTO
	TableID         uint      `gorm:"index;not null" json:"tableId"`
	Date            time.Time `gorm:"type:date;not null" json:"date"`
	StartTime       time.Time `gorm:"not null" json:"startTime"`
	EndTime         time.Time `gorm:"not null" json:"endTime"`
	CustomerName    string    `json:"customerName"`
	CustomerPhone   string    `json:"customerPhone"`
	CustomerEmail   string    `json:"customerEmail"`
	GuestCount      int       `json:"guestCount"`
	Status          string    `gorm:"not null;default:pending" json:"status"`
	SpecialRequests string    `json:"specialRequests"`
	CreatedBy       *uint     `json:"createdBy,omitempty"`
}

type MaintenanceEntry struct {
	DTO
	TableID    uint       `gorm:"index;not null" json:"tableId"`
	Issue      string     `gorm:"not null" json:"issue"`
	Status     string     `gorm:"not null;default:reported" json:"status"`
	ReportedBy *uint      `json:"reportedBy,omitempty"`
	ResolvedBy *uint      `json:"resolvedBy,omitempty"`
	ResolvedAt *time.Time `json:"resolvedAt,omitempty"`
	Notes      string     `json:"notes"`
}

// Validate re-checks the table invariants. It runs on every save path,
// not only on creation.
func (t *Table) Validate() error {
	if t.Capacity < constants.MIN_TABLE_CAPACITY || t.Capacity > constants.MAX_TABLE_CAPACITY {
		return ErrInvalidCapacity
	}
	if t.CurrentGuests > t.Capacity {
		return ErrGuestsExceedCapacity
	}
	return nil
}

// IsAvailableAt reports whether the table can take a reservation in the
// given window. Windows are half-open: a reservation ending exactly when
// another starts does not conflict.
func (t *Table) IsAvailableAt(date, start, end time.Time) bool {
	if t.Status == constants.TABLE_MAINTENANCE {
		return false
	}
	for _, r := range t.Reservations {
		if r.Status != constants.RESERVATION_CONFIRMED {
			continue
		}
		if !sameDay(r.Date, date) {
			continue
		}
		if start.Before(r.EndTime) && end.After(r.StartTime) {
			return false
		}
	}
	return true
}

// Clear resets the table after payment: frees it, clears the active order
// and the guest count, and stamps the per-day activity counters. The
// counter is swept back to zero by the nightly scheduler. The caller
// persists the result.
func (t *Table) Clear(now time.Time) {
	t.Status = constants.TABLE_AVAILABLE
	t.CurrentOrderID = nil
	t.CurrentOrder = nil
	t.CurrentGuests = 0
	t.LastOrderTime = &now
	t.TotalOrdersToday++
}

// Occupy marks the table as taken by an order. A table under maintenance
// keeps its status: a guest scanning its QR must not override an open issue.
func (t *Table) Occupy(orderId uint) bool {
	if t.Status == constants.TABLE_MAINTENANCE {
		return false
	}
	if t.CurrentOrderID != nil {
		return false
	}
	t.Status = constants.TABLE_OCCUPIED
	t.CurrentOrderID = &orderId
	return true
}

// ReportIssue appends to the maintenance log and forces maintenance status.
func (t *Table) ReportIssue(issue string, reporterId *uint) {
	t.MaintenanceLog = append(t.MaintenanceLog, MaintenanceEntry{
		TableID:    t.ID,
		Issue:      issue,
		Status:     constants.ISSUE_REPORTED,
		ReportedBy: reporterId,
	})
	t.Status = constants.TABLE_MAINTENANCE
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

type CreateTableInput struct {
	TableNumber   string `json:"tableNumber" validate:"required,min=1,max=10"`
	Capacity      int    `json:"capacity" validate:"required,min=1,max=20"`
	Section       string `json:"section" validate:"omitempty,oneof=indoor outdoor balcony private rooftop"`
	CurrentGuests int    `json:"currentGuests" validate:"omitempty,min=0"`
}

type UpdateTableInput struct {
	TableNumber   *string `json:"tableNumber,omitempty" validate:"omitempty,min=1,max=10"`
	Capacity      *int    `json:"capacity,omitempty" validate:"omitempty,min=1,max=20"`
	Status        *string `json:"status,omitempty" validate:"omitempty,oneof=available occupied reserved maintenance"`
	Section       *string `json:"section,omitempty" validate:"omitempty,oneof=indoor outdoor balcony private rooftop"`
	CurrentGuests *int    `json:"currentGuests,omitempty" validate:"omitempty,min=0"`
	IsActive      *bool   `json:"isActive,omitempty"`
}

type AssignWaiterInput struct {
	WaiterId uint `json:"waiterId" validate:"required"`
}

type ReportIssueInput struct {
	Issue string `json:"issue" validate:"required,min=3,max=500"`
}

type ResolveIssueInput struct {
	Notes string `json:"notes" validate:"omitempty,max=500"`
}

type CreateReservationInput struct {
	Date            string `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime       string `json:"startTime" validate:"required"`
	EndTime         string `json:"endTime" validate:"required"`
	CustomerName    string `json:"customerName" validate:"required,min=2,max=100"`
	CustomerPhone   string `json:"customerPhone" validate:"omitempty,max=20"`
	CustomerEmail   string `json:"customerEmail" validate:"omitempty,email"`
	GuestCount      int    `json:"guestCount" validate:"required,min=1"`
	SpecialRequests string `json:"specialRequests" validate:"omitempty,max=500"`
}

type FilterTable struct {
	Pagination
	Status  *string `json:"status" query:"status"`
	Section *string `json:"section" query:"section"`
}
