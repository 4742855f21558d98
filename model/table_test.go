package model

import (
	"testing"
	"time"

	"restaurant_manager/constants"
)

func TestTableValidate(t *testing.T) {
	tests := []struct {
		name    string
		table   Table
		wantErr error
	}{
		{"valid", Table{Capacity: 4, CurrentGuests: 3}, nil},
		{"full table is valid", Table{Capacity: 4, CurrentGuests: 4}, nil},
		{"guests exceed capacity", Table{Capacity: 4, CurrentGuests: 5}, ErrGuestsExceedCapacity},
		{"capacity zero", Table{Capacity: 0}, ErrInvalidCapacity},
		{"capacity above max", Table{Capacity: 21}, ErrInvalidCapacity},
		{"capacity at bounds", Table{Capacity: 20, CurrentGuests: 20}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.table.Validate(); err != tt.wantErr {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func reservedTable(status string) Table {
	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	return Table{
		Capacity: 4,
		Status:   constants.TABLE_AVAILABLE,
		Reservations: []Reservation{
			{
				Date:      day,
				StartTime: day.Add(10 * time.Hour),
				EndTime:   day.Add(11 * time.Hour),
				Status:    status,
			},
		},
	}
}

func TestTableIsAvailableAt(t *testing.T) {
	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	otherDay := day.AddDate(0, 0, 1)

	tests := []struct {
		name       string
		table      Table
		start, end time.Duration
		date       time.Time
		want       bool
	}{
		{"back to back does not conflict", reservedTable(constants.RESERVATION_CONFIRMED), 11 * time.Hour, 12 * time.Hour, day, true},
		{"ends at existing start does not conflict", reservedTable(constants.RESERVATION_CONFIRMED), 9 * time.Hour, 10 * time.Hour, day, true},
		{"overlap conflicts", reservedTable(constants.RESERVATION_CONFIRMED), 10*time.Hour + 30*time.Minute, 11*time.Hour + 30*time.Minute, day, false},
		{"containing window conflicts", reservedTable(constants.RESERVATION_CONFIRMED), 9 * time.Hour, 12 * time.Hour, day, false},
		{"identical window conflicts", reservedTable(constants.RESERVATION_CONFIRMED), 10 * time.Hour, 11 * time.Hour, day, false},
		{"cancelled reservation ignored", reservedTable(constants.RESERVATION_CANCELLED), 10 * time.Hour, 11 * time.Hour, day, true},
		{"pending reservation ignored", reservedTable(constants.RESERVATION_PENDING), 10 * time.Hour, 11 * time.Hour, day, true},
		{"other day does not conflict", reservedTable(constants.RESERVATION_CONFIRMED), 10 * time.Hour, 11 * time.Hour, otherDay, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := time.Date(tt.date.Year(), tt.date.Month(), tt.date.Day(), 0, 0, 0, 0, time.UTC)
			got := tt.table.IsAvailableAt(tt.date, base.Add(tt.start), base.Add(tt.end))
			if got != tt.want {
				t.Errorf("IsAvailableAt() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTableIsAvailableAtMaintenance(t *testing.T) {
	table := Table{Capacity: 4, Status: constants.TABLE_MAINTENANCE}
	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	if table.IsAvailableAt(day, day.Add(10*time.Hour), day.Add(11*time.Hour)) {
		t.Error("maintenance table reported available")
	}
}

func TestTableClear(t *testing.T) {
	orderId := uint(7)
	table := Table{
		Capacity:         4,
		Status:           constants.TABLE_OCCUPIED,
		CurrentOrderID:   &orderId,
		CurrentGuests:    3,
		TotalOrdersToday: 2,
	}
	now := time.Now()

	table.Clear(now)

	if table.Status != constants.TABLE_AVAILABLE {
		t.Errorf("Status = %q, want available", table.Status)
	}
	if table.CurrentOrderID != nil {
		t.Error("CurrentOrderID not cleared")
	}
	if table.CurrentGuests != 0 {
		t.Errorf("CurrentGuests = %d, want 0", table.CurrentGuests)
	}
	if table.TotalOrdersToday != 3 {
		t.Errorf("TotalOrdersToday = %d, want 3", table.TotalOrdersToday)
	}
	if table.LastOrderTime == nil || !table.LastOrderTime.Equal(now) {
		t.Errorf("LastOrderTime = %v, want %v", table.LastOrderTime, now)
	}
}

func TestTableOccupy(t *testing.T) {
	otherOrder := uint(3)

	tests := []struct {
		name  string
		table Table
		want  bool
	}{
		{"available table taken", Table{Capacity: 4, Status: constants.TABLE_AVAILABLE}, true},
		{"reserved table taken", Table{Capacity: 4, Status: constants.TABLE_RESERVED}, true},
		{"maintenance status survives a scanned QR", Table{Capacity: 4, Status: constants.TABLE_MAINTENANCE}, false},
		{"open order keeps the table", Table{Capacity: 4, Status: constants.TABLE_OCCUPIED, CurrentOrderID: &otherOrder}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := tt.table.Status
			got := tt.table.Occupy(9)
			if got != tt.want {
				t.Fatalf("Occupy() = %v, want %v", got, tt.want)
			}
			if tt.want {
				if tt.table.Status != constants.TABLE_OCCUPIED {
					t.Errorf("Status = %q, want occupied", tt.table.Status)
				}
				if tt.table.CurrentOrderID == nil || *tt.table.CurrentOrderID != 9 {
					t.Errorf("CurrentOrderID = %v, want 9", tt.table.CurrentOrderID)
				}
			} else if tt.table.Status != before {
				t.Errorf("Status changed from %q to %q", before, tt.table.Status)
			}
		})
	}
}

func TestTableReportIssue(t *testing.T) {
	reporter := uint(3)
	table := Table{Capacity: 4, Status: constants.TABLE_AVAILABLE}

	table.ReportIssue("wobbly leg", &reporter)

	if table.Status != constants.TABLE_MAINTENANCE {
		t.Errorf("Status = %q, want maintenance", table.Status)
	}
	if len(table.MaintenanceLog) != 1 {
		t.Fatalf("MaintenanceLog has %d entries, want 1", len(table.MaintenanceLog))
	}
	entry := table.MaintenanceLog[0]
	if entry.Issue != "wobbly leg" || entry.Status != constants.ISSUE_REPORTED || entry.ReportedBy != &reporter {
		t.Errorf("entry = %+v", entry)
	}
}
