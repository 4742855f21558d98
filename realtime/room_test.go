package realtime

import "testing"

func TestRoleAndTableRoomsNeverCollide(t *testing.T) {
	if RoleRoom("table") == TableRoom(1) {
		t.Error("role room collided with table room")
	}
	if TableRoom(5) != Room("table:5") {
		t.Errorf("TableRoom(5) = %q", TableRoom(5))
	}
}

func TestParseRoom(t *testing.T) {
	roles := []string{"admin", "waiter", "kitchen"}

	tests := []struct {
		name   string
		input  string
		want   Room
		wantOk bool
	}{
		{"known role", "waiter", Room("waiter"), true},
		{"unknown role", "chef", "", false},
		{"empty", "", "", false},
		{"table key rejected here", "table:3", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseRoom(tt.input, roles)
			if got != tt.want || ok != tt.wantOk {
				t.Errorf("ParseRoom(%q) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.wantOk)
			}
		})
	}
}

func TestParseTableRoom(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   Room
		wantOk bool
	}{
		{"bare id", "7", Room("table:7"), true},
		{"full key", "table:7", Room("table:7"), true},
		{"not a number", "seven", "", false},
		{"negative", "-1", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseTableRoom(tt.input)
			if got != tt.want || ok != tt.wantOk {
				t.Errorf("ParseTableRoom(%q) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.wantOk)
			}
		})
	}
}
