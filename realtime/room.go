package realtime

import (
	"fmt"
	"strconv"
	"strings"
)

// Room is a typed broadcast group key. Role rooms carry the bare role name;
// table rooms are prefixed so the two namespaces can never collide.
type Room string

const tableRoomPrefix = "table:"

func RoleRoom(role string) Room {
	return Room(role)
}

func TableRoom(tableId uint) Room {
	return Room(fmt.Sprintf("%s%d", tableRoomPrefix, tableId))
}

// ParseRoom validates a client-supplied room name against the fixed role
// set. Table rooms are parsed separately via ParseTableRoom.
func ParseRoom(name string, roles []string) (Room, bool) {
	for _, r := range roles {
		if name == r {
			return RoleRoom(name), true
		}
	}
	return "", false
}

// ParseTableRoom accepts either a bare table id or a full "table:<id>" key.
func ParseTableRoom(name string) (Room, bool) {
	raw := strings.TrimPrefix(name, tableRoomPrefix)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return "", false
	}
	return TableRoom(uint(id)), true
}
