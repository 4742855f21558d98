package handler

import (
	"encoding/json"
	"log"

	"restaurant_manager/constants"
	"restaurant_manager/helper"
	"restaurant_manager/model"
	"restaurant_manager/realtime"

	"github.com/gofiber/contrib/websocket"
)

// clientMessage is what subscribers send upstream. The realtime channel is
// subscribe-only: clients join or leave rooms, all domain events flow down.
type clientMessage struct {
	Action  string `json:"action"`
	Room    string `json:"room"`
	TableId string `json:"tableId"`
}

var staffRoles = []string{
	constants.ROLE_SUPERADMIN,
	constants.ROLE_ADMIN,
	constants.ROLE_MANAGER,
	constants.ROLE_STAFF,
	constants.ROLE_WAITER,
	constants.ROLE_KITCHEN,
	constants.ROLE_CASHIER,
}

// ServeWebsocket runs the read loop for one realtime connection. A fresh
// connection belongs to no room; every membership is an explicit join.
// Role rooms need a matching authenticated account, table rooms are open to
// guests. On any read error the connection is dropped from all rooms.
func ServeWebsocket(c *websocket.Conn) {
	var user *model.User
	if u, ok := c.Locals("user").(*model.User); ok {
		user = u
	}

	defer func() {
		hub.Drop(c)
		c.Close()
	}()

	for {
		_, raw, err := c.ReadMessage()
		if err != nil {
			return
		}

		var msg clientMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			log.Printf("websocket: bad client message: %v", err)
			continue
		}

		switch msg.Action {
		case "join-room":
			room, ok := realtime.ParseRoom(msg.Room, staffRoles)
			if !ok {
				continue
			}
			if !helper.Authorize(user, msg.Room, constants.ROLE_ADMIN) {
				continue
			}
			hub.Join(room, c)
		case "leave-room":
			if room, ok := realtime.ParseRoom(msg.Room, staffRoles); ok {
				hub.Leave(room, c)
			}
		case "join-table":
			if room, ok := realtime.ParseTableRoom(msg.TableId); ok {
				hub.Join(room, c)
			}
		case "leave-table":
			if room, ok := realtime.ParseTableRoom(msg.TableId); ok {
				hub.Leave(room, c)
			}
		}
	}
}
