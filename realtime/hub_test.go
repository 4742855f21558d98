package realtime

import (
	"encoding/json"
	"errors"
	"testing"
)

// fakeConn records frames written to it and can be told to fail.
type fakeConn struct {
	frames []string
	fail   bool
	closed bool
}

func (f *fakeConn) WriteMessage(messageType int, data []byte) error {
	if f.fail {
		return errors.New("write on closed connection")
	}
	f.frames = append(f.frames, string(data))
	return nil
}

func (f *fakeConn) Close() error {
	f.closed = true
	return nil
}

func (f *fakeConn) lastEvent(t *testing.T) string {
	t.Helper()
	if len(f.frames) == 0 {
		t.Fatal("no frames written")
	}
	var frame struct {
		Event string `json:"event"`
	}
	if err := json.Unmarshal([]byte(f.frames[len(f.frames)-1]), &frame); err != nil {
		t.Fatalf("bad frame %q: %v", f.frames[len(f.frames)-1], err)
	}
	return frame.Event
}

func TestHubRoleRoomDelivery(t *testing.T) {
	hub := NewHub(nil)
	kitchen := &fakeConn{}
	waiter := &fakeConn{}
	hub.Join(RoleRoom("kitchen"), kitchen)
	hub.Join(RoleRoom("waiter"), waiter)

	hub.BroadcastToRole("kitchen", "order:new", map[string]any{"orderId": 1})

	if got := kitchen.lastEvent(t); got != "order:new" {
		t.Errorf("kitchen got event %q", got)
	}
	if len(waiter.frames) != 0 {
		t.Errorf("waiter received %d frames, want 0", len(waiter.frames))
	}
}

func TestHubNoMembershipBeforeJoin(t *testing.T) {
	hub := NewHub(nil)
	conn := &fakeConn{}

	hub.BroadcastToRole("kitchen", "order:new", nil)
	hub.BroadcastGlobal("menu-update", nil)

	if len(conn.frames) != 0 {
		t.Errorf("unjoined connection received %d frames", len(conn.frames))
	}
}

func TestHubTableRoomDelivery(t *testing.T) {
	hub := NewHub(nil)
	guest := &fakeConn{}
	otherTable := &fakeConn{}
	hub.Join(TableRoom(3), guest)
	hub.Join(TableRoom(4), otherTable)

	hub.BroadcastToTable(3, "order:update", map[string]any{"status": "READY"})

	if got := guest.lastEvent(t); got != "order:update" {
		t.Errorf("guest got event %q", got)
	}
	if len(otherTable.frames) != 0 {
		t.Errorf("other table received %d frames, want 0", len(otherTable.frames))
	}
}

func TestHubGlobalAtMostOncePerConn(t *testing.T) {
	hub := NewHub(nil)
	conn := &fakeConn{}
	hub.Join(RoleRoom("admin"), conn)
	hub.Join(RoleRoom("waiter"), conn)
	hub.Join(TableRoom(1), conn)

	hub.BroadcastGlobal("menu-update", nil)

	if len(conn.frames) != 1 {
		t.Errorf("connection in 3 rooms received %d frames, want 1", len(conn.frames))
	}
}

func TestHubLeave(t *testing.T) {
	hub := NewHub(nil)
	conn := &fakeConn{}
	hub.Join(RoleRoom("kitchen"), conn)
	hub.Leave(RoleRoom("kitchen"), conn)

	hub.BroadcastToRole("kitchen", "order:new", nil)

	if len(conn.frames) != 0 {
		t.Errorf("left connection received %d frames", len(conn.frames))
	}
}

func TestHubDrop(t *testing.T) {
	hub := NewHub(nil)
	conn := &fakeConn{}
	hub.Join(RoleRoom("kitchen"), conn)
	hub.Join(TableRoom(2), conn)
	hub.Drop(conn)

	hub.BroadcastToRole("kitchen", "order:new", nil)
	hub.BroadcastToTable(2, "order:update", nil)
	hub.BroadcastGlobal("menu-update", nil)

	if len(conn.frames) != 0 {
		t.Errorf("dropped connection received %d frames", len(conn.frames))
	}
}

func TestHubEvictsFailedWriter(t *testing.T) {
	hub := NewHub(nil)
	broken := &fakeConn{fail: true}
	healthy := &fakeConn{}
	hub.Join(RoleRoom("kitchen"), broken)
	hub.Join(RoleRoom("kitchen"), healthy)

	hub.BroadcastToRole("kitchen", "order:new", nil)

	if !broken.closed {
		t.Error("failed writer not closed")
	}
	if len(healthy.frames) != 1 {
		t.Errorf("healthy connection received %d frames, want 1", len(healthy.frames))
	}

	// The evicted connection stays gone.
	broken.fail = false
	hub.BroadcastToRole("kitchen", "order:new", nil)
	if len(broken.frames) != 0 {
		t.Error("evicted connection received a frame after eviction")
	}
}

func TestHubFramePayload(t *testing.T) {
	hub := NewHub(nil)
	conn := &fakeConn{}
	hub.Join(TableRoom(9), conn)

	hub.BroadcastToTable(9, "bill:paid", map[string]any{"tableId": 9, "method": "upi"})

	var frame struct {
		Event string `json:"event"`
		Data  struct {
			TableId int    `json:"tableId"`
			Method  string `json:"method"`
		} `json:"data"`
	}
	if err := json.Unmarshal([]byte(conn.frames[0]), &frame); err != nil {
		t.Fatalf("bad frame: %v", err)
	}
	if frame.Event != "bill:paid" || frame.Data.TableId != 9 || frame.Data.Method != "upi" {
		t.Errorf("frame = %+v", frame)
	}
}
