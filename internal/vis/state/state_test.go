package state

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/elektrokombinacija/hotel-alloc/internal/booking"
	"github.com/elektrokombinacija/hotel-alloc/internal/core"
)

func newTestState() *State {
	desk := booking.NewDesk(core.BuildInventory(),
		booking.WithSeed(5),
		booking.WithLogger(zerolog.Nop()),
	)
	return NewState(desk)
}

func TestSetRequestedClamps(t *testing.T) {
	s := newTestState()
	if s.Requested != 4 {
		t.Errorf("initial Requested = %d, want 4", s.Requested)
	}

	tests := []struct{ in, want int }{
		{0, 1},
		{3, 3},
		{9, 5},
	}
	for _, tt := range tests {
		s.SetRequested(tt.in)
		if s.Requested != tt.want {
			t.Errorf("SetRequested(%d) -> %d, want %d", tt.in, s.Requested, tt.want)
		}
	}
}

func TestBookUpdatesSnapshot(t *testing.T) {
	s := newTestState()
	s.SetRequested(2)
	s.Book()

	if s.Message != "" {
		t.Fatalf("unexpected message %q", s.Message)
	}
	sel := s.Selected()
	if sel == nil || len(sel.Rooms) != 2 {
		t.Fatalf("Selected = %+v", sel)
	}
	if s.StatusOf(sel.Rooms[0].ID) != core.Booked {
		t.Error("snapshot not refreshed after booking")
	}

	// Clicking a booked room does nothing.
	s.Toggle(sel.Rooms[0].ID)
	if s.StatusOf(sel.Rooms[0].ID) != core.Booked || s.Message != "" {
		t.Error("toggling a booked room changed state")
	}
}

func TestBookFailureSetsMessage(t *testing.T) {
	s := newTestState()
	for _, r := range s.Desk.Inventory().Rooms {
		s.Toggle(r.ID)
	}
	s.Book()
	if s.Message == "" {
		t.Error("expected feedback message when nothing is available")
	}

	s.Reset()
	if s.Message != "" || s.Snapshot.Count(core.Available) != core.TotalRooms {
		t.Error("Reset should clear message and free all rooms")
	}
}

func TestToggleUndoRedo(t *testing.T) {
	s := newTestState()
	s.Toggle("808")
	if s.StatusOf("808") != core.Occupied {
		t.Fatal("toggle not reflected")
	}
	s.Undo()
	if s.StatusOf("808") != core.Available {
		t.Error("undo not reflected")
	}
	s.Redo()
	if s.StatusOf("808") != core.Occupied {
		t.Error("redo not reflected")
	}
}
