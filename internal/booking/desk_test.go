package booking

import (
	"errors"
	"reflect"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/elektrokombinacija/hotel-alloc/internal/core"
)

func newTestDesk(opts ...Option) *Desk {
	opts = append([]Option{WithSeed(1), WithLogger(zerolog.Nop())}, opts...)
	return NewDesk(core.BuildInventory(), opts...)
}

func TestNewDeskAllAvailable(t *testing.T) {
	d := newTestDesk()
	snap, err := d.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if got := snap.Count(core.Available); got != core.TotalRooms {
		t.Errorf("available = %d, want %d", got, core.TotalRooms)
	}
	if snap.Last != nil {
		t.Error("new desk should have no booking")
	}
}

func TestBookMarksRoomsBooked(t *testing.T) {
	d := newTestDesk()

	b, err := d.Book(4)
	if err != nil {
		t.Fatalf("Book: %v", err)
	}
	if want := []int{101, 102, 103, 104}; !reflect.DeepEqual(b.Numbers(), want) {
		t.Errorf("rooms = %v, want %v", b.Numbers(), want)
	}
	if b.Cost != 3 || b.Strategy != core.SameFloor {
		t.Errorf("cost=%d strategy=%v, want 3 same-floor", b.Cost, b.Strategy)
	}
	if len(b.ID) != 8 {
		t.Errorf("booking ID %q should have 8 characters", b.ID)
	}

	for _, r := range b.Rooms {
		if st, _ := d.Status(r.ID); st != core.Booked {
			t.Errorf("Status(%s) = %v, want booked", r.ID, st)
		}
	}
	if d.LastBooking() != b {
		t.Error("LastBooking does not return the new booking")
	}

	// Booked rooms are no longer eligible.
	next, err := d.Book(4)
	if err != nil {
		t.Fatalf("second Book: %v", err)
	}
	if want := []int{105, 106, 107, 108}; !reflect.DeepEqual(next.Numbers(), want) {
		t.Errorf("second rooms = %v, want %v", next.Numbers(), want)
	}
}

func TestBookValidatesCount(t *testing.T) {
	d := newTestDesk(WithMaxRequest(5))

	for _, k := range []int{0, -1, 6} {
		if _, err := d.Book(k); !errors.Is(err, ErrInvalidCount) {
			t.Errorf("Book(%d) error = %v, want ErrInvalidCount", k, err)
		}
	}
}

func TestBookNotEnoughRooms(t *testing.T) {
	d := newTestDesk(WithOccupancyRate(1))
	d.Randomize()

	if _, err := d.Toggle("505"); err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if _, err := d.Book(2); !errors.Is(err, ErrNotEnoughRooms) {
		t.Errorf("Book(2) error = %v, want ErrNotEnoughRooms", err)
	}

	b, err := d.Book(1)
	if err != nil {
		t.Fatalf("Book(1): %v", err)
	}
	if b.Rooms[0].Number != 505 {
		t.Errorf("booked %v, want 505", b.Numbers())
	}
}

func TestBookCrossFloor(t *testing.T) {
	d := newTestDesk(WithOccupancyRate(1))
	d.Randomize()
	for _, id := range []core.RoomID{"101", "201", "301"} {
		if _, err := d.Toggle(id); err != nil {
			t.Fatalf("Toggle(%s): %v", id, err)
		}
	}

	b, err := d.Book(3)
	if err != nil {
		t.Fatalf("Book: %v", err)
	}
	if b.Strategy != core.CrossFloor || b.Cost != 4 {
		t.Errorf("strategy=%v cost=%d, want cross-floor 4", b.Strategy, b.Cost)
	}
}

func TestRandomizeDeterministic(t *testing.T) {
	a := newTestDesk(WithSeed(9))
	b := newTestDesk(WithSeed(9))
	a.Randomize()
	b.Randomize()

	sa, _ := a.Snapshot()
	sb, _ := b.Snapshot()
	if !reflect.DeepEqual(sa.Status, sb.Status) {
		t.Error("same seed produced different occupancy")
	}

	occupied := sa.Count(core.Occupied)
	if occupied == 0 || occupied == core.TotalRooms {
		t.Errorf("occupied = %d, expected a mix at rate 0.35", occupied)
	}
}

func TestRandomizeClearsBookings(t *testing.T) {
	d := newTestDesk(WithOccupancyRate(0))
	if _, err := d.Book(3); err != nil {
		t.Fatalf("Book: %v", err)
	}
	d.Randomize()

	snap, _ := d.Snapshot()
	if snap.Count(core.Booked) != 0 || snap.Last != nil {
		t.Error("Randomize should clear bookings")
	}
	if snap.Count(core.Available) != core.TotalRooms {
		t.Errorf("available = %d at rate 0", snap.Count(core.Available))
	}
}

func TestReset(t *testing.T) {
	d := newTestDesk(WithOccupancyRate(0.8))
	d.Randomize()
	if _, err := d.Book(2); err != nil {
		t.Fatalf("Book: %v", err)
	}
	d.Reset()

	snap, _ := d.Snapshot()
	if snap.Count(core.Available) != core.TotalRooms || snap.Last != nil {
		t.Error("Reset should make every room available")
	}
}

func TestToggle(t *testing.T) {
	d := newTestDesk()

	st, err := d.Toggle("707")
	if err != nil || st != core.Occupied {
		t.Fatalf("Toggle = %v, %v; want occupied", st, err)
	}
	st, err = d.Toggle("707")
	if err != nil || st != core.Available {
		t.Fatalf("Toggle = %v, %v; want available", st, err)
	}

	if _, err := d.Toggle("1010"); !errors.Is(err, ErrUnknownRoom) {
		t.Errorf("Toggle(1010) error = %v, want ErrUnknownRoom", err)
	}

	b, _ := d.Book(1)
	if _, err := d.Toggle(b.Rooms[0].ID); !errors.Is(err, ErrRoomBooked) {
		t.Errorf("Toggle(booked) error = %v, want ErrRoomBooked", err)
	}
}

func TestUndoRedo(t *testing.T) {
	d := newTestDesk()
	if d.Undo() || d.Redo() {
		t.Fatal("empty history should not undo or redo")
	}

	d.Toggle("301")
	d.Toggle("302")
	if !d.Undo() {
		t.Fatal("Undo returned false")
	}
	if st, _ := d.Status("302"); st != core.Available {
		t.Errorf("302 after undo = %v, want available", st)
	}
	if !d.CanRedo() || !d.Redo() {
		t.Fatal("Redo failed")
	}
	if st, _ := d.Status("302"); st != core.Occupied {
		t.Errorf("302 after redo = %v, want occupied", st)
	}

	d.Reset()
	if d.CanUndo() || d.CanRedo() {
		t.Error("Reset should clear history")
	}
}

func TestSnapshotIsIndependent(t *testing.T) {
	d := newTestDesk()
	b, _ := d.Book(2)

	snap, err := d.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	snap.Status["901"] = core.Occupied
	snap.Last.Rooms[0] = nil

	if st, _ := d.Status("901"); st != core.Available {
		t.Error("mutating snapshot changed desk status")
	}
	if d.LastBooking().Rooms[0] == nil || b.Rooms[0] == nil {
		t.Error("mutating snapshot changed desk booking")
	}
}

func TestConcurrentBooking(t *testing.T) {
	d := newTestDesk()

	var wg sync.WaitGroup
	results := make(chan *Booking, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if b, err := d.Book(3); err == nil {
				results <- b
			}
		}()
	}
	wg.Wait()
	close(results)

	seen := make(map[core.RoomID]bool)
	for b := range results {
		for _, r := range b.Rooms {
			if seen[r.ID] {
				t.Errorf("room %s booked twice", r.ID)
			}
			seen[r.ID] = true
		}
	}
	if len(seen) != 30 {
		t.Errorf("booked %d rooms, want 30", len(seen))
	}
}
