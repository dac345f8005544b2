package main

import (
	"testing"

	"github.com/elektrokombinacija/hotel-alloc/internal/core"
)

func TestGenerateSnapshotDeterministic(t *testing.T) {
	inv := core.BuildInventory()
	params := SnapshotParams{Seed: 7, OccupancyRate: 0.5}

	a := generateSnapshot(inv, params)
	b := generateSnapshot(inv, params)

	if len(a.Rooms) != core.TotalRooms {
		t.Fatalf("len(Rooms) = %d, want %d", len(a.Rooms), core.TotalRooms)
	}
	for i := range a.Rooms {
		if a.Rooms[i] != b.Rooms[i] {
			t.Fatalf("room %d differs: %v vs %v", i, a.Rooms[i], b.Rooms[i])
		}
	}
	if a.Available != b.Available {
		t.Errorf("Available = %d and %d, want equal", a.Available, b.Available)
	}
}

func TestGenerateSnapshotExtremes(t *testing.T) {
	inv := core.BuildInventory()

	free := generateSnapshot(inv, SnapshotParams{Seed: 1, OccupancyRate: 0})
	if free.Available != core.TotalRooms {
		t.Errorf("rate 0: Available = %d, want %d", free.Available, core.TotalRooms)
	}

	full := generateSnapshot(inv, SnapshotParams{Seed: 1, OccupancyRate: 1})
	if full.Available != 0 {
		t.Errorf("rate 1: Available = %d, want 0", full.Available)
	}
	for _, r := range full.Rooms {
		if r.Status != "occupied" {
			t.Errorf("room %s status = %q, want occupied", r.ID, r.Status)
		}
	}
}
