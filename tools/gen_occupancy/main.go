// Package main generates occupancy snapshots for allocation benchmarks.
// Snapshots are deterministic for a given seed and occupancy rate.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/elektrokombinacija/hotel-alloc/internal/core"
)

// SnapshotParams defines parameters for snapshot generation.
type SnapshotParams struct {
	Seed          int64   `json:"seed"`
	OccupancyRate float64 `json:"occupancy_rate"` // Probability that a room is occupied
}

// RoomState is one room of a snapshot.
type RoomState struct {
	ID       string `json:"id"`
	Floor    int    `json:"floor"`
	Position int    `json:"position"`
	Status   string `json:"status"`
}

// Snapshot is a complete occupancy picture of the hotel.
type Snapshot struct {
	Name      string         `json:"name"`
	Params    SnapshotParams `json:"params"`
	Rooms     []RoomState    `json:"rooms"`
	Available int            `json:"available"`
	Generated string         `json:"generated"`
}

// generateSnapshot draws an occupancy state for every room of the inventory.
func generateSnapshot(inv *core.Inventory, params SnapshotParams) *Snapshot {
	rng := rand.New(rand.NewSource(params.Seed))

	snap := &Snapshot{
		Name:      fmt.Sprintf("occupancy_%02d_%d", int(params.OccupancyRate*100), params.Seed),
		Params:    params,
		Generated: time.Now().UTC().Format(time.RFC3339),
	}

	for _, r := range inv.Rooms {
		status := core.Available
		if rng.Float64() < params.OccupancyRate {
			status = core.Occupied
		} else {
			snap.Available++
		}
		snap.Rooms = append(snap.Rooms, RoomState{
			ID:       string(r.ID),
			Floor:    r.Floor,
			Position: r.Position,
			Status:   status.String(),
		})
	}

	return snap
}

func main() {
	seed := flag.Int64("seed", 42, "Random seed for deterministic generation")
	rate := flag.Float64("rate", 0.35, "Occupancy rate (0-1)")
	count := flag.Int("count", 1, "Number of snapshots (seeds seed..seed+count-1)")
	outputDir := flag.String("output", "testdata", "Output directory")
	sweepMode := flag.Bool("sweep", false, "Generate a sweep over occupancy rates 0.1 .. 0.9")

	flag.Parse()

	if *rate < 0 || *rate > 1 {
		fmt.Fprintf(os.Stderr, "Occupancy rate must be within [0, 1], got %v\n", *rate)
		os.Exit(1)
	}

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	rates := []float64{*rate}
	if *sweepMode {
		rates = []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9}
	}

	inv := core.BuildInventory()
	var snapshots []*Snapshot
	for _, p := range rates {
		for i := 0; i < *count; i++ {
			params := SnapshotParams{
				Seed:          *seed + int64(i),
				OccupancyRate: p,
			}
			snapshots = append(snapshots, generateSnapshot(inv, params))
		}
	}

	for _, snap := range snapshots {
		filename := filepath.Join(*outputDir, snap.Name+".json")
		data, err := json.MarshalIndent(snap, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error marshaling snapshot %s: %v\n", snap.Name, err)
			continue
		}

		if err := os.WriteFile(filename, data, 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing snapshot %s: %v\n", filename, err)
			continue
		}

		fmt.Printf("Generated: %s (rate %.2f, %d/%d available)\n",
			filename, snap.Params.OccupancyRate, snap.Available, len(snap.Rooms))
	}
}
