// Package algo implements room allocation over a hotel inventory.
package algo

import (
	"sort"

	"github.com/elektrokombinacija/hotel-alloc/internal/core"
)

// Solver is the interface for allocation strategies.
type Solver interface {
	// Allocate picks k eligible rooms from the inventory.
	// Returns core.Infeasible() if no combination exists.
	Allocate(inv *core.Inventory, eligible core.Eligibility, k int) core.Outcome

	// Name returns the algorithm name.
	Name() string
}

// Evaluation is a scored combination in canonical order.
type Evaluation struct {
	Rooms []*core.Room
	Cost  int
	First *core.Room
	Last  *core.Room
}

// Evaluate sorts a combination canonically and scores it by the travel time
// between its first and last room. The input slice is not modified.
func Evaluate(combo []*core.Room) Evaluation {
	rooms := make([]*core.Room, len(combo))
	copy(rooms, combo)
	sortCanonical(rooms)

	var first, last *core.Room
	if len(rooms) > 0 {
		first, last = rooms[0], rooms[len(rooms)-1]
	}
	return Evaluation{
		Rooms: rooms,
		Cost:  core.TravelTime(first, last),
		First: first,
		Last:  last,
	}
}

// Better reports whether a beats b: lower cost, then lower first floor,
// then lower first position.
func Better(a, b Evaluation) bool {
	if a.Cost != b.Cost {
		return a.Cost < b.Cost
	}
	if a.First.Floor != b.First.Floor {
		return a.First.Floor < b.First.Floor
	}
	return a.First.Position < b.First.Position
}

func sortCanonical(rooms []*core.Room) {
	sort.Slice(rooms, func(i, j int) bool {
		return core.Less(rooms[i], rooms[j])
	})
}
