// Package core defines domain models for hotel room allocation.
package core

// Status classifies a room at decision time.
type Status int

const (
	Available Status = iota // Free for allocation
	Occupied                // Guest in residence or manually blocked
	Booked                  // Part of an accepted allocation
)

func (s Status) String() string {
	return [...]string{"available", "occupied", "booked"}[s]
}

// ParseStatus maps a status name back to its value.
func ParseStatus(name string) (Status, bool) {
	switch name {
	case "available":
		return Available, true
	case "occupied":
		return Occupied, true
	case "booked":
		return Booked, true
	default:
		return Available, false
	}
}

// Strategy tags how an allocation was found.
type Strategy int

const (
	SameFloor  Strategy = iota // All rooms share one floor
	CrossFloor                 // Fallback over the whole eligible pool
)

func (s Strategy) String() string {
	return [...]string{"same-floor", "cross-floor"}[s]
}

// Eligibility reports whether a room may be selected.
type Eligibility func(r *Room) bool

// EligibleFromStatus derives the selection predicate from a status lookup.
// Rooms missing from the lookup count as available.
func EligibleFromStatus(status map[RoomID]Status) Eligibility {
	return func(r *Room) bool {
		return status[r.ID] == Available
	}
}
