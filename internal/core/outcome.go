package core

// Outcome is the engine's answer to an allocation request.
type Outcome struct {
	Rooms    []*Room // Canonical order
	Cost     int     // Travel time between first and last room
	Strategy Strategy
	Feasible bool
}

// Infeasible returns the "no feasible combination" outcome.
func Infeasible() Outcome {
	return Outcome{}
}

// First returns the canonical first room, or nil.
func (o Outcome) First() *Room {
	if len(o.Rooms) == 0 {
		return nil
	}
	return o.Rooms[0]
}

// Last returns the canonical last room, or nil.
func (o Outcome) Last() *Room {
	if len(o.Rooms) == 0 {
		return nil
	}
	return o.Rooms[len(o.Rooms)-1]
}

// IDs returns the IDs of the chosen rooms.
func (o Outcome) IDs() []RoomID {
	ids := make([]RoomID, len(o.Rooms))
	for i, r := range o.Rooms {
		ids[i] = r.ID
	}
	return ids
}

// Numbers returns display numbers of the chosen rooms.
func (o Outcome) Numbers() []int {
	nums := make([]int, len(o.Rooms))
	for i, r := range o.Rooms {
		nums[i] = r.Number
	}
	return nums
}
