package core

import "strconv"

// RoomID is a unique room identifier.
type RoomID string

// Room is a single bookable room. Values are never mutated after construction.
type Room struct {
	ID       RoomID
	Floor    int // 1-based floor
	Position int // 1-based index from the stairs/lift
	Number   int // Display number
}

// RoomNumber returns the display number for a floor/position pair.
func RoomNumber(floor, position int) int {
	if floor >= 10 {
		return 1000 + position
	}
	return floor*100 + position
}

// NewRoom creates a room with its derived number and ID.
func NewRoom(floor, position int) *Room {
	num := RoomNumber(floor, position)
	return &Room{
		ID:       RoomID(strconv.Itoa(num)),
		Floor:    floor,
		Position: position,
		Number:   num,
	}
}

func (r *Room) String() string {
	return strconv.Itoa(r.Number)
}

// Less orders rooms canonically: floor ascending, then position ascending.
func Less(a, b *Room) bool {
	if a.Floor != b.Floor {
		return a.Floor < b.Floor
	}
	return a.Position < b.Position
}
