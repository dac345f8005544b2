package core

// Hotel shape.
const (
	StandardFloors  = 9  // Floors 1..9
	RoomsPerFloor   = 10 // On standard floors
	TopFloor        = 10
	RoomsOnTopFloor = 7
	TotalRooms      = StandardFloors*RoomsPerFloor + RoomsOnTopFloor
)

// Inventory is the fixed, ordered room catalog of the hotel.
type Inventory struct {
	Rooms []*Room

	byID    map[RoomID]*Room
	byFloor map[int][]*Room
}

// BuildInventory creates the hotel: floors 1-9 with ten rooms each and
// floor 10 with seven, ordered by floor then position.
func BuildInventory() *Inventory {
	rooms := make([]*Room, 0, TotalRooms)
	for f := 1; f <= StandardFloors; f++ {
		for p := 1; p <= RoomsPerFloor; p++ {
			rooms = append(rooms, NewRoom(f, p))
		}
	}
	for p := 1; p <= RoomsOnTopFloor; p++ {
		rooms = append(rooms, NewRoom(TopFloor, p))
	}
	return NewInventory(rooms)
}

// NewInventory indexes an ordered room list.
func NewInventory(rooms []*Room) *Inventory {
	inv := &Inventory{
		Rooms:   rooms,
		byID:    make(map[RoomID]*Room, len(rooms)),
		byFloor: make(map[int][]*Room),
	}
	for _, r := range rooms {
		inv.byID[r.ID] = r
		inv.byFloor[r.Floor] = append(inv.byFloor[r.Floor], r)
	}
	return inv
}

// RoomByID finds room by ID.
func (inv *Inventory) RoomByID(id RoomID) *Room {
	return inv.byID[id]
}

// Floors returns floor numbers in ascending order.
func (inv *Inventory) Floors() []int {
	var floors []int
	seen := make(map[int]bool)
	for _, r := range inv.Rooms {
		if !seen[r.Floor] {
			seen[r.Floor] = true
			floors = append(floors, r.Floor)
		}
	}
	return floors
}

// OnFloor returns the rooms of a floor in inventory order.
func (inv *Inventory) OnFloor(floor int) []*Room {
	return inv.byFloor[floor]
}

// Filter returns rooms accepted by the predicate, in inventory order.
func (inv *Inventory) Filter(eligible Eligibility) []*Room {
	var out []*Room
	for _, r := range inv.Rooms {
		if eligible(r) {
			out = append(out, r)
		}
	}
	return out
}
