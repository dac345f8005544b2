package core

// Travel costs in minutes.
const (
	HorizontalCost = 1 // Per room along a corridor
	VerticalCost   = 2 // Per floor via stairs/lift
)

// TravelTime returns minutes needed to walk from a to b.
// Same floor: one minute per room. Across floors: walk to the stairs/lift at
// position 1, two minutes per floor, then walk out to b.
// Returns 0 if either room is nil.
func TravelTime(a, b *Room) int {
	if a == nil || b == nil {
		return 0
	}
	if a.Floor == b.Floor {
		return HorizontalCost * abs(a.Position-b.Position)
	}
	return HorizontalCost*(a.Position-1) +
		VerticalCost*abs(a.Floor-b.Floor) +
		HorizontalCost*(b.Position-1)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
