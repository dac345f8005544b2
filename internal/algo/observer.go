package algo

// Observer is notified while the allocator searches.
type Observer interface {
	// OnFloor is called for every floor in phase one with its eligible count.
	OnFloor(floor, eligible int)

	// OnCandidate is called for every evaluated combination.
	OnCandidate(eval Evaluation)
}

// Counter is an Observer that tallies search effort.
type Counter struct {
	Floors     int // Floors inspected in phase one
	Candidates int // Combinations evaluated in total
}

// OnFloor counts an inspected floor.
func (c *Counter) OnFloor(floor, eligible int) {
	c.Floors++
}

// OnCandidate counts an evaluated combination.
func (c *Counter) OnCandidate(eval Evaluation) {
	c.Candidates++
}

// Reset clears the tallies.
func (c *Counter) Reset() {
	*c = Counter{}
}
