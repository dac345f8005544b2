package algo

import (
	"github.com/elektrokombinacija/hotel-alloc/internal/core"
)

// TwoPhase searches every floor on its own first and falls back to the
// whole eligible pool only when no floor has k eligible rooms.
//
// The search is exhaustive: phase one costs C(n, k) per floor and phase two
// C(m, k) over the pool. That is fine for the fixed hotel (ten rooms per
// floor, at most five rooms per request) but does not scale to inventories
// orders of magnitude larger.
type TwoPhase struct {
	Observer Observer // Optional
}

// NewTwoPhase creates the default allocator.
func NewTwoPhase() *TwoPhase {
	return &TwoPhase{}
}

// Name returns the algorithm name.
func (s *TwoPhase) Name() string {
	return "TwoPhase"
}

// Allocate implements Solver.
func (s *TwoPhase) Allocate(inv *core.Inventory, eligible core.Eligibility, k int) core.Outcome {
	if k < 1 {
		return core.Infeasible()
	}

	pool := inv.Filter(eligible)
	if len(pool) < k {
		return core.Infeasible()
	}

	// Phase 1: same floor.
	var best *Evaluation
	for _, floor := range inv.Floors() {
		var onFloor []*core.Room
		for _, r := range inv.OnFloor(floor) {
			if eligible(r) {
				onFloor = append(onFloor, r)
			}
		}
		if s.Observer != nil {
			s.Observer.OnFloor(floor, len(onFloor))
		}
		if len(onFloor) < k {
			continue
		}
		if ev, ok := s.bestOf(onFloor, k); ok && (best == nil || Better(ev, *best)) {
			best = &ev
		}
	}
	if best != nil {
		return outcome(*best, core.SameFloor)
	}

	// Phase 2: whole pool.
	if ev, ok := s.bestOf(pool, k); ok {
		return outcome(ev, core.CrossFloor)
	}
	return core.Infeasible()
}

// bestOf evaluates every k-subset of pool and returns the best.
func (s *TwoPhase) bestOf(pool []*core.Room, k int) (Evaluation, bool) {
	var best Evaluation
	found := false
	ForEachCombination(pool, k, func(combo []*core.Room) {
		ev := Evaluate(combo)
		if s.Observer != nil {
			s.Observer.OnCandidate(ev)
		}
		if !found || Better(ev, best) {
			best = ev
			found = true
		}
	})
	return best, found
}

func outcome(ev Evaluation, strategy core.Strategy) core.Outcome {
	return core.Outcome{
		Rooms:    ev.Rooms,
		Cost:     ev.Cost,
		Strategy: strategy,
		Feasible: true,
	}
}

// Allocate runs the default two-phase allocator.
func Allocate(inv *core.Inventory, eligible core.Eligibility, k int) core.Outcome {
	return NewTwoPhase().Allocate(inv, eligible, k)
}
