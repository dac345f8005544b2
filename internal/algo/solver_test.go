package algo

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/elektrokombinacija/hotel-alloc/internal/core"
)

// onlyRooms makes exactly the listed rooms eligible.
func onlyRooms(ids ...core.RoomID) core.Eligibility {
	set := make(map[core.RoomID]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return func(r *core.Room) bool { return set[r.ID] }
}

// onlyFloor makes every room on one floor eligible.
func onlyFloor(floor int) core.Eligibility {
	return func(r *core.Room) bool { return r.Floor == floor }
}

// createSmallInventory creates a hotel of floors x perFloor rooms.
func createSmallInventory(floors, perFloor int) *core.Inventory {
	var rooms []*core.Room
	for f := 1; f <= floors; f++ {
		for p := 1; p <= perFloor; p++ {
			rooms = append(rooms, core.NewRoom(f, p))
		}
	}
	return core.NewInventory(rooms)
}

func numbers(o core.Outcome) []int {
	return o.Numbers()
}

func TestScenarioA_ContiguousOnOneFloor(t *testing.T) {
	inv := core.BuildInventory()
	out := Allocate(inv, onlyFloor(3), 3)

	if !out.Feasible {
		t.Fatal("expected feasible outcome")
	}
	if out.Strategy != core.SameFloor {
		t.Errorf("Strategy = %v, want same-floor", out.Strategy)
	}
	if out.Cost != 2 {
		t.Errorf("Cost = %d, want 2", out.Cost)
	}
	if want := []int{301, 302, 303}; !reflect.DeepEqual(numbers(out), want) {
		t.Errorf("Rooms = %v, want %v", numbers(out), want)
	}
}

func TestScenarioB_LowerFloorWinsTie(t *testing.T) {
	inv := core.BuildInventory()
	// Floor 1 occupied, floor 2 only 201/202, higher floors fully available.
	eligible := func(r *core.Room) bool {
		switch r.Floor {
		case 1:
			return false
		case 2:
			return r.Position <= 2
		default:
			return true
		}
	}

	out := Allocate(inv, eligible, 2)
	if !out.Feasible || out.Strategy != core.SameFloor {
		t.Fatalf("got feasible=%v strategy=%v, want same-floor", out.Feasible, out.Strategy)
	}
	if out.Cost != 1 {
		t.Errorf("Cost = %d, want 1", out.Cost)
	}
	if want := []int{201, 202}; !reflect.DeepEqual(numbers(out), want) {
		t.Errorf("Rooms = %v, want %v", numbers(out), want)
	}
}

func TestScenarioC_CrossFloor(t *testing.T) {
	inv := core.BuildInventory()
	eligible := onlyRooms("101", "102", "201", "305")

	out := Allocate(inv, eligible, 3)
	if !out.Feasible {
		t.Fatal("expected feasible outcome")
	}
	if out.Strategy != core.CrossFloor {
		t.Errorf("Strategy = %v, want cross-floor", out.Strategy)
	}
	if want := []int{101, 102, 201}; !reflect.DeepEqual(numbers(out), want) {
		t.Errorf("Rooms = %v, want %v", numbers(out), want)
	}
	if out.Cost != 2 {
		t.Errorf("Cost = %d, want 2", out.Cost)
	}

	oracle, ok := bruteForce(inv.Filter(eligible), 3, false)
	if !ok || oracle.cost != out.Cost {
		t.Errorf("Cost = %d, oracle = %d", out.Cost, oracle.cost)
	}
}

func TestScenarioD_Infeasible(t *testing.T) {
	inv := core.BuildInventory()
	tests := []struct {
		name     string
		eligible core.Eligibility
		k        int
	}{
		{"pool smaller than k", onlyRooms("101", "505"), 3},
		{"nothing eligible", onlyRooms(), 1},
		{"zero rooms requested", onlyFloor(1), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Allocate(inv, tt.eligible, tt.k)
			if out.Feasible {
				t.Errorf("expected infeasible, got %v", numbers(out))
			}
			if len(out.Rooms) != 0 {
				t.Errorf("infeasible outcome carries rooms %v", numbers(out))
			}
		})
	}
}

func TestFloorPreference(t *testing.T) {
	inv := core.BuildInventory()
	// 101+110 costs 9 on one floor; 101+201 would cost only 2.
	out := Allocate(inv, onlyRooms("101", "110", "201"), 2)

	if out.Strategy != core.SameFloor {
		t.Fatalf("Strategy = %v, want same-floor", out.Strategy)
	}
	if out.Cost != 9 {
		t.Errorf("Cost = %d, want 9", out.Cost)
	}
}

func TestSingleRoom(t *testing.T) {
	inv := core.BuildInventory()
	out := Allocate(inv, onlyRooms("704", "1002"), 1)

	if out.Cost != 0 || out.Strategy != core.SameFloor {
		t.Errorf("got cost=%d strategy=%v, want 0 same-floor", out.Cost, out.Strategy)
	}
	if want := []int{704}; !reflect.DeepEqual(numbers(out), want) {
		t.Errorf("Rooms = %v, want %v", numbers(out), want)
	}
}

func TestOutcomeIsCanonical(t *testing.T) {
	inv := core.BuildInventory()
	out := Allocate(inv, onlyRooms("909", "105", "1003", "402"), 4)

	for i := 1; i < len(out.Rooms); i++ {
		if !core.Less(out.Rooms[i-1], out.Rooms[i]) {
			t.Errorf("rooms out of order: %v", numbers(out))
		}
	}
	if out.First().Number != 105 || out.Last().Number != 1003 {
		t.Errorf("First/Last = %v/%v", out.First(), out.Last())
	}
}

func TestDeterminism(t *testing.T) {
	inv := core.BuildInventory()
	rng := rand.New(rand.NewSource(7))
	status := make(map[core.RoomID]core.Status)
	for _, r := range inv.Rooms {
		if rng.Float64() < 0.6 {
			status[r.ID] = core.Occupied
		}
	}
	eligible := core.EligibleFromStatus(status)

	for k := 1; k <= 5; k++ {
		first := Allocate(inv, eligible, k)
		for i := 0; i < 3; i++ {
			again := Allocate(inv, eligible, k)
			if !reflect.DeepEqual(first, again) {
				t.Errorf("k=%d: outcome changed between calls: %v vs %v", k, numbers(first), numbers(again))
			}
		}
	}
}

// oracleResult is the best key found by brute force.
type oracleResult struct {
	cost, floor, pos int
}

// bruteForce enumerates every subset of pool by bitmask. With sameFloor set,
// only subsets whose rooms share a floor are considered.
func bruteForce(pool []*core.Room, k int, sameFloor bool) (oracleResult, bool) {
	var best oracleResult
	found := false
	n := len(pool)

	for mask := 0; mask < 1<<n; mask++ {
		var picked []*core.Room
		for i := 0; i < n; i++ {
			if mask&(1<<i) != 0 {
				picked = append(picked, pool[i])
			}
		}
		if len(picked) != k {
			continue
		}

		first, last := picked[0], picked[0]
		oneFloor := true
		for _, r := range picked {
			if r.Floor != picked[0].Floor {
				oneFloor = false
			}
			if r.Floor < first.Floor || (r.Floor == first.Floor && r.Position < first.Position) {
				first = r
			}
			if r.Floor > last.Floor || (r.Floor == last.Floor && r.Position > last.Position) {
				last = r
			}
		}
		if sameFloor && !oneFloor {
			continue
		}

		res := oracleResult{core.TravelTime(first, last), first.Floor, first.Position}
		if !found || res.cost < best.cost ||
			(res.cost == best.cost && (res.floor < best.floor ||
				(res.floor == best.floor && res.pos < best.pos))) {
			best = res
			found = true
		}
	}
	return best, found
}

func TestMatchesOracle(t *testing.T) {
	inv := createSmallInventory(3, 5)
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 200; trial++ {
		rate := 0.2 + 0.6*rng.Float64()
		blocked := make(map[core.RoomID]bool)
		for _, r := range inv.Rooms {
			if rng.Float64() < rate {
				blocked[r.ID] = true
			}
		}
		eligible := func(r *core.Room) bool { return !blocked[r.ID] }
		pool := inv.Filter(eligible)

		for k := 1; k <= 5; k++ {
			out := Allocate(inv, eligible, k)

			want, ok := bruteForce(pool, k, true)
			strategy := core.SameFloor
			if !ok {
				want, ok = bruteForce(pool, k, false)
				strategy = core.CrossFloor
			}

			if !ok {
				if out.Feasible {
					t.Errorf("trial %d k=%d: expected infeasible, got %v", trial, k, numbers(out))
				}
				continue
			}
			if !out.Feasible {
				t.Errorf("trial %d k=%d: expected feasible", trial, k)
				continue
			}
			got := oracleResult{out.Cost, out.First().Floor, out.First().Position}
			if got != want || out.Strategy != strategy {
				t.Errorf("trial %d k=%d: got %+v %v, oracle %+v %v",
					trial, k, got, out.Strategy, want, strategy)
			}
			if len(out.Rooms) != k {
				t.Errorf("trial %d k=%d: got %d rooms", trial, k, len(out.Rooms))
			}
		}
	}
}

func TestCounterObserver(t *testing.T) {
	inv := core.BuildInventory()
	counter := &Counter{}
	solver := &TwoPhase{Observer: counter}

	out := solver.Allocate(inv, func(*core.Room) bool { return true }, 2)
	if !out.Feasible {
		t.Fatal("expected feasible outcome")
	}

	want := 9*CountCombinations(10, 2) + CountCombinations(7, 2)
	if counter.Candidates != want {
		t.Errorf("Candidates = %d, want %d", counter.Candidates, want)
	}
	if counter.Floors != 10 {
		t.Errorf("Floors = %d, want 10", counter.Floors)
	}

	counter.Reset()
	if counter.Candidates != 0 || counter.Floors != 0 {
		t.Error("Reset did not clear counter")
	}
}

func TestAllSolversAgree(t *testing.T) {
	inv := core.BuildInventory()
	solvers := []Solver{
		NewTwoPhase(),
		&TwoPhase{Observer: &Counter{}},
	}

	for _, solver := range solvers {
		t.Run(solver.Name(), func(t *testing.T) {
			out := solver.Allocate(inv, onlyFloor(3), 3)
			if want := []int{301, 302, 303}; !reflect.DeepEqual(numbers(out), want) {
				t.Errorf("Rooms = %v, want %v", numbers(out), want)
			}
		})
	}
}
