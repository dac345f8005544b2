// Package booking holds the mutable room state around the allocator.
package booking

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/tiendc/go-deepcopy"

	"github.com/elektrokombinacija/hotel-alloc/internal/algo"
	"github.com/elektrokombinacija/hotel-alloc/internal/core"
	"github.com/elektrokombinacija/hotel-alloc/internal/logger"
)

var (
	ErrInvalidCount   = errors.New("invalid room count")
	ErrNotEnoughRooms = errors.New("not enough available rooms to fulfill the request")
	ErrNoCombination  = errors.New("unable to find a valid booking")
	ErrUnknownRoom    = errors.New("unknown room")
	ErrRoomBooked     = errors.New("room is booked")
)

// Booking is an accepted allocation.
type Booking struct {
	ID       string
	Rooms    []*core.Room
	Cost     int // Travel time in minutes
	Strategy core.Strategy
}

// Numbers returns display numbers of the booked rooms.
func (b *Booking) Numbers() []int {
	nums := make([]int, len(b.Rooms))
	for i, r := range b.Rooms {
		nums[i] = r.Number
	}
	return nums
}

// State is the desk's view of the hotel at one point in time.
type State struct {
	Status map[core.RoomID]core.Status
	Last   *Booking
}

// Eligible reports whether a room can be allocated in this state.
func (s *State) Eligible(r *core.Room) bool {
	return s.Status[r.ID] == core.Available
}

// Count returns how many rooms have the given status.
func (s *State) Count(status core.Status) int {
	n := 0
	for _, st := range s.Status {
		if st == status {
			n++
		}
	}
	return n
}

// Desk owns room occupancy and bookings for one inventory.
// All methods are safe for concurrent use.
type Desk struct {
	mu sync.Mutex

	inv    *core.Inventory
	solver algo.Solver
	state  State
	edits  *EditStack

	rng        *rand.Rand
	rate       float64
	maxRequest int
	log        zerolog.Logger
}

// Option configures a Desk.
type Option func(*Desk)

// WithRand sets the random source used by Randomize.
func WithRand(rng *rand.Rand) Option {
	return func(d *Desk) { d.rng = rng }
}

// WithSeed seeds the random source used by Randomize.
func WithSeed(seed int64) Option {
	return func(d *Desk) { d.rng = rand.New(rand.NewSource(seed)) }
}

// WithOccupancyRate sets the probability a room is occupied after Randomize.
func WithOccupancyRate(p float64) Option {
	return func(d *Desk) { d.rate = p }
}

// WithMaxRequest sets the largest request Book accepts.
func WithMaxRequest(n int) Option {
	return func(d *Desk) { d.maxRequest = n }
}

// WithSolver replaces the allocation algorithm.
func WithSolver(s algo.Solver) Option {
	return func(d *Desk) { d.solver = s }
}

// WithLogger sets the desk logger.
func WithLogger(l zerolog.Logger) Option {
	return func(d *Desk) { d.log = l }
}

// NewDesk creates a desk with every room available.
func NewDesk(inv *core.Inventory, opts ...Option) *Desk {
	d := &Desk{
		inv:        inv,
		solver:     algo.NewTwoPhase(),
		edits:      NewEditStack(),
		rate:       0.35,
		maxRequest: 5,
		log:        logger.Component("desk"),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.rng == nil {
		d.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	d.state = State{Status: d.freshStatus()}
	return d
}

func (d *Desk) freshStatus() map[core.RoomID]core.Status {
	status := make(map[core.RoomID]core.Status, len(d.inv.Rooms))
	for _, r := range d.inv.Rooms {
		status[r.ID] = core.Available
	}
	return status
}

// Inventory returns the room catalog.
func (d *Desk) Inventory() *core.Inventory {
	return d.inv
}

// MaxRequest returns the largest request Book accepts.
func (d *Desk) MaxRequest() int {
	return d.maxRequest
}

// Status returns the current status of a room.
func (d *Desk) Status(id core.RoomID) (core.Status, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.inv.RoomByID(id) == nil {
		return core.Available, fmt.Errorf("%w: %s", ErrUnknownRoom, id)
	}
	return d.state.Status[id], nil
}

// Snapshot returns a deep copy of the current state.
func (d *Desk) Snapshot() (State, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	var snap State
	if err := deepcopy.Copy(&snap, &d.state); err != nil {
		return State{}, fmt.Errorf("snapshot: %w", err)
	}
	return snap, nil
}

// Book allocates k rooms and marks them booked.
func (d *Desk) Book(k int) (*Booking, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if k < 1 || k > d.maxRequest {
		return nil, fmt.Errorf("%w: %d, you can book between 1 and %d rooms", ErrInvalidCount, k, d.maxRequest)
	}
	if avail := d.state.Count(core.Available); avail < k {
		d.log.Warn().Int("requested", k).Int("available", avail).Msg("request exceeds availability")
		return nil, fmt.Errorf("%w: requested %d, available %d", ErrNotEnoughRooms, k, avail)
	}

	out := d.solver.Allocate(d.inv, d.state.Eligible, k)
	if !out.Feasible {
		return nil, ErrNoCombination
	}

	for _, r := range out.Rooms {
		d.state.Status[r.ID] = core.Booked
	}
	b := &Booking{
		ID:       uuid.New().String()[:8],
		Rooms:    out.Rooms,
		Cost:     out.Cost,
		Strategy: out.Strategy,
	}
	d.state.Last = b

	d.log.Info().
		Str("booking", b.ID).
		Ints("rooms", b.Numbers()).
		Int("minutes", b.Cost).
		Str("strategy", b.Strategy.String()).
		Msg("rooms booked")
	return b, nil
}

// LastBooking returns the most recent booking, or nil.
func (d *Desk) LastBooking() *Booking {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state.Last
}

// Randomize marks each non-booked room occupied with the configured
// probability and clears all bookings.
func (d *Desk) Randomize() {
	d.mu.Lock()
	defer d.mu.Unlock()

	occupied := 0
	for _, r := range d.inv.Rooms {
		if d.state.Status[r.ID] == core.Booked {
			d.state.Status[r.ID] = core.Available
			continue
		}
		if d.rng.Float64() < d.rate {
			d.state.Status[r.ID] = core.Occupied
			occupied++
		} else {
			d.state.Status[r.ID] = core.Available
		}
	}
	d.state.Last = nil
	d.edits.Clear()

	d.log.Info().Int("occupied", occupied).Float64("rate", d.rate).Msg("occupancy randomized")
}

// Reset makes every room available and clears all bookings.
func (d *Desk) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.state = State{Status: d.freshStatus()}
	d.edits.Clear()

	d.log.Info().Msg("all rooms reset")
}

// Toggle flips a room between available and occupied.
func (d *Desk) Toggle(id core.RoomID) (core.Status, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.inv.RoomByID(id) == nil {
		return core.Available, fmt.Errorf("%w: %s", ErrUnknownRoom, id)
	}
	from := d.state.Status[id]
	if from == core.Booked {
		return from, fmt.Errorf("%w: %s", ErrRoomBooked, id)
	}

	to := core.Occupied
	if from == core.Occupied {
		to = core.Available
	}
	d.edits.Execute(&ToggleAction{Room: id, From: from, To: to}, &d.state)

	d.log.Debug().Str("room", string(id)).Str("status", to.String()).Msg("room toggled")
	return to, nil
}

// Undo reverts the last manual toggle. Returns false if nothing was undone.
func (d *Desk) Undo() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	action := d.edits.Undo()
	if action == nil {
		return false
	}
	action.Undo(&d.state)
	d.log.Debug().Str("action", action.Description()).Msg("undo")
	return true
}

// Redo reapplies the last undone toggle. Returns false if nothing was redone.
func (d *Desk) Redo() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	action := d.edits.Redo()
	if action == nil {
		return false
	}
	action.Do(&d.state)
	d.log.Debug().Str("action", action.Description()).Msg("redo")
	return true
}

// CanUndo returns true if there are toggles to undo.
func (d *Desk) CanUndo() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.edits.CanUndo()
}

// CanRedo returns true if there are toggles to redo.
func (d *Desk) CanRedo() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.edits.CanRedo()
}
