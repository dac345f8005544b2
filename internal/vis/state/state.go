// Package state manages the visualization state.
package state

import (
	"github.com/elektrokombinacija/hotel-alloc/internal/booking"
	"github.com/elektrokombinacija/hotel-alloc/internal/core"
)

// State holds all visualization state.
type State struct {
	Desk      *booking.Desk
	Requested int    // Rooms to book on the next request
	Message   string // Feedback for the last failed action
	Snapshot  booking.State
}

// NewState creates a new visualization state.
func NewState(desk *booking.Desk) *State {
	s := &State{
		Desk:      desk,
		Requested: min(4, desk.MaxRequest()),
	}
	s.Refresh()
	return s
}

// Refresh reloads the desk snapshot.
func (s *State) Refresh() {
	snap, err := s.Desk.Snapshot()
	if err != nil {
		s.Message = err.Error()
		return
	}
	s.Snapshot = snap
}

// StatusOf returns the displayed status of a room.
func (s *State) StatusOf(id core.RoomID) core.Status {
	return s.Snapshot.Status[id]
}

// SetRequested sets the request size, clamped to the desk's range.
func (s *State) SetRequested(n int) {
	s.Requested = max(1, min(n, s.Desk.MaxRequest()))
}

// Book requests the configured number of rooms.
func (s *State) Book() {
	s.Message = ""
	if _, err := s.Desk.Book(s.Requested); err != nil {
		s.Message = err.Error()
	}
	s.Refresh()
}

// Randomize randomizes occupancy.
func (s *State) Randomize() {
	s.Message = ""
	s.Desk.Randomize()
	s.Refresh()
}

// Reset makes every room available.
func (s *State) Reset() {
	s.Message = ""
	s.Desk.Reset()
	s.Refresh()
}

// Toggle flips a room between available and occupied. Booked rooms are
// left alone.
func (s *State) Toggle(id core.RoomID) {
	if s.StatusOf(id) == core.Booked {
		return
	}
	s.Message = ""
	if _, err := s.Desk.Toggle(id); err != nil {
		s.Message = err.Error()
	}
	s.Refresh()
}

// Undo reverts the last manual toggle.
func (s *State) Undo() {
	if s.Desk.Undo() {
		s.Refresh()
	}
}

// Redo reapplies the last undone toggle.
func (s *State) Redo() {
	if s.Desk.Redo() {
		s.Refresh()
	}
}

// Selected returns the last booking, or nil.
func (s *State) Selected() *booking.Booking {
	return s.Snapshot.Last
}
