package booking

import (
	"fmt"

	"github.com/elektrokombinacija/hotel-alloc/internal/core"
)

// EditAction represents an undoable manual change.
type EditAction interface {
	Do(s *State)
	Undo(s *State)
	Description() string
}

// EditStack keeps undo/redo history for manual changes.
type EditStack struct {
	undoStack []EditAction
	redoStack []EditAction
}

// NewEditStack creates an empty history.
func NewEditStack() *EditStack {
	return &EditStack{
		undoStack: make([]EditAction, 0),
		redoStack: make([]EditAction, 0),
	}
}

// Execute performs an action and adds it to undo stack.
func (e *EditStack) Execute(action EditAction, s *State) {
	action.Do(s)
	e.undoStack = append(e.undoStack, action)
	e.redoStack = nil // Clear redo stack on new action
}

// Undo pops the last action. The caller reverts it.
func (e *EditStack) Undo() EditAction {
	if len(e.undoStack) == 0 {
		return nil
	}
	action := e.undoStack[len(e.undoStack)-1]
	e.undoStack = e.undoStack[:len(e.undoStack)-1]
	e.redoStack = append(e.redoStack, action)
	return action
}

// Redo pops the last undone action. The caller reapplies it.
func (e *EditStack) Redo() EditAction {
	if len(e.redoStack) == 0 {
		return nil
	}
	action := e.redoStack[len(e.redoStack)-1]
	e.redoStack = e.redoStack[:len(e.redoStack)-1]
	e.undoStack = append(e.undoStack, action)
	return action
}

// Clear drops all history.
func (e *EditStack) Clear() {
	e.undoStack = e.undoStack[:0]
	e.redoStack = nil
}

// CanUndo returns true if there are actions to undo.
func (e *EditStack) CanUndo() bool {
	return len(e.undoStack) > 0
}

// CanRedo returns true if there are actions to redo.
func (e *EditStack) CanRedo() bool {
	return len(e.redoStack) > 0
}

// ToggleAction is a manual occupancy change of one room.
type ToggleAction struct {
	Room core.RoomID
	From core.Status
	To   core.Status
}

// Do applies the change unless the room was booked in the meantime.
func (a *ToggleAction) Do(s *State) {
	if s.Status[a.Room] != core.Booked {
		s.Status[a.Room] = a.To
	}
}

// Undo reverts the change unless the room was booked in the meantime.
func (a *ToggleAction) Undo(s *State) {
	if s.Status[a.Room] != core.Booked {
		s.Status[a.Room] = a.From
	}
}

func (a *ToggleAction) Description() string {
	return fmt.Sprintf("Toggle room %s to %s", a.Room, a.To)
}
