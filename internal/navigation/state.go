// Package navigation tracks where the player is and validates moves between
// regions or named rooms.
package navigation

import (
	"slices"

	"github.com/zyedidia/generic/mapset"
)

// Navigator validates and executes moves over some adjacency model.
// Implementations are not safe for concurrent use.
type Navigator[ID comparable] interface {
	// Current returns the occupied location.
	Current() ID
	// Discovered returns every location ever occupied, in discovery order.
	Discovered() []ID
	// Neighbors returns the locations reachable in one move.
	Neighbors() []ID
	// RequestMove moves to target, or returns an error and leaves state unchanged.
	RequestMove(target ID) (ID, error)
}

// State is the mutable part of a session: where the player is and where they have been.
type State[ID comparable] struct {
	current ID
	seen    mapset.Set[ID]
	order   []ID
}

// NewState creates a state positioned at start, with start already discovered.
func NewState[ID comparable](start ID) *State[ID] {
	s := &State[ID]{
		current: start,
		seen:    mapset.New[ID](),
	}
	s.discover(start)
	return s
}

// Current returns the occupied location.
func (s *State[ID]) Current() ID {
	return s.current
}

// Discovered returns a copy of the discovered locations in discovery order.
func (s *State[ID]) Discovered() []ID {
	return slices.Clone(s.order)
}

// IsDiscovered returns true if id has ever been occupied.
func (s *State[ID]) IsDiscovered(id ID) bool {
	return s.seen.Has(id)
}

// enter moves to id and marks it discovered. Re-entering adds nothing.
func (s *State[ID]) enter(id ID) {
	s.current = id
	s.discover(id)
}

func (s *State[ID]) discover(id ID) {
	if s.seen.Has(id) {
		return
	}
	s.seen.Put(id)
	s.order = append(s.order, id)
}
