package navigation

import (
	"fmt"
	"slices"
)

// RoomID names a room in an exit table.
type RoomID string

// Exits maps a direction to the room it leads to.
type Exits map[Direction]RoomID

// ExitTable holds the exits of every known room.
type ExitTable map[RoomID]Exits

// RoomNavigator moves between named rooms along explicit exits.
type RoomNavigator struct {
	rooms ExitTable
	state *State[RoomID]
}

var _ Navigator[RoomID] = (*RoomNavigator)(nil)

// NewRoomNavigator creates a navigator positioned at start.
func NewRoomNavigator(rooms ExitTable, start RoomID) (*RoomNavigator, error) {
	if _, ok := rooms[start]; !ok {
		return nil, fmt.Errorf("%w: start room %q", ErrUnknownRegion, start)
	}
	return &RoomNavigator{
		rooms: rooms,
		state: NewState(start),
	}, nil
}

// Current returns the occupied room.
func (n *RoomNavigator) Current() RoomID {
	return n.state.Current()
}

// Discovered returns every room ever occupied, in discovery order.
func (n *RoomNavigator) Discovered() []RoomID {
	return n.state.Discovered()
}

// IsDiscovered returns true if the room has ever been occupied.
func (n *RoomNavigator) IsDiscovered(id RoomID) bool {
	return n.state.IsDiscovered(id)
}

// Neighbors returns the distinct rooms reachable through the current room's
// exits, in north, east, south, west order.
func (n *RoomNavigator) Neighbors() []RoomID {
	exits := n.rooms[n.state.Current()]
	var rooms []RoomID
	for _, d := range Directions {
		if dest, ok := exits[d]; ok && !slices.Contains(rooms, dest) {
			rooms = append(rooms, dest)
		}
	}
	return rooms
}

// RequestMove moves into target if some exit of the current room leads there.
func (n *RoomNavigator) RequestMove(target RoomID) (RoomID, error) {
	current := n.state.Current()

	if _, ok := n.rooms[target]; !ok {
		return current, fmt.Errorf("%w: %q", ErrUnknownRegion, target)
	}
	if target == current {
		return current, fmt.Errorf("%w: %q", ErrAlreadyThere, target)
	}
	if !slices.Contains(n.Neighbors(), target) {
		return current, fmt.Errorf("%w: %q to %q", ErrNotAdjacent, current, target)
	}

	n.state.enter(target)
	return target, nil
}

// RequestDirectionalMove follows the current room's exit in the given direction.
func (n *RoomNavigator) RequestDirectionalMove(direction string) (RoomID, error) {
	current := n.state.Current()

	d, err := ParseDirection(direction)
	if err != nil {
		return current, err
	}

	target, ok := n.rooms[current][d]
	if !ok {
		return current, fmt.Errorf("%w: no exit %s from %q", ErrNotAdjacent, d, current)
	}
	return n.RequestMove(target)
}

// ExitToward returns the destination of the exit in direction d, if any.
func (n *RoomNavigator) ExitToward(d Direction) (RoomID, bool) {
	target, ok := n.rooms[n.state.Current()][d]
	return target, ok
}
