package navigation

import (
	"fmt"
	"slices"

	"github.com/samdwyer/officecrawl/internal/world"
)

// RegionNavigator moves between flood-filled regions along the adjacency graph.
type RegionNavigator struct {
	layout *world.Layout
	state  *State[world.RegionID]
}

var _ Navigator[world.RegionID] = (*RegionNavigator)(nil)

// NewRegionNavigator creates a navigator positioned at start.
func NewRegionNavigator(layout *world.Layout, start world.RegionID) (*RegionNavigator, error) {
	if !layout.Graph.Has(start) {
		return nil, fmt.Errorf("%w: start region %d", ErrUnknownRegion, start)
	}
	return &RegionNavigator{
		layout: layout,
		state:  NewState(start),
	}, nil
}

// Current returns the occupied region.
func (n *RegionNavigator) Current() world.RegionID {
	return n.state.Current()
}

// Discovered returns every region ever occupied, in discovery order.
func (n *RegionNavigator) Discovered() []world.RegionID {
	return n.state.Discovered()
}

// IsDiscovered returns true if the region has ever been occupied.
func (n *RegionNavigator) IsDiscovered(id world.RegionID) bool {
	return n.state.IsDiscovered(id)
}

// Neighbors returns the regions adjacent to the current one, in ID order.
func (n *RegionNavigator) Neighbors() []world.RegionID {
	return n.layout.Neighbors(n.state.Current())
}

// RequestMove moves into target if it shares a boundary with the current region.
func (n *RegionNavigator) RequestMove(target world.RegionID) (world.RegionID, error) {
	current := n.state.Current()

	switch {
	case !n.layout.Graph.Has(target):
		return current, fmt.Errorf("%w: %d", ErrUnknownRegion, target)
	case target == current:
		return current, fmt.Errorf("%w: %d", ErrAlreadyThere, target)
	case !n.layout.Graph.Adjacent(current, target):
		return current, fmt.Errorf("%w: %d to %d", ErrNotAdjacent, current, target)
	}

	n.state.enter(target)
	return target, nil
}

// NeighborsToward returns the regions entered by stepping from any cell of the
// current region in direction d, in ID order.
func (n *RegionNavigator) NeighborsToward(d Direction) []world.RegionID {
	current, ok := n.layout.Region(n.state.Current())
	if !ok {
		return nil
	}
	dx, dy := d.Delta()
	if dx == 0 && dy == 0 {
		return nil
	}

	var found []world.RegionID
	for _, c := range current.Cells {
		id := n.layout.RegionAt(c.X+dx, c.Y+dy)
		if id == world.NoRegion || id == current.ID || slices.Contains(found, id) {
			continue
		}
		found = append(found, id)
	}
	slices.Sort(found)
	return found
}

// RequestDirectionalMove steps across the current region's boundary in the
// given direction. When several regions lie that way the lowest ID wins.
func (n *RegionNavigator) RequestDirectionalMove(direction string) (world.RegionID, error) {
	d, err := ParseDirection(direction)
	if err != nil {
		return n.state.Current(), err
	}
	candidates := n.NeighborsToward(d)
	if len(candidates) == 0 {
		return n.state.Current(), fmt.Errorf("%w: nothing %s of region %d", ErrNotAdjacent, d, n.state.Current())
	}
	return n.RequestMove(candidates[0])
}
