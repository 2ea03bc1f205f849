package navigation

import "errors"

// Move failures. They are expected outcomes of player input and never leave
// the navigation state partially updated.
var (
	// ErrUnknownRegion indicates the move target does not exist.
	ErrUnknownRegion = errors.New("navigation: unknown region")
	// ErrAlreadyThere indicates the move target is the current region.
	ErrAlreadyThere = errors.New("navigation: already there")
	// ErrNotAdjacent indicates no boundary or exit connects current and target.
	ErrNotAdjacent = errors.New("navigation: not adjacent")
	// ErrInvalidDirection indicates a direction token that is not a cardinal direction.
	ErrInvalidDirection = errors.New("navigation: invalid direction")
)
