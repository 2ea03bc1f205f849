package game

import (
	"fmt"
	"strings"

	"github.com/samdwyer/officecrawl/internal/ui"
)

// Place is what the player sees of the occupied room.
type Place struct {
	Name        string
	Description string
	Objects     []string
	NPCs        []string
}

// Move reports the rooms involved in a move attempt. When the attempt fails,
// To is the room the player is still in.
type Move struct {
	From, To  string // Room names
	Direction string // Set only on a successful directional move
}

// explorer adapts one movement model to the session.
type explorer interface {
	Here() Place
	// Exits lists the available moves, e.g. "north to Conference Room".
	Exits() []string
	// Go resolves target and requests the move. Failures leave the position unchanged.
	Go(target string) (Move, error)
	// Discovered returns the names of visited rooms in visit order.
	Discovered() []string
	RoomCount() int
	MapCells() []ui.MapCell
}

// summary renders the room line printed by "look".
func summary(p Place, exits []string) string {
	return fmt.Sprintf("%s — %s Objects: %s. NPCs: %s. Exits: %s.",
		p.Name, p.Description, listOrNone(p.Objects), listOrNone(p.NPCs), listOrNone(exits))
}

func listOrNone(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	return strings.Join(items, ", ")
}
