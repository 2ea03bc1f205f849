package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/officecrawl/internal/entity"
)

// CellState controls how a map cell is drawn.
type CellState int

const (
	// CellHidden is a room the player knows nothing about.
	CellHidden CellState = iota
	// CellKnown is a discovered room.
	CellKnown
	// CellAdjacent is an undiscovered room one move away.
	CellAdjacent
	// CellCurrent is the occupied room.
	CellCurrent
	// CellWall is scenery such as connectors between rooms.
	CellWall
)

// MapCell is one slot of the map. Coordinates are in map cells, not screen
// columns; the renderer scales them and shifts negative coordinates into view.
type MapCell struct {
	X, Y   int
	Label  string
	Color  tcell.Color
	State  CellState
	Marker bool   // Draws the player symbol instead of the label
	Target string // Sent back as a move target when the cell is clicked
}

// RoomPanel describes the occupied room.
type RoomPanel struct {
	Name        string
	Description string
	Objects     []string
	NPCs        []string
	Exits       []string
}

// Frame is everything drawn in one pass.
type Frame struct {
	Title     string
	Map       []MapCell
	Room      RoomPanel
	Stats     []entity.StatLine
	Inventory []string
	Log       []string // Newest first
	Input     string
	Symbol    rune
}
