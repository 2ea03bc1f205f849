package world

import (
	"errors"
	"fmt"
	"strings"
)

// ErrRaggedGrid indicates rows of differing lengths.
var ErrRaggedGrid = errors.New("world: all grid rows must have the same length")

// Point is a cell coordinate. X grows to the east, Y to the south.
type Point struct {
	X, Y int
}

// Less orders points by Y first, then X.
func (p Point) Less(o Point) bool {
	if p.Y != o.Y {
		return p.Y < o.Y
	}
	return p.X < o.X
}

// Grid is a rectangular array of terrain codes indexed as Grid[y][x].
type Grid [][]Code

// ParseGrid converts rows of raw strings into a Grid, trimming whitespace.
// Blank strings become Empty.
func ParseGrid(rows [][]string) Grid {
	g := make(Grid, len(rows))
	for y, row := range rows {
		g[y] = make([]Code, len(row))
		for x, raw := range row {
			g[y][x] = Code(strings.TrimSpace(raw))
		}
	}
	return g
}

// Height returns the number of rows.
func (g Grid) Height() int {
	return len(g)
}

// Width returns the length of the first row.
func (g Grid) Width() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// InBounds returns true if the coordinate lies inside the grid.
func (g Grid) InBounds(x, y int) bool {
	return y >= 0 && y < len(g) && x >= 0 && x < len(g[y])
}

// At returns the code at the given position, or Empty when out of bounds.
func (g Grid) At(x, y int) Code {
	if !g.InBounds(x, y) {
		return Empty
	}
	return g[y][x]
}

// Validate reports ErrRaggedGrid if any row differs in length from the first.
func (g Grid) Validate() error {
	width := g.Width()
	for y, row := range g {
		if len(row) != width {
			return fmt.Errorf("%w: row %d has %d cells, row 0 has %d", ErrRaggedGrid, y, len(row), width)
		}
	}
	return nil
}
