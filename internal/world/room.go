package world

// RegionID identifies a region. IDs are dense and start at 0.
type RegionID int

// NoRegion is the owner of empty cells.
const NoRegion RegionID = -1

// Bounds is the inclusive bounding box of a region's cells.
type Bounds struct {
	MinX, MaxX int
	MinY, MaxY int
}

// Contains returns true if the given point is inside the bounds.
func (b Bounds) Contains(x, y int) bool {
	return x >= b.MinX && x <= b.MaxX && y >= b.MinY && y <= b.MaxY
}

// extend grows the bounds to cover (x, y).
func (b *Bounds) extend(x, y int) {
	b.MinX = min(b.MinX, x)
	b.MaxX = max(b.MaxX, x)
	b.MinY = min(b.MinY, y)
	b.MaxY = max(b.MaxY, y)
}

// Region is a maximal 4-connected group of cells sharing one terrain code.
type Region struct {
	ID     RegionID
	Code   Code
	Cells  []Point // In flood-fill visit order
	Bounds Bounds
	Anchor Point // Topmost cell, leftmost among ties
}

// Size returns the number of cells in the region.
func (r Region) Size() int {
	return len(r.Cells)
}

// Contains returns true if the given point is one of the region's cells.
func (r Region) Contains(x, y int) bool {
	if !r.Bounds.Contains(x, y) {
		return false
	}
	for _, c := range r.Cells {
		if c.X == x && c.Y == y {
			return true
		}
	}
	return false
}
