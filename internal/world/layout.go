package world

import "errors"

// ErrNoRegions indicates a grid without any non-empty cell.
var ErrNoRegions = errors.New("world: layout has no regions")

// Layout is the segmented form of a grid: its regions, the cell ownership map
// and the region adjacency graph. A Layout is read-only once built.
type Layout struct {
	Width   int
	Height  int
	Grid    Grid
	Cells   CellMap
	Regions []Region
	Graph   AdjacencyGraph
}

// BuildRegions validates the grid, segments it into regions and derives the
// adjacency graph. It is pure: the same grid always yields the same layout.
func BuildRegions(g Grid) (*Layout, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}

	cells, regions := Segment(g)
	graph := BuildAdjacency(g, cells)

	return &Layout{
		Width:   g.Width(),
		Height:  g.Height(),
		Grid:    g,
		Cells:   cells,
		Regions: regions,
		Graph:   graph,
	}, nil
}

// MustBuildRegions builds a layout, panicking on error.
func MustBuildRegions(g Grid) *Layout {
	layout, err := BuildRegions(g)
	if err != nil {
		panic(err)
	}
	return layout
}

// CodeAt returns the terrain code at the given position.
func (l *Layout) CodeAt(x, y int) Code {
	return l.Grid.At(x, y)
}

// RegionAt returns the region owning the position, or NoRegion for empty cells.
func (l *Layout) RegionAt(x, y int) RegionID {
	return l.Cells.At(x, y)
}

// Region returns the region with the given ID.
func (l *Layout) Region(id RegionID) (Region, bool) {
	if id < 0 || int(id) >= len(l.Regions) {
		return Region{}, false
	}
	return l.Regions[id], true
}

// Neighbors returns the sorted neighbor IDs of a region.
func (l *Layout) Neighbors(id RegionID) []RegionID {
	return l.Graph.Neighbors(id)
}

// StartRegion returns the region owning the origin cell. When the origin is
// empty the first region in scan order is used.
func (l *Layout) StartRegion() (RegionID, error) {
	if len(l.Regions) == 0 {
		return NoRegion, ErrNoRegions
	}
	if id := l.RegionAt(0, 0); id != NoRegion {
		return id, nil
	}
	return l.Regions[0].ID, nil
}

// RegionsByCode returns the regions whose terrain code matches, in ID order.
func (l *Layout) RegionsByCode(code Code) []RegionID {
	var ids []RegionID
	for _, r := range l.Regions {
		if r.Code == code {
			ids = append(ids, r.ID)
		}
	}
	return ids
}
