package world

import (
	"slices"

	"github.com/zyedidia/generic/mapset"
)

// AdjacencyGraph maps each region to the regions that share a cell boundary with it.
// It is symmetric and has no self loops.
type AdjacencyGraph struct {
	neighbors [][]RegionID // Sorted ascending, no duplicates
}

// BuildAdjacency derives the region adjacency graph by inspecting the four
// neighbors of every owned cell. Both directions of a boundary are visited
// during the sweep, so the result is symmetric without a separate pass.
func BuildAdjacency(g Grid, cells CellMap) AdjacencyGraph {
	count := 0
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if id := cells.At(x, y); int(id) >= count {
				count = int(id) + 1
			}
		}
	}

	sets := make([]mapset.Set[RegionID], count)
	for i := range sets {
		sets[i] = mapset.New[RegionID]()
	}

	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			id := cells.At(x, y)
			if id == NoRegion {
				continue
			}
			for _, d := range neighborOffsets {
				other := cells.At(x+d[0], y+d[1])
				if other == NoRegion || other == id {
					continue
				}
				sets[id].Put(other)
			}
		}
	}

	neighbors := make([][]RegionID, count)
	for i, set := range sets {
		list := make([]RegionID, 0, set.Size())
		set.Each(func(id RegionID) {
			list = append(list, id)
		})
		slices.Sort(list)
		neighbors[i] = list
	}

	return AdjacencyGraph{neighbors: neighbors}
}

// Len returns the number of regions in the graph.
func (a AdjacencyGraph) Len() int {
	return len(a.neighbors)
}

// Has returns true if id is a region of the graph.
func (a AdjacencyGraph) Has(id RegionID) bool {
	return id >= 0 && int(id) < len(a.neighbors)
}

// Neighbors returns a copy of the sorted neighbor list of id, or nil for unknown ids.
func (a AdjacencyGraph) Neighbors(id RegionID) []RegionID {
	if !a.Has(id) {
		return nil
	}
	return slices.Clone(a.neighbors[id])
}

// Adjacent returns true if from and to share at least one cell boundary.
func (a AdjacencyGraph) Adjacent(from, to RegionID) bool {
	if !a.Has(from) {
		return false
	}
	_, found := slices.BinarySearch(a.neighbors[from], to)
	return found
}
