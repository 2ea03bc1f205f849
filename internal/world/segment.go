package world

// CellMap gives the owning region of every cell in a grid.
type CellMap struct {
	width, height int
	owners        []RegionID // Row-major
}

func newCellMap(width, height int) CellMap {
	owners := make([]RegionID, width*height)
	for i := range owners {
		owners[i] = NoRegion
	}
	return CellMap{width: width, height: height, owners: owners}
}

// Width returns the number of columns.
func (m CellMap) Width() int { return m.width }

// Height returns the number of rows.
func (m CellMap) Height() int { return m.height }

// At returns the region owning (x, y), or NoRegion for empty or out-of-bounds cells.
func (m CellMap) At(x, y int) RegionID {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return NoRegion
	}
	return m.owners[y*m.width+x]
}

func (m CellMap) set(x, y int, id RegionID) {
	m.owners[y*m.width+x] = id
}

// neighborOffsets lists the 4-directional steps: east, west, south, north.
var neighborOffsets = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// Segment partitions a rectangular grid into regions. Cells are swept in
// row-major order; every unassigned non-empty cell seeds a new region that is
// grown by an iterative flood fill over same-coded 4-neighbors.
//
// The grid must already be rectangular (see Grid.Validate).
//
// Time:   O(W·H).
// Memory: O(W·H) for the cell map and the worklist.
func Segment(g Grid) (CellMap, []Region) {
	width, height := g.Width(), g.Height()
	cells := newCellMap(width, height)
	regions := make([]Region, 0)
	stack := make([]Point, 0, 16)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			code := g[y][x]
			if code.IsEmpty() || cells.At(x, y) != NoRegion {
				continue
			}

			region := Region{
				ID:     RegionID(len(regions)),
				Code:   code,
				Bounds: Bounds{MinX: x, MaxX: x, MinY: y, MaxY: y},
				Anchor: Point{X: x, Y: y},
			}

			cells.set(x, y, region.ID)
			stack = append(stack[:0], Point{X: x, Y: y})

			for len(stack) > 0 {
				cur := stack[len(stack)-1]
				stack = stack[:len(stack)-1]

				region.Cells = append(region.Cells, cur)
				region.Bounds.extend(cur.X, cur.Y)
				if cur.Less(region.Anchor) {
					region.Anchor = cur
				}

				for _, d := range neighborOffsets {
					nx, ny := cur.X+d[0], cur.Y+d[1]
					if !g.InBounds(nx, ny) || g[ny][nx] != code || cells.At(nx, ny) != NoRegion {
						continue
					}
					// Claim on push so a cell is never stacked twice.
					cells.set(nx, ny, region.ID)
					stack = append(stack, Point{X: nx, Y: ny})
				}
			}

			regions = append(regions, region)
		}
	}

	return cells, regions
}
