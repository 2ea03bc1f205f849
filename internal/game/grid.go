package game

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/samdwyer/officecrawl/internal/gamedata"
	"github.com/samdwyer/officecrawl/internal/navigation"
	"github.com/samdwyer/officecrawl/internal/ui"
	"github.com/samdwyer/officecrawl/internal/world"
)

// gridExplorer moves between regions flood-filled from a terrain grid.
type gridExplorer struct {
	layout  *world.Layout
	catalog *gamedata.RoomCatalog
	nav     *navigation.RegionNavigator
}

func newGridExplorer(layout *world.Layout, catalog *gamedata.RoomCatalog, start string) (*gridExplorer, error) {
	id, err := gridStart(layout, start)
	if err != nil {
		return nil, err
	}
	nav, err := navigation.NewRegionNavigator(layout, id)
	if err != nil {
		return nil, err
	}
	return &gridExplorer{layout: layout, catalog: catalog, nav: nav}, nil
}

// gridStart resolves the configured start: a region number, a terrain code,
// or empty for the region at the origin. Codes match exactly first, then
// case-insensitively.
func gridStart(layout *world.Layout, start string) (world.RegionID, error) {
	start = strings.TrimSpace(start)
	if start == "" {
		return layout.StartRegion()
	}
	if n, err := strconv.Atoi(start); err == nil {
		return world.RegionID(n), nil
	}
	if ids := layout.RegionsByCode(world.Code(start)); len(ids) > 0 {
		return ids[0], nil
	}
	for _, r := range layout.Regions {
		if strings.EqualFold(string(r.Code), start) {
			return r.ID, nil
		}
	}
	return world.NoRegion, fmt.Errorf("%w: start %q", navigation.ErrUnknownRegion, start)
}

func (e *gridExplorer) def(id world.RegionID) gamedata.RoomDef {
	r, _ := e.layout.Region(id)
	return e.catalog.Describe(r.Code)
}

func (e *gridExplorer) name(id world.RegionID) string {
	return e.def(id).Name
}

func (e *gridExplorer) Here() Place {
	d := e.def(e.nav.Current())
	return Place{Name: d.Name, Description: d.Description}
}

func (e *gridExplorer) Exits() []string {
	neighbors := e.nav.Neighbors()
	exits := make([]string, 0, len(neighbors))
	for _, id := range neighbors {
		exits = append(exits, fmt.Sprintf("#%d %s", id, e.name(id)))
	}
	return exits
}

func (e *gridExplorer) Go(target string) (Move, error) {
	from := e.nav.Current()
	target = strings.TrimPrefix(strings.TrimSpace(target), "#")

	var (
		to        world.RegionID
		direction string
		err       error
	)
	if n, convErr := strconv.Atoi(target); convErr == nil {
		to, err = e.nav.RequestMove(world.RegionID(n))
	} else if d, dirErr := navigation.ParseDirection(target); dirErr == nil {
		direction = d.String()
		to, err = e.nav.RequestDirectionalMove(target)
	} else {
		id, ok := e.lookup(target)
		if !ok {
			return Move{From: e.name(from), To: e.name(from)}, fmt.Errorf("%w: %q", navigation.ErrUnknownRegion, target)
		}
		to, err = e.nav.RequestMove(id)
	}
	if err != nil {
		return Move{From: e.name(from), To: e.name(to)}, err
	}
	return Move{From: e.name(from), To: e.name(to), Direction: direction}, nil
}

// lookup finds a region by terrain code or room name. Neighbors are preferred,
// then the current region, so "go hallway" picks the reachable hallway.
func (e *gridExplorer) lookup(target string) (world.RegionID, bool) {
	var matches []world.RegionID
	for _, r := range e.layout.Regions {
		d := e.catalog.Describe(r.Code)
		if strings.EqualFold(string(r.Code), target) || strings.EqualFold(d.Name, target) {
			matches = append(matches, r.ID)
		}
	}
	if len(matches) == 0 {
		return world.NoRegion, false
	}
	for _, id := range matches {
		if slices.Contains(e.nav.Neighbors(), id) {
			return id, true
		}
	}
	if slices.Contains(matches, e.nav.Current()) {
		return e.nav.Current(), true
	}
	return matches[0], true
}

func (e *gridExplorer) Discovered() []string {
	ids := e.nav.Discovered()
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		names = append(names, e.name(id))
	}
	return names
}

func (e *gridExplorer) RoomCount() int {
	return len(e.layout.Regions)
}

func (e *gridExplorer) MapCells() []ui.MapCell {
	current := e.nav.Current()
	neighbors := e.nav.Neighbors()
	anchor := e.layout.Regions[current].Anchor

	cells := make([]ui.MapCell, 0, e.layout.Width*e.layout.Height)
	for y := 0; y < e.layout.Height; y++ {
		for x := 0; x < e.layout.Width; x++ {
			id := e.layout.RegionAt(x, y)
			cell := ui.MapCell{X: x, Y: y}
			if id == world.NoRegion {
				cell.State = ui.CellWall
				cell.Label = " ·"
				cells = append(cells, cell)
				continue
			}

			code := e.layout.CodeAt(x, y)
			cell.Color = e.catalog.Describe(code).TCellColor()
			switch {
			case id == current:
				cell.State = ui.CellCurrent
				cell.Label = " " + code.Label()
				cell.Marker = x == anchor.X && y == anchor.Y
			case e.nav.IsDiscovered(id):
				cell.State = ui.CellKnown
				cell.Label = " " + code.Label()
			case slices.Contains(neighbors, id):
				cell.State = ui.CellAdjacent
				cell.Label = " ??"
			default:
				cell.State = ui.CellHidden
			}
			if cell.State != ui.CellHidden {
				cell.Target = strconv.Itoa(int(id))
			}
			cells = append(cells, cell)
		}
	}
	return cells
}
