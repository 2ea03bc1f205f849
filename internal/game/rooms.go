package game

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/officecrawl/internal/gamedata"
	"github.com/samdwyer/officecrawl/internal/navigation"
	"github.com/samdwyer/officecrawl/internal/ui"
)

// roomsExplorer moves between hand-placed rooms through their exits.
type roomsExplorer struct {
	file gamedata.NamedRoomsFile
	nav  *navigation.RoomNavigator
}

func newRoomsExplorer(file gamedata.NamedRoomsFile, start string) (*roomsExplorer, error) {
	table, err := file.ExitTable()
	if err != nil {
		return nil, err
	}
	if start = strings.TrimSpace(start); start == "" {
		start = file.Start
	}
	nav, err := navigation.NewRoomNavigator(table, navigation.RoomID(start))
	if err != nil {
		return nil, err
	}
	return &roomsExplorer{file: file, nav: nav}, nil
}

func (e *roomsExplorer) name(id navigation.RoomID) string {
	if room := e.file.Room(string(id)); room != nil {
		return room.Name
	}
	return string(id)
}

func (e *roomsExplorer) Here() Place {
	room := e.file.Room(string(e.nav.Current()))
	if room == nil {
		return Place{Name: string(e.nav.Current()), Description: "You are somewhere unfamiliar."}
	}
	return Place{
		Name:        room.Name,
		Description: room.Description,
		Objects:     room.Objects,
		NPCs:        room.NPCs,
	}
}

func (e *roomsExplorer) Exits() []string {
	var exits []string
	for _, d := range navigation.Directions {
		if dest, ok := e.nav.ExitToward(d); ok {
			exits = append(exits, fmt.Sprintf("%s to %s", d, e.name(dest)))
		}
	}
	return exits
}

func (e *roomsExplorer) Go(target string) (Move, error) {
	from := e.nav.Current()

	var (
		to        navigation.RoomID
		direction string
		err       error
	)
	if d, dirErr := navigation.ParseDirection(target); dirErr == nil {
		direction = d.String()
		to, err = e.nav.RequestDirectionalMove(target)
	} else if id, ok := e.lookup(target); ok {
		to, err = e.nav.RequestMove(id)
	} else {
		to, err = from, dirErr
	}
	if err != nil {
		return Move{From: e.name(from), To: e.name(to)}, err
	}
	return Move{From: e.name(from), To: e.name(to), Direction: direction}, nil
}

// lookup matches a room by ID or display name.
func (e *roomsExplorer) lookup(target string) (navigation.RoomID, bool) {
	target = strings.TrimSpace(target)
	for _, room := range e.file.Rooms {
		if strings.EqualFold(room.ID, target) || strings.EqualFold(room.Name, target) {
			return navigation.RoomID(room.ID), true
		}
	}
	return "", false
}

func (e *roomsExplorer) Discovered() []string {
	ids := e.nav.Discovered()
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		names = append(names, e.name(id))
	}
	return names
}

func (e *roomsExplorer) RoomCount() int {
	return len(e.file.Rooms)
}

// MapCells lays rooms out on a minimap two cells apart. Only the current,
// discovered and adjacent rooms are drawn, and a discovered room gets a
// connector for each exit leading to another drawn room. Rooms without a
// position are not drawn.
func (e *roomsExplorer) MapCells() []ui.MapCell {
	current := e.nav.Current()
	neighbors := e.nav.Neighbors()

	var cells []ui.MapCell
	for _, room := range e.file.Rooms {
		if room.Pos == nil {
			continue
		}
		id := navigation.RoomID(room.ID)
		cell := ui.MapCell{
			X:      room.Pos.X * 2,
			Y:      room.Pos.Y * 2,
			Color:  tcell.ColorTeal,
			Target: room.ID,
		}
		switch {
		case id == current:
			cell.State = ui.CellCurrent
			cell.Marker = true
		case e.nav.IsDiscovered(id):
			cell.State = ui.CellKnown
			cell.Label = " " + initials(room.Name)
		case slices.Contains(neighbors, id):
			cell.State = ui.CellAdjacent
			cell.Label = " ??"
		default:
			continue
		}
		cells = append(cells, cell)

		if !e.nav.IsDiscovered(id) {
			continue
		}
		for key, dest := range room.Exits {
			d, err := navigation.ParseDirection(key)
			if err != nil {
				continue
			}
			other := e.file.Room(dest)
			if other == nil || other.Pos == nil {
				continue
			}
			destID := navigation.RoomID(dest)
			if !e.nav.IsDiscovered(destID) && !slices.Contains(neighbors, destID) {
				continue
			}
			dx, dy := d.Delta()
			label := "───"
			if dy != 0 {
				label = " │ "
			}
			cells = append(cells, ui.MapCell{
				X:     room.Pos.X*2 + dx,
				Y:     room.Pos.Y*2 + dy,
				Label: label,
				State: ui.CellWall,
			})
		}
	}
	return cells
}

// initials abbreviates a room name for the minimap, e.g. "Break Room" -> "BR".
func initials(name string) string {
	words := strings.Fields(name)
	switch {
	case len(words) == 0:
		return "?"
	case len(words) == 1:
		r := []rune(strings.ToUpper(words[0]))
		return string(r[:min(2, len(r))])
	default:
		return strings.ToUpper(string([]rune(words[0])[0]) + string([]rune(words[1])[0]))
	}
}
