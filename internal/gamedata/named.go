package gamedata

import (
	"fmt"
	"sort"
	"strings"

	"github.com/samdwyer/officecrawl/internal/navigation"
)

// Pos is a room's position on the minimap. Y grows southward.
type Pos struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// NamedRoomDef defines a hand-placed room with explicit exits.
type NamedRoomDef struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Pos         *Pos              `json:"pos"`
	Objects     []string          `json:"objects"`
	NPCs        []string          `json:"npcs"`
	Exits       map[string]string `json:"exits"` // direction -> room ID
}

// NamedRoomsFile represents the structure of named_rooms.json.
type NamedRoomsFile struct {
	Start string         `json:"start"`
	Rooms []NamedRoomDef `json:"rooms"`
}

// LoadNamedRooms loads the hand-placed rooms from the embedded named_rooms.json.
func LoadNamedRooms() (NamedRoomsFile, error) {
	return Load[NamedRoomsFile]("named_rooms.json")
}

// Room returns the room with the given ID, or nil if not found.
func (f NamedRoomsFile) Room(id string) *NamedRoomDef {
	for i := range f.Rooms {
		if f.Rooms[i].ID == id {
			return &f.Rooms[i]
		}
	}
	return nil
}

// ExitTable converts the room exits into a navigation exit table.
// Exit keys must be cardinal directions or their aliases.
func (f NamedRoomsFile) ExitTable() (navigation.ExitTable, error) {
	table := make(navigation.ExitTable, len(f.Rooms))
	for _, room := range f.Rooms {
		if _, dup := table[navigation.RoomID(room.ID)]; dup {
			return nil, fmt.Errorf("room %q defined twice", room.ID)
		}
		exits := make(navigation.Exits, len(room.Exits))
		for key, dest := range room.Exits {
			d, err := navigation.ParseDirection(key)
			if err != nil {
				return nil, fmt.Errorf("room %q: %w", room.ID, err)
			}
			if _, dup := exits[d]; dup {
				return nil, fmt.Errorf("room %q: duplicate exit %s", room.ID, d)
			}
			exits[d] = navigation.RoomID(dest)
		}
		table[navigation.RoomID(room.ID)] = exits
	}
	return table, nil
}

// ValidateNamedRooms reports layout problems: missing or duplicate positions,
// exits leading to undefined rooms and exit keys naming the same direction.
// The returned warnings are sorted for stable output.
func ValidateNamedRooms(f NamedRoomsFile) []string {
	var warnings []string
	seen := make(map[Pos]string)
	ids := make(map[string]bool, len(f.Rooms))
	for _, room := range f.Rooms {
		ids[room.ID] = true
	}

	for _, room := range f.Rooms {
		if room.Pos == nil {
			warnings = append(warnings, fmt.Sprintf("room %q is missing pos data", room.ID))
		} else if other, ok := seen[*room.Pos]; ok {
			warnings = append(warnings, fmt.Sprintf("rooms %q and %q share position %d,%d", other, room.ID, room.Pos.X, room.Pos.Y))
		} else {
			seen[*room.Pos] = room.ID
		}

		keys := make(map[navigation.Direction][]string)
		for dir, dest := range room.Exits {
			if !ids[dest] {
				warnings = append(warnings, fmt.Sprintf("room %q exit %s leads to undefined room %q", room.ID, dir, dest))
			}
			if d, err := navigation.ParseDirection(dir); err == nil {
				keys[d] = append(keys[d], dir)
			}
		}
		for d, dup := range keys {
			if len(dup) > 1 {
				sort.Strings(dup)
				warnings = append(warnings, fmt.Sprintf("room %q has duplicate exit %s (%s)", room.ID, d, strings.Join(dup, ", ")))
			}
		}
	}

	if f.Start != "" && !ids[f.Start] {
		warnings = append(warnings, fmt.Sprintf("start room %q is not defined", f.Start))
	}

	sort.Strings(warnings)
	return warnings
}
