package gamedata

import (
	"github.com/samdwyer/officecrawl/internal/world"
)

// MapFile represents a floor plan. Null or blank cells are empty.
type MapFile struct {
	Name string     `json:"name" yaml:"name"`
	Seed int64      `json:"seed,omitempty" yaml:"seed,omitempty"`
	Grid [][]string `json:"grid" yaml:"grid"`
}

// ToGrid converts the raw rows into a world.Grid.
func (m MapFile) ToGrid() world.Grid {
	return world.ParseGrid(m.Grid)
}

// LoadMap loads the embedded office floor plan from map.json.
func LoadMap() (MapFile, error) {
	return Load[MapFile]("map.json")
}

// LoadMapFile loads a floor plan from disk (YAML, or JSON by extension).
func LoadMapFile(path string) (MapFile, error) {
	return LoadFile[MapFile](path)
}
