package gamedata

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/officecrawl/internal/navigation"
	"github.com/samdwyer/officecrawl/internal/world"
)

func TestLoadRoomCatalog(t *testing.T) {
	catalog, err := LoadRoomCatalog()
	if err != nil {
		t.Fatalf("Failed to load catalog: %v", err)
	}

	if catalog.Count() != 6 {
		t.Errorf("Expected 6 rooms, got %d", catalog.Count())
	}

	tests := []struct {
		code world.Code
		name string
	}{
		{"BR", "Break Room"},
		{"HW", "Hallway"},
		{"SF", "Open Office"},
		{"SC", "Storage Closet"},
		{"JR", "Conference Room"},
		{"MO", "IT Corner"},
	}
	for _, tt := range tests {
		if got := catalog.Describe(tt.code).Name; got != tt.name {
			t.Errorf("Describe(%q).Name = %q, want %q", tt.code, got, tt.name)
		}
		if !catalog.Known(tt.code) {
			t.Errorf("Known(%q) = false, want true", tt.code)
		}
	}
}

func TestDescribeUnknownCodeFallsBack(t *testing.T) {
	catalog := MustLoadRoomCatalog()

	for _, code := range []world.Code{"ZZ", world.Empty, "br"} {
		got := catalog.Describe(code)
		if got.Name != "Empty Office" {
			t.Errorf("Describe(%q).Name = %q, want %q", code, got.Name, "Empty Office")
		}
		if got.Description == "" {
			t.Errorf("Describe(%q).Description is empty", code)
		}
		if catalog.Known(code) {
			t.Errorf("Known(%q) = true, want false", code)
		}
	}
}

func TestLoadMapMatchesOfficeLayout(t *testing.T) {
	m, err := LoadMap()
	if err != nil {
		t.Fatalf("LoadMap() error = %v", err)
	}
	grid := m.ToGrid()

	if grid.Width() != 5 || grid.Height() != 5 {
		t.Fatalf("grid is %dx%d, want 5x5", grid.Width(), grid.Height())
	}
	if grid.At(1, 3) != world.Empty || grid.At(1, 4) != world.Empty {
		t.Error("null cells should decode to Empty")
	}

	layout, err := world.BuildRegions(grid)
	if err != nil {
		t.Fatalf("BuildRegions() error = %v", err)
	}
	if len(layout.Regions) != 6 {
		t.Errorf("len(Regions) = %d, want 6", len(layout.Regions))
	}
}

func TestLoadMapFileYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "floor.yaml")
	content := `name: Tiny
grid:
  - [A, A, ~]
  - [B, "", A]
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	m, err := LoadMapFile(path)
	if err != nil {
		t.Fatalf("LoadMapFile() error = %v", err)
	}
	if m.Name != "Tiny" {
		t.Errorf("Name = %q, want %q", m.Name, "Tiny")
	}
	grid := m.ToGrid()
	if grid.At(2, 0) != world.Empty || grid.At(1, 1) != world.Empty {
		t.Errorf("empty cells not decoded: %v", grid)
	}
	if grid.At(2, 1) != "A" {
		t.Errorf("At(2,1) = %q, want A", grid.At(2, 1))
	}
}

func TestLoadMapFileMissing(t *testing.T) {
	_, err := LoadMapFile(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadMapFile(missing) error = %v, want ErrNotExist", err)
	}
}

func TestNamedRoomsExitTable(t *testing.T) {
	file, err := LoadNamedRooms()
	if err != nil {
		t.Fatalf("LoadNamedRooms() error = %v", err)
	}
	if warnings := ValidateNamedRooms(file); len(warnings) != 0 {
		t.Errorf("ValidateNamedRooms() = %v, want none", warnings)
	}

	table, err := file.ExitTable()
	if err != nil {
		t.Fatalf("ExitTable() error = %v", err)
	}
	if len(table) != 6 {
		t.Errorf("len(ExitTable) = %d, want 6", len(table))
	}
	if got := table["hallway"][navigation.West]; got != "breakRoom" {
		t.Errorf("hallway west = %q, want breakRoom", got)
	}
}

func TestNamedRoomsExitTableRejectsBadDirection(t *testing.T) {
	file := NamedRoomsFile{Rooms: []NamedRoomDef{
		{ID: "a", Exits: map[string]string{"up": "b"}},
	}}
	if _, err := file.ExitTable(); !errors.Is(err, navigation.ErrInvalidDirection) {
		t.Errorf("ExitTable() error = %v, want ErrInvalidDirection", err)
	}
}

func TestNamedRoomsExitTableRejectsDuplicateDirection(t *testing.T) {
	file := NamedRoomsFile{Rooms: []NamedRoomDef{
		{ID: "a", Exits: map[string]string{"n": "b", "north": "c"}},
		{ID: "b"},
		{ID: "c"},
	}}
	for i := 0; i < 50; i++ {
		_, err := file.ExitTable()
		if err == nil || !strings.Contains(err.Error(), "duplicate exit north") {
			t.Fatalf("ExitTable() error = %v, want duplicate exit north", err)
		}
	}
}

func TestValidateNamedRoomsDuplicateDirection(t *testing.T) {
	file := NamedRoomsFile{Rooms: []NamedRoomDef{
		{ID: "a", Pos: &Pos{0, 0}, Exits: map[string]string{"n": "b", "north": "c"}},
		{ID: "b", Pos: &Pos{0, -1}},
		{ID: "c", Pos: &Pos{1, -1}},
	}}

	warnings := ValidateNamedRooms(file)
	want := `room "a" has duplicate exit north (n, north)`
	if len(warnings) != 1 || warnings[0] != want {
		t.Errorf("ValidateNamedRooms() = %q, want [%q]", warnings, want)
	}
}

func TestValidateNamedRooms(t *testing.T) {
	file := NamedRoomsFile{
		Start: "lobby",
		Rooms: []NamedRoomDef{
			{ID: "a", Pos: &Pos{0, 0}, Exits: map[string]string{"east": "b"}},
			{ID: "b", Pos: &Pos{0, 0}},
			{ID: "c", Exits: map[string]string{"north": "ghost"}},
		},
	}

	warnings := ValidateNamedRooms(file)
	if len(warnings) != 4 {
		t.Fatalf("ValidateNamedRooms() = %v, want 4 warnings", warnings)
	}
	joined := strings.Join(warnings, "\n")
	for _, want := range []string{"share position", "missing pos", "undefined room \"ghost\"", "start room \"lobby\""} {
		if !strings.Contains(joined, want) {
			t.Errorf("warnings missing %q:\n%s", want, joined)
		}
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"#FF0000", true},
		{"FF0000", true},
		{"#4da3ff", true},
		{"#FFF", false},
		{"#GGGGGG", false},
		{"", false},
	}

	for _, tt := range tests {
		_, err := ParseHexColor(tt.input)
		if (err == nil) != tt.valid {
			t.Errorf("ParseHexColor(%q) error = %v, valid %v", tt.input, err, tt.valid)
		}
	}

	if got := ColorOr("bogus", tcell.ColorRed); got != tcell.ColorRed {
		t.Errorf("ColorOr(bogus) = %v, want ColorRed", got)
	}
	if got := mustParseHex(t, "#FF0000"); got != tcell.NewRGBColor(255, 0, 0) {
		t.Errorf("ParseHexColor(#FF0000) = %v, want red", got)
	}
}

func mustParseHex(t *testing.T, hex string) tcell.Color {
	t.Helper()
	c, err := ParseHexColor(hex)
	if err != nil {
		t.Fatalf("ParseHexColor(%q) error = %v", hex, err)
	}
	return c
}
