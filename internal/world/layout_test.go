package world

import (
	"errors"
	"reflect"
	"testing"
)

// officeGrid is the reference floor plan used throughout the tests.
func officeGrid() Grid {
	return ParseGrid([][]string{
		{"BR", "HW", "HW", "SC", "SC"},
		{"BR", "HW", "SF", "SF", "SC"},
		{"JR", "JR", "SF", "MO", "MO"},
		{"JR", "", "SF", "MO", "MO"},
		{"JR", "", "SF", "MO", "MO"},
	})
}

func TestBuildRegionsOffice(t *testing.T) {
	layout, err := BuildRegions(officeGrid())
	if err != nil {
		t.Fatalf("BuildRegions() error = %v", err)
	}

	tests := []struct {
		code   Code
		size   int
		bounds Bounds
		anchor Point
	}{
		{"BR", 2, Bounds{MinX: 0, MaxX: 0, MinY: 0, MaxY: 1}, Point{0, 0}},
		{"HW", 3, Bounds{MinX: 1, MaxX: 2, MinY: 0, MaxY: 1}, Point{1, 0}},
		{"SC", 3, Bounds{MinX: 3, MaxX: 4, MinY: 0, MaxY: 1}, Point{3, 0}},
		{"SF", 5, Bounds{MinX: 2, MaxX: 3, MinY: 1, MaxY: 4}, Point{2, 1}},
		{"JR", 4, Bounds{MinX: 0, MaxX: 1, MinY: 2, MaxY: 4}, Point{0, 2}},
		{"MO", 6, Bounds{MinX: 3, MaxX: 4, MinY: 2, MaxY: 4}, Point{3, 2}},
	}

	if len(layout.Regions) != len(tests) {
		t.Fatalf("len(Regions) = %d, want %d", len(layout.Regions), len(tests))
	}

	for i, tt := range tests {
		r := layout.Regions[i]
		if r.ID != RegionID(i) {
			t.Errorf("Regions[%d].ID = %d, want %d", i, r.ID, i)
		}
		if r.Code != tt.code {
			t.Errorf("Regions[%d].Code = %q, want %q", i, r.Code, tt.code)
		}
		if r.Size() != tt.size {
			t.Errorf("Regions[%d].Size() = %d, want %d", i, r.Size(), tt.size)
		}
		if r.Bounds != tt.bounds {
			t.Errorf("Regions[%d].Bounds = %+v, want %+v", i, r.Bounds, tt.bounds)
		}
		if r.Anchor != tt.anchor {
			t.Errorf("Regions[%d].Anchor = %+v, want %+v", i, r.Anchor, tt.anchor)
		}
	}
}

func TestBuildRegionsOfficeAdjacency(t *testing.T) {
	layout := MustBuildRegions(officeGrid())

	// BR=0 HW=1 SC=2 SF=3 JR=4 MO=5
	want := [][]RegionID{
		{1, 4},
		{0, 2, 3, 4},
		{1, 3, 5},
		{1, 2, 4, 5},
		{0, 1, 3},
		{2, 3},
	}

	for id, expected := range want {
		got := layout.Neighbors(RegionID(id))
		if !reflect.DeepEqual(got, expected) {
			t.Errorf("Neighbors(%d) = %v, want %v", id, got, expected)
		}
	}

	if layout.Graph.Adjacent(0, 5) {
		t.Error("Adjacent(BR, MO) = true, want false")
	}
	if !layout.Graph.Adjacent(0, 1) {
		t.Error("Adjacent(BR, HW) = false, want true")
	}
}

func TestEmptyCellsHaveNoRegion(t *testing.T) {
	layout := MustBuildRegions(officeGrid())

	for _, p := range []Point{{1, 3}, {1, 4}} {
		if id := layout.RegionAt(p.X, p.Y); id != NoRegion {
			t.Errorf("RegionAt(%d,%d) = %d, want NoRegion", p.X, p.Y, id)
		}
	}
	if id := layout.RegionAt(-1, 0); id != NoRegion {
		t.Errorf("RegionAt(-1,0) = %d, want NoRegion", id)
	}
	if id := layout.RegionAt(5, 0); id != NoRegion {
		t.Errorf("RegionAt(5,0) = %d, want NoRegion", id)
	}
}

func TestDisconnectedPocketsAreSeparateRegions(t *testing.T) {
	grid := ParseGrid([][]string{
		{"A", "B", "A"},
		{"A", "B", "A"},
	})
	layout := MustBuildRegions(grid)

	if len(layout.Regions) != 3 {
		t.Fatalf("len(Regions) = %d, want 3", len(layout.Regions))
	}
	if got := layout.RegionsByCode("A"); !reflect.DeepEqual(got, []RegionID{0, 2}) {
		t.Errorf("RegionsByCode(A) = %v, want [0 2]", got)
	}
	if layout.Graph.Adjacent(0, 2) {
		t.Error("separate A pockets should not be adjacent")
	}
}

func TestIsolatedRegionHasNoNeighbors(t *testing.T) {
	grid := ParseGrid([][]string{
		{"A", "", "B"},
	})
	layout := MustBuildRegions(grid)

	for _, r := range layout.Regions {
		if n := layout.Neighbors(r.ID); len(n) != 0 {
			t.Errorf("Neighbors(%d) = %v, want empty", r.ID, n)
		}
	}
}

func TestBuildRegionsRaggedGrid(t *testing.T) {
	grid := ParseGrid([][]string{
		{"A", "A"},
		{"A"},
	})
	_, err := BuildRegions(grid)
	if !errors.Is(err, ErrRaggedGrid) {
		t.Errorf("BuildRegions() error = %v, want ErrRaggedGrid", err)
	}
}

func TestBuildRegionsEmptyGrid(t *testing.T) {
	layout, err := BuildRegions(Grid{})
	if err != nil {
		t.Fatalf("BuildRegions(empty) error = %v", err)
	}
	if len(layout.Regions) != 0 {
		t.Errorf("len(Regions) = %d, want 0", len(layout.Regions))
	}
	if _, err := layout.StartRegion(); !errors.Is(err, ErrNoRegions) {
		t.Errorf("StartRegion() error = %v, want ErrNoRegions", err)
	}
}

func TestStartRegion(t *testing.T) {
	tests := []struct {
		name string
		rows [][]string
		want RegionID
	}{
		{"origin owned", [][]string{{"A", "B"}}, 0},
		{"origin empty", [][]string{{"", "B", "C"}}, 0},
		{"origin empty later rows", [][]string{{"", ""}, {"C", "D"}}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layout := MustBuildRegions(ParseGrid(tt.rows))
			got, err := layout.StartRegion()
			if err != nil {
				t.Fatalf("StartRegion() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("StartRegion() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestParseGridTrimsWhitespace(t *testing.T) {
	grid := ParseGrid([][]string{{" BR ", "  ", "HW"}})
	want := []Code{"BR", Empty, "HW"}
	if !reflect.DeepEqual(grid[0], want) {
		t.Errorf("ParseGrid() = %v, want %v", grid[0], want)
	}
}

func TestCodeLabel(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{"BR", "BR"},
		{Empty, "--"},
		{" ", "--"},
	}
	for _, tt := range tests {
		if got := tt.code.Label(); got != tt.want {
			t.Errorf("Code(%q).Label() = %q, want %q", tt.code, got, tt.want)
		}
	}
}
