// Package mapgen generates office floor plans from layered simplex noise.
// One noise layer decides which cells are empty, a second picks the terrain
// code, so nearby cells tend to share a room.
package mapgen

import (
	"math/rand"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/samdwyer/officecrawl/internal/world"
)

// Config holds generation parameters.
type Config struct {
	Width       int
	Height      int
	Seed        int64        // Random seed (0 = random)
	Codes       []world.Code // Terrain codes, assigned to equal noise bands
	EmptyBelow  float64      // Cells whose gap noise falls below this are empty (0.0-1.0)
	Frequency   float64      // Base sampling frequency; lower means larger rooms
	Octaves     int
	Persistence float64
}

// DefaultConfig returns a small floor using the built-in office codes.
func DefaultConfig() Config {
	return Config{
		Width:       12,
		Height:      8,
		Codes:       []world.Code{"BR", "HW", "SF", "SC", "JR", "MO"},
		EmptyBelow:  0.2,
		Frequency:   0.18,
		Octaves:     3,
		Persistence: 0.5,
	}
}

// Generate builds a grid and returns it with the seed actually used.
// The same non-zero seed and config always produce the same grid.
func Generate(cfg Config) (world.Grid, int64) {
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Int63()
	}
	if len(cfg.Codes) == 0 {
		cfg.Codes = DefaultConfig().Codes
	}
	if cfg.Octaves <= 0 {
		cfg.Octaves = 1
	}

	roomNoise := opensimplex.NewNormalized(seed)
	gapNoise := opensimplex.NewNormalized(seed + 1)

	grid := make(world.Grid, cfg.Height)
	for y := range grid {
		grid[y] = make([]world.Code, cfg.Width)
		for x := range grid[y] {
			fx, fy := float64(x), float64(y)
			if octaveNoise(gapNoise, fx, fy, 1, cfg.Frequency*2, 1) < cfg.EmptyBelow {
				grid[y][x] = world.Empty
				continue
			}
			v := octaveNoise(roomNoise, fx, fy, cfg.Octaves, cfg.Frequency, cfg.Persistence)
			grid[y][x] = cfg.Codes[band(v, len(cfg.Codes))]
		}
	}
	return grid, seed
}

// Rows converts a grid to raw strings for a map file. Empty cells stay blank.
func Rows(g world.Grid) [][]string {
	rows := make([][]string, len(g))
	for y, row := range g {
		rows[y] = make([]string, len(row))
		for x, code := range row {
			rows[y][x] = string(code)
		}
	}
	return rows
}

// band quantizes v in [0,1] into one of n equal bands.
func band(v float64, n int) int {
	i := int(v * float64(n))
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// octaveNoise generates fractal noise by layering multiple frequencies.
func octaveNoise(noise opensimplex.Noise, x, y float64, octaves int, frequency, persistence float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxVal := 0.0

	for i := 0; i < octaves; i++ {
		total += noise.Eval2(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2
	}

	return total / maxVal
}
