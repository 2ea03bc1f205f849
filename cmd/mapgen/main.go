// Package main generates a random office floor plan as YAML.
//
// The output can be played by pointing map_file (or OFFICECRAWL_MAP) at it.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/samdwyer/officecrawl/internal/gamedata"
	"github.com/samdwyer/officecrawl/internal/mapgen"
	"github.com/samdwyer/officecrawl/internal/world"
)

func main() {
	cfg := mapgen.DefaultConfig()

	name := flag.String("name", "Generated Floor", "map name")
	out := flag.String("out", "", "output file (default stdout)")
	codes := flag.String("codes", "", "comma-separated terrain codes (default BR,HW,SF,SC,JR,MO)")
	flag.IntVar(&cfg.Width, "width", cfg.Width, "grid width")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "grid height")
	flag.Int64Var(&cfg.Seed, "seed", 0, "random seed (0 = random)")
	flag.Float64Var(&cfg.EmptyBelow, "empty", cfg.EmptyBelow, "empty-cell threshold (0-1)")
	flag.Float64Var(&cfg.Frequency, "frequency", cfg.Frequency, "noise frequency; lower means larger rooms")
	flag.Parse()

	if cfg.Width <= 0 || cfg.Height <= 0 {
		log.Fatalf("width and height must be positive, got %dx%d", cfg.Width, cfg.Height)
	}
	if *codes != "" {
		cfg.Codes = nil
		for _, c := range strings.Split(*codes, ",") {
			if c = strings.TrimSpace(c); c != "" {
				cfg.Codes = append(cfg.Codes, world.Code(c))
			}
		}
	}

	grid, seed := mapgen.Generate(cfg)
	layout, err := world.BuildRegions(grid)
	if err != nil {
		log.Fatalf("Generated map is invalid: %v", err)
	}

	data, err := yaml.Marshal(gamedata.MapFile{
		Name: *name,
		Seed: seed,
		Grid: mapgen.Rows(grid),
	})
	if err != nil {
		log.Fatalf("Failed to encode map: %v", err)
	}

	if *out == "" {
		os.Stdout.Write(data)
	} else if err := os.WriteFile(*out, data, 0o644); err != nil {
		log.Fatalf("Failed to write %s: %v", *out, err)
	}

	fmt.Fprintf(os.Stderr, "seed %d: %dx%d, %d regions\n", seed, cfg.Width, cfg.Height, len(layout.Regions))
}
