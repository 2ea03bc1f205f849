package navigation

import (
	"fmt"
	"strings"
)

// Direction is one of the four cardinal directions.
type Direction string

// Cardinal directions.
const (
	North Direction = "north"
	East  Direction = "east"
	South Direction = "south"
	West  Direction = "west"
)

// Directions lists the cardinal directions in display order.
var Directions = []Direction{North, East, South, West}

var directionAliases = map[string]Direction{
	"n": North,
	"e": East,
	"s": South,
	"w": West,
}

// ParseDirection normalizes a direction token. Full names and single-letter
// aliases are accepted, case-insensitive and whitespace-trimmed.
func ParseDirection(token string) (Direction, error) {
	normalized := strings.ToLower(strings.TrimSpace(token))
	if d, ok := directionAliases[normalized]; ok {
		return d, nil
	}
	for _, d := range Directions {
		if string(d) == normalized {
			return d, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidDirection, token)
}

// Delta returns the unit step of the direction on a grid where Y grows southward.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	case West:
		return -1, 0
	default:
		return 0, 0
	}
}

// String returns the direction name.
func (d Direction) String() string {
	return string(d)
}
