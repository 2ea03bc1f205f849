// Package entity provides the player character.
package entity

// Stats are the player's ability scores. They are shown but not rolled against.
type Stats struct {
	HP  int
	Str int
	Dex int
	Int int
	Cha int
}

// StatLine is one labeled stat for display.
type StatLine struct {
	Label string
	Value int
}

// Player is the explorer walking the office.
type Player struct {
	Stats     Stats
	Inventory []string
	Symbol    rune // Map marker for the current room
}

// NewPlayer creates a player with starting stats and an empty inventory.
func NewPlayer() *Player {
	return &Player{
		Stats:     Stats{HP: 12, Str: 3, Dex: 2, Int: 4, Cha: 3},
		Inventory: make([]string, 0),
		Symbol:    '@',
	}
}

// StatLines returns the stats in display order.
func (p *Player) StatLines() []StatLine {
	return []StatLine{
		{"HP", p.Stats.HP},
		{"STR", p.Stats.Str},
		{"DEX", p.Stats.Dex},
		{"INT", p.Stats.Int},
		{"CHA", p.Stats.Cha},
	}
}
