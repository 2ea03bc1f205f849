package entity

import "testing"

func TestNewPlayer(t *testing.T) {
	p := NewPlayer()

	want := []StatLine{{"HP", 12}, {"STR", 3}, {"DEX", 2}, {"INT", 4}, {"CHA", 3}}
	got := p.StatLines()
	if len(got) != len(want) {
		t.Fatalf("len(StatLines()) = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("StatLines()[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
	if len(p.Inventory) != 0 {
		t.Errorf("Inventory = %v, want empty", p.Inventory)
	}
	if p.Symbol != '@' {
		t.Errorf("Symbol = %q, want '@'", p.Symbol)
	}
}
