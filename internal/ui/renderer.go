package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

const (
	cellWidth  = 3  // Screen columns per map cell
	panelWidth = 44 // Width of the right-hand room panel
	mapLeft    = 1
	mapTop     = 2
)

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen  *Screen
	targets map[[2]int]string // Screen position -> move target
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen, targets: make(map[[2]int]string)}
}

// Render draws a full frame.
func (r *Renderer) Render(f Frame) {
	r.screen.Clear()
	clear(r.targets)

	width, height := r.screen.Size()
	title := tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	r.screen.DrawText(mapLeft, 0, width-mapLeft, f.Title, title)

	mapRight := r.renderMap(f)

	panelX := max(mapRight+3, width-panelWidth)
	y := r.renderRoom(panelX, mapTop, width-panelX, f.Room)
	y = r.renderStats(panelX, y+1, width-panelX, f)

	logTop := max(y, mapTop+r.mapRows(f)+1)
	r.renderLog(mapLeft, logTop, width-mapLeft-1, height-logTop-2, f.Log)

	prompt := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	r.screen.DrawText(0, height-1, width, "> "+f.Input+"_", prompt)

	r.screen.Show()
}

// TargetAt returns the move target drawn at a screen position, if any.
func (r *Renderer) TargetAt(x, y int) (string, bool) {
	target, ok := r.targets[[2]int{x, y}]
	return target, ok
}

func (r *Renderer) mapRows(f Frame) int {
	if len(f.Map) == 0 {
		return 0
	}
	minY, maxY := f.Map[0].Y, f.Map[0].Y
	for _, c := range f.Map {
		minY = min(minY, c.Y)
		maxY = max(maxY, c.Y)
	}
	return maxY - minY + 1
}

// renderMap draws the map cells and returns the rightmost column used.
func (r *Renderer) renderMap(f Frame) int {
	if len(f.Map) == 0 {
		return mapLeft
	}
	minX, minY := f.Map[0].X, f.Map[0].Y
	for _, c := range f.Map {
		minX = min(minX, c.X)
		minY = min(minY, c.Y)
	}

	right := mapLeft
	for _, c := range f.Map {
		sx := mapLeft + (c.X-minX)*cellWidth
		sy := mapTop + c.Y - minY

		label := c.Label
		if c.Marker {
			label = " " + string(f.Symbol)
		}
		label = fmt.Sprintf("%-*s", cellWidth, label)

		style := cellStyle(c)
		for i, ch := range []rune(label)[:cellWidth] {
			r.screen.SetContent(sx+i, sy, ch, style)
			if c.Target != "" {
				r.targets[[2]int{sx + i, sy}] = c.Target
			}
		}
		right = max(right, sx+cellWidth)
	}
	return right
}

func cellStyle(c MapCell) tcell.Style {
	base := tcell.StyleDefault
	switch c.State {
	case CellCurrent:
		return base.Background(c.Color).Foreground(tcell.ColorBlack).Bold(true)
	case CellKnown:
		return base.Foreground(c.Color)
	case CellAdjacent:
		return base.Foreground(tcell.ColorDarkGray).Underline(true)
	case CellWall:
		return base.Foreground(tcell.ColorDarkGray)
	default:
		return base.Foreground(tcell.ColorBlack)
	}
}

// renderRoom draws the room panel and returns the next free row.
func (r *Renderer) renderRoom(x, y, width int, room RoomPanel) int {
	heading := tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	text := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	label := tcell.StyleDefault.Foreground(tcell.ColorGray)

	r.screen.DrawText(x, y, width, room.Name, heading)
	y++
	for _, line := range wrap(room.Description, width) {
		r.screen.DrawText(x, y, width, line, text)
		y++
	}
	y++
	for _, section := range []struct {
		title string
		items []string
	}{
		{"Objects", room.Objects},
		{"NPCs", room.NPCs},
		{"Exits", room.Exits},
	} {
		r.screen.DrawText(x, y, width, section.title+": "+listOrNone(section.items), label)
		y++
	}
	return y
}

// renderStats draws stats and inventory and returns the next free row.
func (r *Renderer) renderStats(x, y, width int, f Frame) int {
	style := tcell.StyleDefault.Foreground(tcell.ColorGray)
	parts := make([]string, 0, len(f.Stats))
	for _, s := range f.Stats {
		parts = append(parts, fmt.Sprintf("%s %d", s.Label, s.Value))
	}
	r.screen.DrawText(x, y, width, strings.Join(parts, "  "), style)
	y++
	inventory := "(empty)"
	if len(f.Inventory) > 0 {
		inventory = strings.Join(f.Inventory, ", ")
	}
	r.screen.DrawText(x, y, width, "Inventory: "+inventory, style)
	return y + 2
}

func (r *Renderer) renderLog(x, y, width, rows int, entries []string) {
	style := tcell.StyleDefault.Foreground(tcell.ColorSilver)
	for i := 0; i < rows && i < len(entries); i++ {
		r.screen.DrawText(x, y+i, width, entries[i], style)
	}
}

func listOrNone(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	return strings.Join(items, ", ")
}

// wrap breaks text into lines no longer than width, on word boundaries.
func wrap(text string, width int) []string {
	if width <= 0 {
		return nil
	}
	var lines []string
	line := ""
	for _, word := range strings.Fields(text) {
		switch {
		case line == "":
			line = word
		case len(line)+1+len(word) <= width:
			line += " " + word
		default:
			lines = append(lines, line)
			line = word
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}
