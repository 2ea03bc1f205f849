package game

import (
	"context"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/officecrawl/internal/ui"
)

// Game drives a session from terminal input.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	session  *Session
	input    []rune
	buttons  tcell.ButtonMask
}

// New opens the terminal for the given session.
func New(session *Session) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	return &Game{
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		session:  session,
	}, nil
}

// Run executes the main game loop until the player quits.
func (g *Game) Run(ctx context.Context) error {
	for g.session.Running() {
		// Render current state
		g.renderer.Render(g.session.Frame(string(g.input)))

		// Handle input (blocking)
		g.handleInput(ctx)
	}

	g.screen.Close()
	return nil
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev)
	case *tcell.EventMouse:
		g.handleMouseEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// handleKeyEvent edits the command line, or moves on arrow keys.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.session.Execute(ctx, "quit")

	case tcell.KeyEnter:
		line := string(g.input)
		g.input = g.input[:0]
		g.session.Execute(ctx, line)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(g.input) > 0 {
			g.input = g.input[:len(g.input)-1]
		}

	case tcell.KeyUp:
		g.session.Move(ctx, "north")
	case tcell.KeyDown:
		g.session.Move(ctx, "south")
	case tcell.KeyLeft:
		g.session.Move(ctx, "west")
	case tcell.KeyRight:
		g.session.Move(ctx, "east")

	case tcell.KeyRune:
		g.input = append(g.input, ev.Rune())
	}
}

// handleMouseEvent moves toward a clicked map cell. Only the press is acted on.
func (g *Game) handleMouseEvent(ctx context.Context, ev *tcell.EventMouse) {
	pressed := ev.Buttons()&tcell.Button1 != 0 && g.buttons&tcell.Button1 == 0
	g.buttons = ev.Buttons()
	if !pressed {
		return
	}
	x, y := ev.Position()
	if target, ok := g.renderer.TargetAt(x, y); ok {
		g.session.Move(ctx, target)
	}
}
