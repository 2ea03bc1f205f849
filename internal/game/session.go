package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/samdwyer/officecrawl/internal/command"
	"github.com/samdwyer/officecrawl/internal/config"
	"github.com/samdwyer/officecrawl/internal/entity"
	"github.com/samdwyer/officecrawl/internal/gamedata"
	"github.com/samdwyer/officecrawl/internal/logger"
	"github.com/samdwyer/officecrawl/internal/navigation"
	"github.com/samdwyer/officecrawl/internal/telemetry"
	"github.com/samdwyer/officecrawl/internal/ui"
	"github.com/samdwyer/officecrawl/internal/world"
)

// Session holds the state of one play-through: the map, the player's position
// and history. Nothing is shared between sessions.
type Session struct {
	ID     string
	Mode   config.Mode
	Player *entity.Player
	Log    *EventLog

	explorer explorer
	state    State
	log      *slog.Logger
}

// NewSession loads the map for cfg.Mode and places the player at the start.
func NewSession(ctx context.Context, cfg *config.Config) (*Session, error) {
	ctx, span := telemetry.Tracer("game").Start(ctx, "session.init")
	defer span.End()

	id := uuid.NewString()
	log := logger.With("session", id, "mode", string(cfg.Mode))

	var (
		exp explorer
		err error
	)
	switch cfg.Mode {
	case config.ModeRooms:
		exp, err = loadRooms(log, cfg)
	default:
		exp, err = loadGrid(log, cfg)
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("failed to start session: %w", err)
	}

	span.SetAttributes(
		attribute.String("session.id", id),
		attribute.String("session.mode", string(cfg.Mode)),
		attribute.Int("map.rooms", exp.RoomCount()),
	)
	log.InfoContext(ctx, "session started", "rooms", exp.RoomCount(), "start", exp.Here().Name)

	s := &Session{
		ID:       id,
		Mode:     cfg.Mode,
		Player:   entity.NewPlayer(),
		Log:      NewEventLog(DefaultLogLimit),
		explorer: exp,
		state:    StateExplore,
		log:      log,
	}
	s.Log.Add(fmt.Sprintf("You arrive in the %s. Type \"help\" for commands.", exp.Here().Name))
	return s, nil
}

func loadGrid(log *slog.Logger, cfg *config.Config) (explorer, error) {
	var (
		file gamedata.MapFile
		err  error
	)
	if cfg.MapFile != "" {
		file, err = gamedata.LoadMapFile(cfg.MapFile)
	} else {
		file, err = gamedata.LoadMap()
	}
	if err != nil {
		return nil, err
	}

	layout, err := world.BuildRegions(file.ToGrid())
	if err != nil {
		return nil, fmt.Errorf("map %q: %w", file.Name, err)
	}
	log.Info("layout built", "map", file.Name, "width", layout.Width, "height", layout.Height, "regions", len(layout.Regions))

	catalog, err := gamedata.LoadRoomCatalog()
	if err != nil {
		return nil, err
	}
	for _, r := range layout.Regions {
		if !catalog.Known(r.Code) {
			log.Warn("unknown terrain code", "code", string(r.Code), "region", int(r.ID))
		}
	}
	return newGridExplorer(layout, catalog, cfg.Start)
}

func loadRooms(log *slog.Logger, cfg *config.Config) (explorer, error) {
	file, err := gamedata.LoadNamedRooms()
	if err != nil {
		return nil, err
	}
	for _, w := range gamedata.ValidateNamedRooms(file) {
		log.Warn("map validation", "warning", w)
	}
	return newRoomsExplorer(file, cfg.Start)
}

// Running returns false once the player has quit.
func (s *Session) Running() bool {
	return s.state != StateQuit
}

// State returns the current session state.
func (s *Session) State() State {
	return s.state
}

// Here returns the occupied room.
func (s *Session) Here() Place {
	return s.explorer.Here()
}

// Exits lists the moves available from the occupied room.
func (s *Session) Exits() []string {
	return s.explorer.Exits()
}

// Look returns the summary line for the occupied room.
func (s *Session) Look() string {
	return summary(s.explorer.Here(), s.explorer.Exits())
}

// Execute runs one line of player input. Results are written to the event log.
func (s *Session) Execute(ctx context.Context, line string) {
	cmd := command.Parse(line)
	if cmd.Verb == command.VerbNone {
		return
	}
	s.Log.Add("> " + cmd.Raw)

	switch cmd.Verb {
	case command.VerbHelp:
		s.Log.Add(command.Help)
	case command.VerbLook:
		s.Log.Add(s.Look())
	case command.VerbGo:
		if cmd.Target() == "" {
			s.Log.Add("Go where?")
			return
		}
		s.Move(ctx, cmd.Target())
	case command.VerbMap:
		visited := s.explorer.Discovered()
		s.Log.Add(fmt.Sprintf("Discovered %d of %d rooms: %s.",
			len(visited), s.explorer.RoomCount(), strings.Join(visited, ", ")))
	case command.VerbQuit:
		s.state = StateQuit
		s.Log.Add("You clock out for the day.")
	default:
		s.Log.Add(`Unknown command. Type "help".`)
	}
}

// Move requests a move toward target: a direction, a room name, or in grid
// mode a region number. It reports whether the player moved.
func (s *Session) Move(ctx context.Context, target string) bool {
	_, span := telemetry.Tracer("game").Start(ctx, "session.move")
	defer span.End()

	move, err := s.explorer.Go(target)
	outcome := moveOutcome(err)
	span.SetAttributes(
		attribute.String("move.target", target),
		attribute.String("move.from", move.From),
		attribute.String("move.to", move.To),
		attribute.String("move.outcome", outcome),
	)
	s.log.Info("move", "target", target, "from", move.From, "to", move.To, "outcome", outcome)

	if err != nil {
		s.Log.Add(moveMessage(err, move))
		return false
	}
	if move.Direction != "" {
		s.Log.Add(fmt.Sprintf("You go %s to %s.", move.Direction, move.To))
	} else {
		s.Log.Add(fmt.Sprintf("You enter %s.", move.To))
	}
	return true
}

func moveOutcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, navigation.ErrAlreadyThere):
		return "already_there"
	case errors.Is(err, navigation.ErrNotAdjacent):
		return "not_adjacent"
	case errors.Is(err, navigation.ErrInvalidDirection):
		return "invalid_direction"
	case errors.Is(err, navigation.ErrUnknownRegion):
		return "unknown_region"
	default:
		return "error"
	}
}

func moveMessage(err error, move Move) string {
	if errors.Is(err, navigation.ErrAlreadyThere) {
		return fmt.Sprintf("You are already in %s.", move.To)
	}
	return "You can't go that way."
}

// Frame builds the view model for one render.
func (s *Session) Frame(input string) ui.Frame {
	here := s.explorer.Here()
	return ui.Frame{
		Title: fmt.Sprintf("Office Crawl [%s]", s.Mode),
		Map:   s.explorer.MapCells(),
		Room: ui.RoomPanel{
			Name:        here.Name,
			Description: here.Description,
			Objects:     here.Objects,
			NPCs:        here.NPCs,
			Exits:       s.explorer.Exits(),
		},
		Stats:     s.Player.StatLines(),
		Inventory: s.Player.Inventory,
		Log:       s.Log.Entries(),
		Input:     input,
		Symbol:    s.Player.Symbol,
	}
}
