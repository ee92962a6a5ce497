// Package level runs one level of the simulation: it owns the entity world,
// advances it tick by tick and tracks win-holes, lives and level state.
package level

import (
	"errors"
	"log/slog"
	"math/rand"
	"time"

	"shadow-leap/assets"
	"shadow-leap/internal/ecs"
	"shadow-leap/internal/factory"
	"shadow-leap/internal/gamemap"
	"shadow-leap/internal/geom"
	"shadow-leap/internal/system"
)

// State is the level state machine.
type State uint8

const (
	Active State = iota
	PartlyFinished
	PlayerDeath
	Finished
	GameOver
)

func (s State) String() string {
	switch s {
	case Active:
		return "active"
	case PartlyFinished:
		return "partly-finished"
	case PlayerDeath:
		return "player-death"
	case Finished:
		return "finished"
	case GameOver:
		return "game-over"
	}
	return "unknown"
}

// Direction and MoveResult are the input vocabulary of OnDirectionalInput.
type (
	Direction  = system.Direction
	MoveResult = system.MoveResult
)

const (
	Up    = system.Up
	Down  = system.Down
	Left  = system.Left
	Right = system.Right
)

// Options configures a level. Zero fields are not defaulted; start from
// DefaultOptions.
type Options struct {
	Number   int
	Width    float64
	Height   float64
	Tile     float64
	Spawn    geom.Position
	WinningY float64
	Holes    []geom.Position
	Lives    int

	// Extra-life spawn window in ms and the substring naming eligible
	// carriers.
	PowerUpMinMs   float64
	PowerUpMaxMs   float64
	PowerUpCarrier string
}

// DefaultOptions returns the standard 1024x768 board with five win-holes.
func DefaultOptions() Options {
	return Options{
		Width:          assets.BoardWidth,
		Height:         assets.BoardHeight,
		Tile:           assets.Tile,
		Spawn:          geom.Pos(assets.BoardWidth/2, assets.BoardHeight-assets.Tile),
		WinningY:       assets.Tile,
		Holes:          HolesAlong(assets.BoardWidth, assets.Tile),
		Lives:          3,
		PowerUpMinMs:   25000,
		PowerUpMaxMs:   35000,
		PowerUpCarrier: "log",
	}
}

// HolesAlong lays win-holes every four tiles from x=120 across a row.
func HolesAlong(width, y float64) []geom.Position {
	var holes []geom.Position
	for x := 120.0; x < width; x += 192 {
		holes = append(holes, geom.Pos(x, y))
	}
	return holes
}

// Level is the simulation state of one level. It is not safe for
// concurrent use; the host drives it from a single goroutine.
type Level struct {
	opts   Options
	space  *system.Space
	player ecs.EntityID
	rng    *rand.Rand
	logger *slog.Logger

	state State
	died  bool

	spawnElapsed float64
	spawnAt      float64

	events []Event
}

// New builds a level from spawn records. Rows naming unknown kinds are
// logged and skipped. The player is created last so it is updated after
// everything it can collide with.
func New(opts Options, records []assets.Record, rng *rand.Rand, logger *slog.Logger) *Level {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	logger = logger.With("level", opts.Number)
	l := &Level{
		opts:   opts,
		rng:    rng,
		logger: logger,
	}
	w := ecs.NewWorld()
	l.space = system.NewSpace(w, gamemap.New(opts.Width, opts.Height, opts.Tile), l, logger)

	skipped := 0
	for _, r := range records {
		if _, err := factory.FromRecord(w, r); err != nil {
			logger.Warn("skipping level row", "err", err)
			skipped++
		}
	}
	l.player = factory.NewPlayer(w, opts.Spawn, opts.Lives)
	l.rollSpawn()

	logger.Info("level loaded", "entities", w.Len(), "skipped", skipped, "holes", len(opts.Holes))
	return l
}

// Load builds embedded level opts.Number. Row errors are logged, never fatal.
func Load(opts Options, rng *rand.Rand, logger *slog.Logger) (*Level, error) {
	records, rowErrs, err := assets.LoadLevel(opts.Number)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	for _, e := range rowErrs {
		logger.Warn("skipping level row", "level", opts.Number, "err", e)
	}
	return New(opts, records, rng, logger), nil
}

func (l *Level) State() State { return l.state }
func (l *Level) Number() int { return l.opts.Number }
func (l *Level) Lives() int { return system.LivesOf(l.space.World, l.player) }
func (l *Level) Player() ecs.EntityID { return l.player }
func (l *Level) World() *ecs.World { return l.space.World }
func (l *Level) Field() gamemap.Field { return l.space.Field }
func (l *Level) Holes() []geom.Position { return append([]geom.Position(nil), l.opts.Holes...) }
func (l *Level) PlayerPosition() geom.Position {
	p, _ := system.PositionOf(l.space.World, l.player)
	return p
}

// Over reports whether the level accepts no more ticks.
func (l *Level) Over() bool { return l.state == Finished || l.state == GameOver }

// Check verifies the world's structural invariants.
func (l *Level) Check() error {
	var errs []error
	if !l.space.World.Alive(l.player) {
		errs = append(errs, errors.New("player entity is gone"))
	}
	errs = append(errs, system.CheckAttachments(l.space.World))
	return errors.Join(errs...)
}

// OnDirectionalInput steps the player one tile. Input is ignored once the
// level is over.
func (l *Level) OnDirectionalInput(d Direction) MoveResult {
	if l.Over() {
		return system.MoveIgnored
	}
	res := system.TryStep(l.space, l.player, d)
	if res == system.MoveOK {
		l.emit(EventHop, l.player, d.String())
	}
	return res
}
