package game

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"shadow-leap/assets"
	"shadow-leap/internal/audio"
	"shadow-leap/internal/config"
	"shadow-leap/internal/geom"
	"shadow-leap/internal/level"
	"shadow-leap/internal/render"

	"github.com/gdamore/tcell/v2"
)

// GameState tracks the host state machine.
type GameState uint8

const (
	StatePlaying GameState = iota
	StatePaused
	StateWon
	StateLost
)

func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateWon:
		return "won"
	case StateLost:
		return "game over"
	}
	return "unknown"
}

// Game is the host context: it owns the current level, feeds it ticks and
// input, advances levels and presents the result.
type Game struct {
	screen   tcell.Screen
	renderer *render.Renderer
	cfg      config.Config
	cuer     audio.Cuer
	logger   *slog.Logger
	rng      *rand.Rand

	level    *level.Level
	levels   int
	state    GameState
	messages []string
}

// New creates a Game on an initialized screen and loads the first level.
func New(screen tcell.Screen, cfg config.Config, cuer audio.Cuer, logger *slog.Logger) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cuer == nil {
		cuer = audio.Nop{}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g := &Game{
		screen: screen,
		cfg:    cfg,
		cuer:   cuer,
		logger: logger,
		rng:    rand.New(rand.NewSource(seed)),
		levels: min(cfg.Levels, assets.LevelCount),
	}
	if err := g.loadLevel(0, cfg.Lives); err != nil {
		return nil, err
	}
	g.addMessage("Arrow keys or WASD to hop. Fill every hole on the far bank.")
	return g, nil
}

// Options builds the level options for level n from the host config.
func (g *Game) Options(n, lives int) level.Options {
	opts := level.DefaultOptions()
	opts.Number = n
	opts.Width, opts.Height, opts.Tile = g.cfg.Width, g.cfg.Height, g.cfg.Tile
	opts.Spawn = geom.Pos(g.cfg.Width/2, g.cfg.Height-g.cfg.Tile)
	opts.WinningY = g.cfg.Tile
	opts.Holes = level.HolesAlong(g.cfg.Width, g.cfg.Tile)
	opts.Lives = lives
	return opts
}

func (g *Game) loadLevel(n, lives int) error {
	l, err := level.Load(g.Options(n, lives), g.rng, g.logger)
	if err != nil {
		return fmt.Errorf("load level %d: %w", n, err)
	}
	g.setLevel(l)
	return nil
}

func (g *Game) setLevel(l *level.Level) {
	g.level = l
	g.renderer = render.NewRenderer(g.screen, l.Field())
	g.renderer.SetLevel(l.Number())
}

func (g *Game) State() GameState { return g.state }
func (g *Game) Lives() int { return g.level.Lives() }
func (g *Game) LevelNumber() int { return g.level.Number() }
func (g *Game) Level() *level.Level { return g.level }

// Step advances the current level by dt and reacts to what happened.
func (g *Game) Step(dt time.Duration) {
	if g.state != StatePlaying {
		return
	}
	g.level.Tick(dt)
	g.drainEvents()

	switch g.level.State() {
	case level.GameOver:
		g.state = StateLost
		g.addMessage("Game over. Press r to try again or q to quit.")
		g.logger.Info("game over", "level", g.level.Number())
	case level.Finished:
		g.advance()
	}
}

// advance moves to the next level, carrying lives over, or ends the run.
func (g *Game) advance() {
	next := g.level.Number() + 1
	if next >= g.levels {
		g.state = StateWon
		g.cuer.Play(audio.CueLevelUp)
		g.addMessage("Every bank is home. You win! Press r to play again or q to quit.")
		g.logger.Info("run won", "lives", g.Lives())
		return
	}
	if err := g.loadLevel(next, g.Lives()); err != nil {
		g.logger.Error("advance level", "err", err)
		g.state = StateWon
		return
	}
	g.cuer.Play(audio.CueLevelUp)
	g.addMessage(fmt.Sprintf("Level %d: %s", next+1, render.ThemeFor(next).Name))
}

func (g *Game) drainEvents() {
	for _, ev := range g.level.DrainEvents() {
		switch ev.Kind {
		case level.EventHop:
			g.cuer.Play(audio.CueHop)
		case level.EventDeath:
			g.cuer.Play(audio.CueSplat)
			g.addMessage(fmt.Sprintf("Splat! %d lives left.", g.level.Lives()))
		case level.EventHoleFilled:
			g.cuer.Play(audio.CueGoal)
			filled := len(g.level.Holes()) - len(g.level.UnfilledHoles())
			g.addMessage(fmt.Sprintf("Home! %d/%d holes filled.", filled, len(g.level.Holes())))
		case level.EventExtraLife:
			g.cuer.Play(audio.CueExtraLife)
			g.addMessage("Extra life!")
		case level.EventPowerUpSpawned:
			g.addMessage(fmt.Sprintf("A beetle lands on a %s.", ev.Detail))
		case level.EventGameOver:
			g.cuer.Play(audio.CueGameOver)
		}
	}
}

// HandleAction applies one action. It returns false when the player quits.
func (g *Game) HandleAction(a Action) bool {
	switch a {
	case ActionQuit:
		return false
	case ActionRestart:
		if g.state == StateWon || g.state == StateLost {
			g.restart()
		}
	case ActionPause:
		switch g.state {
		case StatePlaying:
			g.state = StatePaused
		case StatePaused:
			g.state = StatePlaying
		}
	default:
		if d, ok := actionToDirection(a); ok && g.state == StatePlaying {
			g.level.OnDirectionalInput(d)
			g.drainEvents()
		}
	}
	return true
}

func (g *Game) restart() {
	if err := g.loadLevel(0, g.cfg.Lives); err != nil {
		g.logger.Error("restart", "err", err)
		return
	}
	g.state = StatePlaying
	g.messages = nil
	g.addMessage("Back to the start. Good luck!")
}

// Run drives the game until the player quits or ctx is done. The screen is
// finalized before Run returns.
func (g *Game) Run(ctx context.Context) {
	defer g.screen.Fini()

	events := make(chan tcell.Event, 32)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(g.cfg.TickInterval)
	defer ticker.Stop()
	g.draw()
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				g.screen.Sync()
				g.renderer.Resize()
			case *tcell.EventKey:
				if !g.HandleAction(keyToAction(ev)) {
					return
				}
			}
			g.draw()
		case <-ticker.C:
			g.Step(g.cfg.TickInterval)
			g.draw()
		}
	}
}

func (g *Game) draw() {
	g.renderer.DrawFrame(g.level.Snapshot())
	g.renderer.DrawHUD(render.Status{
		Lives:    g.Lives(),
		Level:    g.LevelNumber(),
		Levels:   g.levels,
		State:    g.state.String(),
		Messages: g.messages,
	})
	switch g.state {
	case StatePaused:
		g.renderer.DrawBanner(" PAUSED ")
	case StateWon:
		g.renderer.DrawBanner(" YOU WIN ")
	case StateLost:
		g.renderer.DrawBanner(" GAME OVER ")
	}
	g.renderer.Show()
}

// addMessage appends a message to the log (capped at 50).
func (g *Game) addMessage(msg string) {
	g.messages = append(g.messages, msg)
	if len(g.messages) > 50 {
		g.messages = g.messages[len(g.messages)-50:]
	}
}
