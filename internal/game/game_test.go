package game

import (
	"context"
	"math/rand"
	"sync"
	"testing"
	"time"

	"shadow-leap/assets"
	"shadow-leap/internal/audio"
	"shadow-leap/internal/config"
	"shadow-leap/internal/level"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingCuer struct {
	mu   sync.Mutex
	cues []audio.Cue
}

func (r *recordingCuer) Play(c audio.Cue) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cues = append(r.cues, c)
}

func (r *recordingCuer) played(c audio.Cue) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, got := range r.cues {
		if got == c {
			return true
		}
	}
	return false
}

func newTestGame(t *testing.T, cfg config.Config) (*Game, tcell.SimulationScreen, *recordingCuer) {
	t.Helper()
	ss := tcell.NewSimulationScreen("UTF-8")
	if err := ss.Init(); err != nil {
		t.Fatalf("SimulationScreen.Init: %v", err)
	}
	ss.SetSize(80, 30)
	cfg.Seed = 42
	cuer := &recordingCuer{}
	g, err := New(ss, cfg, cuer, nil)
	require.NoError(t, err)
	return g, ss, cuer
}

// replaceLevel swaps in a hand-built level so tests control the board.
func (g *Game) replaceLevel(n, lives int, records ...assets.Record) {
	g.setLevel(level.New(g.Options(n, lives), records, rand.New(rand.NewSource(1)), nil))
}

func hopHome(g *Game) {
	for range 14 {
		g.HandleAction(ActionMoveUp)
	}
}

func TestKeyToAction(t *testing.T) {
	tests := []struct {
		ev   *tcell.EventKey
		want Action
	}{
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), ActionMoveUp},
		{tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), ActionMoveLeft},
		{tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModNone), ActionMoveDown},
		{tcell.NewEventKey(tcell.KeyRune, 'L', tcell.ModNone), ActionMoveRight},
		{tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), ActionPause},
		{tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone), ActionRestart},
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), ActionQuit},
		{tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), ActionNone},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, keyToAction(tt.ev), "key %v", tt.ev.Name())
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Lives = 0
	_, err := New(tcell.NewSimulationScreen("UTF-8"), cfg, nil, nil)
	assert.Error(t, err)
}

func TestDefaultOptionsMatchBoard(t *testing.T) {
	g, _, _ := newTestGame(t, config.Default())
	opts := g.Options(0, 3)
	def := level.DefaultOptions()
	assert.Equal(t, def.Spawn, opts.Spawn)
	assert.Equal(t, def.Holes, opts.Holes)
	assert.Equal(t, def.WinningY, opts.WinningY)
}

func TestHopPlaysCue(t *testing.T) {
	g, _, cuer := newTestGame(t, config.Default())
	require.True(t, g.HandleAction(ActionMoveLeft))
	assert.True(t, cuer.played(audio.CueHop))
	assert.False(t, g.HandleAction(ActionQuit))
}

func TestFinishingLevelAdvancesAndKeepsLives(t *testing.T) {
	g, _, cuer := newTestGame(t, config.Default())
	g.replaceLevel(0, 4)
	holes := g.level.Holes()
	for _, h := range holes[:len(holes)-1] {
		g.level.FillHole(h)
	}

	hopHome(g)
	g.Step(16 * time.Millisecond)

	assert.Equal(t, StatePlaying, g.State())
	assert.Equal(t, 1, g.LevelNumber())
	assert.Equal(t, 4, g.Lives())
	assert.True(t, cuer.played(audio.CueGoal))
	assert.True(t, cuer.played(audio.CueLevelUp))
}

func TestFinishingLastLevelWins(t *testing.T) {
	g, _, _ := newTestGame(t, config.Default())
	g.replaceLevel(1, 3)
	holes := g.level.Holes()
	for _, h := range holes[:len(holes)-1] {
		g.level.FillHole(h)
	}
	hopHome(g)
	g.Step(16 * time.Millisecond)
	assert.Equal(t, StateWon, g.State())

	// Further ticks and hops are ignored until restart.
	g.Step(time.Second)
	g.HandleAction(ActionMoveDown)
	assert.Equal(t, StateWon, g.State())

	g.HandleAction(ActionRestart)
	assert.Equal(t, StatePlaying, g.State())
	assert.Equal(t, 0, g.LevelNumber())
	assert.Equal(t, 3, g.Lives())
}

func TestRunningOutOfLivesLoses(t *testing.T) {
	g, _, cuer := newTestGame(t, config.Default())
	g.replaceLevel(0, 1, assets.Record{Kind: "bus", X: 512, Y: 672})

	g.HandleAction(ActionMoveUp)
	g.Step(16 * time.Millisecond)

	assert.Equal(t, StateLost, g.State())
	assert.True(t, cuer.played(audio.CueGameOver))
	assert.Contains(t, g.messages[len(g.messages)-1], "Game over")
}

func TestDeathReportsLivesLeft(t *testing.T) {
	g, _, cuer := newTestGame(t, config.Default())
	g.replaceLevel(0, 3, assets.Record{Kind: "bus", X: 512, Y: 672})

	g.HandleAction(ActionMoveUp)
	g.Step(16 * time.Millisecond)

	assert.Equal(t, StatePlaying, g.State())
	assert.Equal(t, 2, g.Lives())
	assert.True(t, cuer.played(audio.CueSplat))
	assert.Equal(t, "Splat! 2 lives left.", g.messages[len(g.messages)-1])
}

func TestPauseStopsTime(t *testing.T) {
	g, _, _ := newTestGame(t, config.Default())
	g.replaceLevel(0, 3, assets.Record{Kind: "bus", X: 512, Y: 672})
	g.HandleAction(ActionMoveUp)

	g.HandleAction(ActionPause)
	g.Step(16 * time.Millisecond)
	assert.Equal(t, 3, g.Lives())
	assert.Equal(t, StatePaused, g.State())

	g.HandleAction(ActionPause)
	g.Step(16 * time.Millisecond)
	assert.Equal(t, 2, g.Lives())
}

func TestRunQuitsOnKey(t *testing.T) {
	cfg := config.Default()
	cfg.TickInterval = time.Millisecond
	g, ss, _ := newTestGame(t, cfg)

	done := make(chan struct{})
	go func() {
		g.Run(context.Background())
		close(done)
	}()
	ss.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after q")
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	g, _, _ := newTestGame(t, config.Default())
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		g.Run(ctx)
		close(done)
	}()
	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
