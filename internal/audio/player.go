package audio

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Player mixes cues onto the system speaker.
type Player struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	logger *slog.Logger
	closed bool
}

// NewPlayer opens the speaker. Callers that cannot get an audio device
// should fall back to Nop.
func NewPlayer(logger *slog.Logger) (*Player, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	p := &Player{mixer: &beep.Mixer{}, logger: logger}
	speaker.Play(p.mixer)
	return p, nil
}

// Play queues cue c. It never blocks on audio output.
func (p *Player) Play(c Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	speaker.Lock()
	p.mixer.Add(Streamer(c))
	speaker.Unlock()
	p.logger.Debug("cue", "cue", c)
}

// Close silences the mixer and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
}
