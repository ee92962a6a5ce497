package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

const sampleRate = beep.SampleRate(44100)

type wave uint8

const (
	waveSine wave = iota
	waveSquare
	waveNoise
)

// tone is a fixed-length oscillator with a linear release so notes do not
// click when they stop.
type tone struct {
	freq    float64
	phase   float64
	wave    wave
	pos     int
	total   int
	release int
	noise   uint32
}

func newTone(freq float64, d time.Duration, w wave) *tone {
	total := sampleRate.N(d)
	return &tone{freq: freq, wave: w, total: total, release: total / 4, noise: 2463534242}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.pos >= t.total {
			return i, i > 0
		}
		var v float64
		switch t.wave {
		case waveSine:
			v = math.Sin(2 * math.Pi * t.phase)
		case waveSquare:
			v = 1
			if t.phase >= 0.5 {
				v = -1
			}
		case waveNoise:
			// xorshift keeps the output reproducible.
			t.noise ^= t.noise << 13
			t.noise ^= t.noise >> 17
			t.noise ^= t.noise << 5
			v = float64(t.noise)/math.MaxUint32*2 - 1
		}
		if left := t.total - t.pos; left < t.release {
			v *= float64(left) / float64(t.release)
		}
		samples[i][0], samples[i][1] = v, v
		t.phase += t.freq / float64(sampleRate)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

type note struct {
	freq float64
	ms   int
	wave wave
}

var cueNotes = map[Cue][]note{
	CueHop:       {{660, 40, waveSquare}},
	CueSplat:     {{0, 180, waveNoise}, {110, 120, waveSquare}},
	CueGoal:      {{523, 90, waveSine}, {659, 90, waveSine}, {784, 160, waveSine}},
	CueExtraLife: {{880, 70, waveSine}, {1175, 70, waveSine}, {1760, 120, waveSine}},
	CueLevelUp:   {{392, 120, waveSquare}, {523, 120, waveSquare}, {659, 120, waveSquare}, {784, 240, waveSquare}},
	CueGameOver:  {{392, 200, waveSine}, {330, 200, waveSine}, {262, 400, waveSine}},
}

// Streamer builds the sound for c at a quiet volume. Unknown cues produce
// an empty stream.
func Streamer(c Cue) beep.Streamer {
	notes := cueNotes[c]
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		parts = append(parts, newTone(n.freq, time.Duration(n.ms)*time.Millisecond, n.wave))
	}
	return &effects.Volume{Streamer: beep.Seq(parts...), Base: 2, Volume: -2}
}

// Length returns the duration of cue c in samples.
func Length(c Cue) int {
	n := 0
	for _, note := range cueNotes[c] {
		n += sampleRate.N(time.Duration(note.ms) * time.Millisecond)
	}
	return n
}
