// Package audio synthesizes the game's sound effects with beep. There are
// no sound assets; every cue is generated at play time.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

// Cue identifies one of the synthesized sound effects.
type Cue int

const (
	// CueCoin is a short bright chime on coin collection.
	CueCoin Cue = iota
	// CueLevelUp is an ascending two-note arpeggio on a difficulty advance.
	CueLevelUp
	// CueCollision is a noisy thud on a terminal collision.
	CueCollision
	// CueButton is a soft click for menu navigation.
	CueButton
)

// Player owns the speaker and a mixer that cues are dropped into.
// Initialization failure (no audio device, headless host) leaves the
// player disabled: Play becomes a no-op rather than an error source.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

// NewPlayer creates an uninitialized player. Call Init before playing.
func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Init opens the speaker with a small buffer for low-latency effects.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/20)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// SetMuted toggles all cues off without tearing the speaker down.
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = muted
}

// Play fires a cue and returns immediately. Disabled or muted players
// swallow the call.
func (p *Player) Play(cue Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.muted {
		return
	}

	var s beep.Streamer
	switch cue {
	case CueCoin:
		s = tone(988, 90*time.Millisecond, 0.25)
	case CueLevelUp:
		s = beep.Seq(
			tone(659, 110*time.Millisecond, 0.25),
			tone(988, 160*time.Millisecond, 0.25),
		)
	case CueCollision:
		s = thud(220 * time.Millisecond)
	case CueButton:
		s = tone(440, 40*time.Millisecond, 0.15)
	default:
		return
	}

	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Close silences the mixer. The speaker itself stays open; beep provides
// no per-player teardown.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// tone builds a sine burst at the given frequency with a quick fade-out
// so cues never click at the cut.
func tone(freq float64, d time.Duration, volume float64) beep.Streamer {
	total := sampleRate.N(d)
	pos := 0
	return beep.Take(total, beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			t := float64(pos) / float64(sampleRate)
			env := 1.0 - float64(pos)/float64(total)
			v := volume * env * math.Sin(2*math.Pi*freq*t)
			samples[i][0] = v
			samples[i][1] = v
			pos++
		}
		return len(samples), true
	}))
}

// thud builds a low rumble mixed with decaying noise for the crash.
func thud(d time.Duration) beep.Streamer {
	total := sampleRate.N(d)
	pos := 0
	seed := int64(0x5eed)
	return beep.Take(total, beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			t := float64(pos) / float64(sampleRate)
			env := math.Exp(-t * 14)

			seed = (seed*1103515245 + 12345) & 0x7fffffff
			noise := float64(seed)/float64(0x7fffffff)*2 - 1

			v := env * (0.2*noise + 0.35*math.Sin(2*math.Pi*70*t))
			samples[i][0] = v
			samples[i][1] = v
			pos++
		}
		return len(samples), true
	}))
}
