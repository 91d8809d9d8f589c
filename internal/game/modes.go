package game

// Mode is the top-level screen the player is on.
type Mode int

const (
	ModeMainMenu Mode = iota
	ModeNameInput
	ModePlaying
	ModePaused
	ModeGameOver
	ModeLeaderboard
	ModeHelp
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeMainMenu:
		return "MainMenu"
	case ModeNameInput:
		return "NameInput"
	case ModePlaying:
		return "Playing"
	case ModePaused:
		return "Paused"
	case ModeGameOver:
		return "GameOver"
	case ModeLeaderboard:
		return "Leaderboard"
	case ModeHelp:
		return "Help"
	default:
		return "Unknown"
	}
}

// fadeRate is how fast the transition overlay moves, alpha units per
// second. 510 means a full fade takes half a second.
const fadeRate = 510.0

// MaxFade is the fully opaque overlay value.
const MaxFade = 255.0

// Machine owns the current mode and the fade transition between modes.
// A transition fades out to full overlay, swaps the mode, then fades back
// in. The fade is a countdown value advanced by dt, so it freezes with
// the rest of the simulation when nobody ticks it.
type Machine struct {
	mode    Mode
	target  Mode
	fading  bool
	fadeIn  bool
	overlay float64 // 0 (clear) .. 255 (opaque)
}

// NewMachine starts on the main menu behind a fade-in from black.
func NewMachine() *Machine {
	return &Machine{
		mode:    ModeMainMenu,
		fading:  true,
		fadeIn:  true,
		overlay: MaxFade,
	}
}

// Mode returns the current mode.
func (m *Machine) Mode() Mode {
	return m.mode
}

// Fade returns the current overlay opacity in [0, 255].
func (m *Machine) Fade() float64 {
	return m.overlay
}

// Target returns the pending mode while a fade-out is in flight, or the
// current mode otherwise.
func (m *Machine) Target() Mode {
	if m.fading && !m.fadeIn {
		return m.target
	}
	return m.mode
}

// Transitioning reports whether a fade is in progress.
func (m *Machine) Transitioning() bool {
	return m.fading
}

// GoTo starts a faded transition to the target mode. Calling it again
// mid-fade redirects the transition.
func (m *Machine) GoTo(target Mode) {
	m.target = target
	m.fading = true
	m.fadeIn = false
}

// Set switches modes immediately without a fade. Used for pause toggling
// and the playing -> game-over edge, which cut instantly.
func (m *Machine) Set(mode Mode) {
	m.mode = mode
	m.fading = false
	m.overlay = 0
}

// Update advances the fade by dt seconds.
func (m *Machine) Update(dt float64) {
	if !m.fading {
		return
	}

	if m.fadeIn {
		m.overlay -= fadeRate * dt
		if m.overlay <= 0 {
			m.overlay = 0
			m.fading = false
		}
		return
	}

	m.overlay += fadeRate * dt
	if m.overlay >= MaxFade {
		// Fully dark: swap modes and fade back in
		m.overlay = MaxFade
		m.mode = m.target
		m.fadeIn = true
	}
}
