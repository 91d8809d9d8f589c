package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/samharte/airrush/internal/audio"
	"github.com/samharte/airrush/internal/config"
	"github.com/samharte/airrush/internal/core"
	"github.com/samharte/airrush/internal/game"
	"github.com/samharte/airrush/internal/storage"
)

const maxNameLength = 12

// Model is the Bubble Tea model for the whole game: it owns the mode
// machine, the play session, and the screens around it.
type Model struct {
	machine *game.Machine
	session *game.Session
	screen  *core.Screen
	store   *storage.Store
	sound   *audio.Player
	config  core.RuntimeConfig

	keys      *KeyMapper
	input     core.InputFrame
	nameInput textinput.Model
	board     LeaderboardModel

	menuCursor int
	fixedSeed  bool
	lastTick   time.Time
	quitting   bool
}

// NewModel wires up a fresh game UI. store and sound may be nil; the game
// then runs without persistence or audio.
func NewModel(gameCfg config.GameConfig, store *storage.Store, sound *audio.Player, cfg core.RuntimeConfig, defaultName string) Model {
	fixedSeed := cfg.Seed != 0
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	var sink game.ScoreSink
	if store != nil {
		sink = store
	}

	ti := textinput.New()
	ti.CharLimit = maxNameLength
	ti.Placeholder = "PLAYER"
	ti.SetValue(defaultName)
	ti.Focus()

	return Model{
		machine:   game.NewMachine(),
		session:   game.NewSession(gameCfg, sink, cfg.Seed),
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		sound:     sound,
		config:    cfg,
		keys:      NewKeyMapper(),
		input:     core.NewInputFrame(),
		nameInput: ti,
		board:     NewLeaderboardModel(store, cfg.ScreenW, cfg.ScreenH),
		fixedSeed: fixedSeed,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case TickMsg:
		return m.handleTick(msg)
	}
	return m, nil
}

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.board.Resize(msg.Width, msg.Height)
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.machine.Mode() {
	case game.ModeMainMenu:
		return m.handleMenuKey(msg)
	case game.ModeNameInput:
		return m.handleNameKey(msg)
	case game.ModePlaying:
		return m.handlePlayingKey(msg)
	case game.ModePaused:
		return m.handlePausedKey(msg)
	case game.ModeGameOver:
		return m.handleGameOverKey(msg)
	case game.ModeLeaderboard:
		return m.handleLeaderboardKey(msg)
	case game.ModeHelp:
		return m.handleHelpKey(msg)
	}
	return m, nil
}

func (m Model) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		m.menuCursor--
		if m.menuCursor < 0 {
			m.menuCursor = len(menuItems) - 1
		}
		m.playCue(audio.CueButton)
	case MenuActionDown:
		m.menuCursor = (m.menuCursor + 1) % len(menuItems)
		m.playCue(audio.CueButton)
	case MenuActionSelect:
		m.playCue(audio.CueButton)
		switch menuItems[m.menuCursor] {
		case "Play":
			m.nameInput.Focus()
			m.machine.GoTo(game.ModeNameInput)
		case "Leaderboard":
			m.board.Reload()
			m.machine.GoTo(game.ModeLeaderboard)
		case "Help":
			m.machine.GoTo(game.ModeHelp)
		case "Quit":
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m Model) handleNameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "esc":
		m.machine.GoTo(game.ModeMainMenu)
		return m, nil
	case "enter":
		name := strings.TrimSpace(m.nameInput.Value())
		if name == "" {
			name = "PLAYER"
		}
		m.playCue(audio.CueButton)
		m.startRun(name)
		m.machine.GoTo(game.ModePlaying)
		return m, nil
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

// startRun reseeds (unless a fixed seed was requested) and starts a new
// run. Mode transition is the caller's choice: fade from the name screen,
// instant cut on retry.
func (m *Model) startRun(name string) {
	if !m.fixedSeed {
		m.session.Reseed(time.Now().UnixNano())
	}
	m.session.Start(name)
}

func (m Model) handlePlayingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionPause:
		m.session.Pause()
		m.machine.Set(game.ModePaused)
	case core.ActionJump:
		m.input.Set(core.ActionJump)
	}
	return m, nil
}

func (m Model) handlePausedKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionPause:
		m.session.Resume()
		m.machine.Set(game.ModePlaying)
	case core.ActionBack:
		// Abandon the run; an unfinished run is never recorded
		m.machine.GoTo(game.ModeMainMenu)
	}
	return m, nil
}

func (m Model) handleGameOverKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionRestart:
		m.playCue(audio.CueButton)
		m.startRun(m.session.Name())
		m.machine.Set(game.ModePlaying)
	case core.ActionConfirm, core.ActionBack, core.ActionPause:
		// esc maps to pause; from the game-over screen it means back
		m.machine.GoTo(game.ModeMainMenu)
	}
	return m, nil
}

func (m Model) handleLeaderboardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionBack:
		m.machine.GoTo(game.ModeMainMenu)
		return m, nil
	}

	var cmd tea.Cmd
	m.board, cmd = m.board.Update(msg)
	return m, cmd
}

func (m Model) handleHelpKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionBack, MenuActionSelect:
		m.machine.GoTo(game.ModeMainMenu)
	}
	return m, nil
}

// handleTick advances the mode machine and the simulation by the wall
// time since the previous tick.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	now := time.Time(msg)
	var dt float64
	if m.lastTick.IsZero() {
		dt = 1.0 / float64(m.config.TickRate)
	} else {
		dt = now.Sub(m.lastTick).Seconds()
	}
	m.lastTick = now

	m.machine.Update(dt)

	events := m.session.Update(dt, m.input)
	for _, ev := range events {
		switch ev {
		case game.EventCoin:
			m.playCue(audio.CueCoin)
		case game.EventLevelUp:
			m.playCue(audio.CueLevelUp)
		case game.EventGameOver:
			m.playCue(audio.CueCollision)
			m.machine.Set(game.ModeGameOver)
		}
	}

	m.input.Clear()
	return m, tickCmd(m.config.TickRate)
}

func (m Model) playCue(cue audio.Cue) {
	if m.sound != nil {
		m.sound.Play(cue)
	}
}

// View renders the current mode.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.machine.Mode() {
	case game.ModeLeaderboard:
		return m.board.View()
	case game.ModeMainMenu:
		drawMainMenu(m.screen, m.menuCursor, m.session.State().HighScore)
	case game.ModeNameInput:
		drawNameInput(m.screen, m.nameInput)
	case game.ModePlaying:
		drawPlaying(m.screen, m.session)
	case game.ModePaused:
		drawPlaying(m.screen, m.session)
		drawPauseOverlay(m.screen)
	case game.ModeGameOver:
		drawPlaying(m.screen, m.session)
		drawGameOverOverlay(m.screen, m.session.State())
	case game.ModeHelp:
		drawHelp(m.screen)
	}

	applyFade(m.screen, m.machine.Fade())
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(gameCfg config.GameConfig, store *storage.Store, sound *audio.Player, cfg core.RuntimeConfig, defaultName string) error {
	model := NewModel(gameCfg, store, sound, cfg, defaultName)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
