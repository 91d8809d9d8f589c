package game

import (
	"math"
	"math/rand"

	"github.com/samharte/airrush/internal/config"
	"github.com/samharte/airrush/internal/core"
	"github.com/samharte/airrush/internal/difficulty"
)

// MaxFrameDelta caps dt so a window drag or debugger pause cannot blow up
// the integration step.
const MaxFrameDelta = 0.05

// levelUpDisplaySecs is how long the level-up banner stays on screen.
const levelUpDisplaySecs = 3.0

// ScoreSink is what the session needs from persistence. Append must never
// fail loudly: storage trouble degrades to false and the game goes on.
type ScoreSink interface {
	Append(name string, score, coins int) bool
	HighScore() int
}

// Event is a discrete thing that happened during a tick, for the platform
// to turn into sounds or other feedback.
type Event int

const (
	EventCoin Event = iota
	EventLevelUp
	EventGameOver
)

// State is a per-frame snapshot of everything the renderer and HUD need.
type State struct {
	Score        int
	Coins        int
	Level        int
	Tier         difficulty.Tier
	Active       bool
	GameOver     bool
	Paused       bool
	HighScore    int
	NewHighScore bool
	LevelUpLeft  float64 // Seconds remaining on the level-up banner
	Shake        float64 // Screen shake magnitude
	Flash        float64 // Collision flash alpha
}

// Session orchestrates one play-through: per-frame simulation, spawning,
// difficulty progression, terminal collision handling, and score
// finalization. All state lives here, passed out through State() rather
// than ambient globals.
type Session struct {
	cfg  config.GameConfig
	sink ScoreSink
	rng  *rand.Rand
	seed int64

	name      string
	craft     *Craft
	obstacles []Obstacle
	coins     []Coin
	particles []Particle
	spawner   *Spawner

	elapsed      float64 // Unpaused play time this session, seconds
	score        int
	coinCount    int
	level        int
	lastIncrease int // Watermark: score at the last difficulty advance
	active       bool
	gameOver     bool
	paused       bool
	persisted    bool

	highScore    int
	newHighScore bool

	levelUpTimer float64
	shake        float64
	flash        float64
}

// NewSession creates an idle session. Start must be called before ticking.
// sink may be nil; the session then keeps scores in memory only.
func NewSession(cfg config.GameConfig, sink ScoreSink, seed int64) *Session {
	s := &Session{
		cfg:  cfg,
		sink: sink,
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
	}
	if sink != nil {
		s.highScore = sink.HighScore()
	}
	return s
}

// Start clears all entities and effects, creates a fresh craft, resets
// score and difficulty, re-arms the spawn timers, and activates the run.
func (s *Session) Start(name string) {
	s.name = name
	s.level = 1
	s.lastIncrease = 0
	s.score = 0
	s.coinCount = 0
	s.elapsed = 0
	s.active = true
	s.gameOver = false
	s.paused = false
	s.persisted = false
	s.newHighScore = false

	s.craft = NewCraft(s.cfg)
	s.obstacles = s.obstacles[:0]
	s.coins = s.coins[:0]
	s.particles = s.particles[:0]
	s.spawner = NewSpawner(s.cfg, s.seed, difficulty.TierFor(s.level))

	s.levelUpTimer = 0
	s.shake = 0
	s.flash = 0
}

// Reset restarts the session with the previously entered player name.
func (s *Session) Reset() {
	s.Start(s.name)
}

// Pause suspends the simulation. Timers are countdowns driven by Update,
// so real time spent paused never counts toward spawn deadlines or score.
func (s *Session) Pause() {
	if s.active {
		s.paused = true
	}
}

// Resume continues a paused run.
func (s *Session) Resume() {
	s.paused = false
}

// Update advances the session by dt seconds and returns the events that
// occurred. While paused or after game over only the cosmetic effects
// keep moving.
func (s *Session) Update(dt float64, in core.InputFrame) []Event {
	if dt > MaxFrameDelta {
		dt = MaxFrameDelta
	}

	s.updateEffects(dt)

	if !s.active || s.paused {
		return nil
	}

	var events []Event

	// Score is survival time in whole seconds
	s.elapsed += dt
	s.score = int(s.elapsed)

	// Craft physics
	if in.Has(core.ActionJump) {
		s.craft.Jump(s.cfg.Physics.JumpImpulse)
	}
	s.craft.Update(dt, s.cfg.Physics)

	// Scroll obstacles and coins, dropping what left the field
	s.moveEntities(dt)

	// Spawn off the countdown timers
	tier := difficulty.TierFor(s.level)
	newObstacles, newCoins := s.spawner.Update(dt, tier)
	s.obstacles = append(s.obstacles, newObstacles...)
	s.coins = append(s.coins, newCoins...)

	// Difficulty progression, checked every frame with a watermark guard
	if newLevel, watermark, up := difficulty.MaybeAdvance(s.score, s.lastIncrease, s.level); up {
		s.level = newLevel
		s.lastIncrease = watermark
		s.spawner.Rearm(difficulty.TierFor(s.level))
		s.levelUpTimer = levelUpDisplaySecs
		s.shake = 8
		s.spawnLevelUpShower()
		events = append(events, EventLevelUp)
	}

	// Coin collection: non-terminal, consumes the coin
	if n := s.collectCoins(); n > 0 {
		for i := 0; i < n; i++ {
			events = append(events, EventCoin)
		}
	}

	// Terminal collisions end the run
	if s.checkTerminal() {
		s.finalize()
		events = append(events, EventGameOver)
	}

	return events
}

// moveEntities advances obstacle and coin positions and compacts away
// anything fully off the left edge.
func (s *Session) moveEntities(dt float64) {
	live := s.obstacles[:0]
	for i := range s.obstacles {
		s.obstacles[i].Update(dt)
		if !s.obstacles[i].OffScreen(s.cfg.Obstacles.DespawnMargin) {
			live = append(live, s.obstacles[i])
		}
	}
	s.obstacles = live

	liveCoins := s.coins[:0]
	for i := range s.coins {
		s.coins[i].Update(dt)
		if !s.coins[i].OffScreen(s.cfg.Coins.DespawnMargin) {
			liveCoins = append(liveCoins, s.coins[i])
		}
	}
	s.coins = liveCoins
}

// collectCoins removes every coin overlapping the craft and returns how
// many were taken this frame.
func (s *Session) collectCoins() int {
	hitbox := s.craft.Hitbox(s.cfg.Player.HitboxInset)

	collected := 0
	remaining := s.coins[:0]
	for i := range s.coins {
		if hitbox.Intersects(s.coins[i].Rect()) {
			collected++
			s.spawnSparkle(s.coins[i].Pos)
			continue
		}
		remaining = append(remaining, s.coins[i])
	}
	s.coins = remaining
	s.coinCount += collected
	return collected
}

// checkTerminal reports whether the craft hit anything that ends the run:
// an obstacle, the ground band, or the top of the playfield.
func (s *Session) checkTerminal() bool {
	// Ceiling is terminal even without a shape overlap
	if s.craft.Pos.Y <= 0 {
		return true
	}

	hitbox := s.craft.Hitbox(s.cfg.Player.HitboxInset)

	groundY := s.cfg.Playfield.Height - s.cfg.Playfield.GroundHeight
	ground := core.NewRect(0, groundY, s.cfg.Playfield.Width, s.cfg.Playfield.GroundHeight)
	if hitbox.Intersects(ground) {
		return true
	}

	for i := range s.obstacles {
		if hitbox.Intersects(s.obstacles[i].Box) {
			return true
		}
	}
	return false
}

// finalize ends the run: destroys the craft, clears obstacles, fires the
// collision effects, and persists the result exactly once (only if any
// score was earned).
func (s *Session) finalize() {
	s.active = false
	s.gameOver = true
	s.shake = 15
	s.flash = 150

	center := s.craft.Rect().Center()
	s.spawnExplosion(center)
	s.craft.Alive = false
	s.craft = nil
	s.obstacles = s.obstacles[:0]

	if s.score > 0 && !s.persisted {
		s.persisted = true
		if s.sink != nil {
			s.sink.Append(s.name, s.score, s.coinCount)
		}
	}

	// Tying the stored best also counts as a new high score
	if s.score > 0 && s.score >= s.highScore {
		s.highScore = s.score
		s.newHighScore = true
	}
}

// updateEffects decays shake/flash, runs the level-up banner timer, and
// simulates particles. These run in every mode so game-over and pause
// screens stay lively.
func (s *Session) updateEffects(dt float64) {
	if s.shake > 0 {
		s.shake = math.Max(0, s.shake-200*dt)
	}
	if s.flash > 0 {
		s.flash = math.Max(0, s.flash-300*dt)
	}
	if s.levelUpTimer > 0 {
		s.levelUpTimer -= dt
		if s.levelUpTimer < 0 {
			s.levelUpTimer = 0
		}
	}

	live := s.particles[:0]
	for i := range s.particles {
		s.particles[i].Update(dt)
		if s.particles[i].Lifetime > 0 {
			live = append(live, s.particles[i])
		}
	}
	s.particles = live
}

// spawnExplosion bursts particles from the collision point.
func (s *Session) spawnExplosion(pos core.Vec2) {
	colors := []core.Color{core.ColorBrightRed, core.ColorOrange, core.ColorBrightYellow}
	for i := 0; i < 30; i++ {
		speed := 100 + s.rng.Float64()*200
		angle := s.rng.Float64() * 2 * math.Pi
		life := 0.5 + s.rng.Float64()
		s.particles = append(s.particles, Particle{
			Pos:      pos,
			Vel:      core.Vec2{X: math.Cos(angle) * speed, Y: math.Sin(angle) * speed},
			Size:     3 + s.rng.Float64()*5,
			Color:    colors[s.rng.Intn(len(colors))],
			Lifetime: life,
			Initial:  life,
		})
	}
}

// spawnSparkle scatters a few particles where a coin was collected.
func (s *Session) spawnSparkle(pos core.Vec2) {
	colors := []core.Color{core.ColorGold, core.ColorBrightYellow, core.ColorWhite}
	for i := 0; i < 15; i++ {
		speed := 50 + s.rng.Float64()*100
		angle := s.rng.Float64() * 2 * math.Pi
		life := 0.3 + s.rng.Float64()*0.5
		s.particles = append(s.particles, Particle{
			Pos:      pos,
			Vel:      core.Vec2{X: math.Cos(angle) * speed, Y: math.Sin(angle) * speed},
			Size:     2 + s.rng.Float64()*3,
			Color:    colors[s.rng.Intn(len(colors))],
			Lifetime: life,
			Initial:  life,
		})
	}
}

// spawnLevelUpShower rains tier-colored particles from the top edge.
func (s *Session) spawnLevelUpShower() {
	tier := difficulty.TierFor(s.level)
	for i := 0; i < 30; i++ {
		x := s.rng.Float64() * s.cfg.Playfield.Width
		speed := 50 + s.rng.Float64()*100
		angle := math.Pi/2 + (s.rng.Float64()-0.5) // Mostly downward
		life := 0.8 + s.rng.Float64()*1.2
		s.particles = append(s.particles, Particle{
			Pos:      core.Vec2{X: x, Y: 50},
			Vel:      core.Vec2{X: math.Cos(angle) * speed, Y: math.Sin(angle) * speed},
			Size:     3 + s.rng.Float64()*5,
			Color:    tier.Color,
			Lifetime: life,
			Initial:  life,
		})
	}
}

// State returns a snapshot of the session for rendering.
func (s *Session) State() State {
	return State{
		Score:        s.score,
		Coins:        s.coinCount,
		Level:        s.level,
		Tier:         difficulty.TierFor(s.level),
		Active:       s.active,
		GameOver:     s.gameOver,
		Paused:       s.paused,
		HighScore:    s.highScore,
		NewHighScore: s.newHighScore,
		LevelUpLeft:  s.levelUpTimer,
		Shake:        s.shake,
		Flash:        s.flash,
	}
}

// Name returns the player name the session was started with.
func (s *Session) Name() string {
	return s.name
}

// Craft returns the live craft, or nil when no run is active.
func (s *Session) Craft() *Craft {
	return s.craft
}

// Obstacles returns the live obstacles for rendering.
func (s *Session) Obstacles() []Obstacle {
	return s.obstacles
}

// Coins returns the live coins for rendering.
func (s *Session) Coins() []Coin {
	return s.coins
}

// Particles returns the live particles for rendering.
func (s *Session) Particles() []Particle {
	return s.particles
}

// Config returns the playfield configuration the session runs under.
func (s *Session) Config() config.GameConfig {
	return s.cfg
}

// Reseed changes the RNG seed used for the next Start.
func (s *Session) Reseed(seed int64) {
	s.seed = seed
	s.rng = rand.New(rand.NewSource(seed))
}
