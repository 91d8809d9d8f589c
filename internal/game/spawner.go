package game

import (
	"math/rand"

	"github.com/samharte/airrush/internal/config"
	"github.com/samharte/airrush/internal/core"
	"github.com/samharte/airrush/internal/difficulty"
)

// Spawner creates obstacles and coins off two countdown timers. The
// obstacle timer runs at the current tier's interval; the coin timer has a
// fixed period with a spawn probability per firing. Timers only advance
// through Update, so a paused session never spawns.
type Spawner struct {
	cfg           config.GameConfig
	rng           *rand.Rand
	obstacleTimer core.Countdown
	coinTimer     core.Countdown
}

// NewSpawner creates a spawner armed for the given starting tier.
func NewSpawner(cfg config.GameConfig, seed int64, tier difficulty.Tier) *Spawner {
	s := &Spawner{
		cfg: cfg,
		rng: rand.New(rand.NewSource(seed)),
	}
	s.obstacleTimer = core.NewCountdown(tier.SpawnInterval.Seconds())
	s.coinTimer = core.NewCountdown(float64(cfg.Coins.PeriodMs) / 1000.0)
	return s
}

// Update advances both timers by dt and returns whatever spawned this
// frame. Obstacles always spawn on firing; coins spawn with the
// configured probability.
func (s *Spawner) Update(dt float64, tier difficulty.Tier) (obstacles []Obstacle, coins []Coin) {
	if s.obstacleTimer.Tick(dt) {
		obstacles = append(obstacles, s.spawnObstacle(tier))
	}
	if s.coinTimer.Tick(dt) {
		if s.rng.Float64() < s.cfg.Coins.Chance {
			coins = append(coins, s.spawnCoin(tier))
		}
	}
	return obstacles, coins
}

// Rearm resets both timers for a tier change. The obstacle timer picks up
// the new interval; the coin period is difficulty-independent but restarts
// from a full period so the deadlines stay in sync with the new tier.
func (s *Spawner) Rearm(tier difficulty.Tier) {
	s.obstacleTimer.Rearm(tier.SpawnInterval.Seconds())
	s.coinTimer.Rearm(float64(s.cfg.Coins.PeriodMs) / 1000.0)
}

// spawnObstacle creates one barrier just past the right edge with a small
// random horizontal jitter and a random orientation.
func (s *Spawner) spawnObstacle(tier difficulty.Tier) Obstacle {
	jitterRange := s.cfg.Obstacles.SpawnJitterMax - s.cfg.Obstacles.SpawnJitterMin
	jitter := s.cfg.Obstacles.SpawnJitterMin + s.rng.Float64()*jitterRange
	x := s.cfg.Playfield.Width + jitter

	orient := OrientationLower
	if s.rng.Intn(2) == 1 {
		orient = OrientationUpper
	}

	return newObstacle(x, tier.GapSize, tier.ObstacleSpeed, orient, s.cfg)
}

// spawnCoin creates one coin at a random vertical position inside the safe
// margin, moving at the current obstacle speed.
func (s *Spawner) spawnCoin(tier difficulty.Tier) Coin {
	margin := s.cfg.Coins.SafeMargin
	span := s.cfg.Playfield.Height - 2*margin
	if span < 0 {
		span = 0
	}
	y := margin + s.rng.Float64()*span
	x := s.cfg.Playfield.Width + 50 + s.rng.Float64()*100

	return Coin{
		Pos:        core.Vec2{X: x, Y: y},
		BaseY:      y,
		FloatSpeed: 1.0 + s.rng.Float64()*2.0,
		Speed:      tier.ObstacleSpeed,
		Size:       s.cfg.Coins.Size,
	}
}
