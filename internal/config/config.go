// Package config provides YAML-based game configuration loading.
// Difficulty tier parameters live in the difficulty package; this package
// carries everything tunable around them: physics, playfield geometry,
// obstacle and coin parameters, and the player hitbox.
package config

// GameConfig contains all tunable parameters for a run.
type GameConfig struct {
	Physics   Physics   `yaml:"physics"`
	Playfield Playfield `yaml:"playfield"`
	Obstacles Obstacles `yaml:"obstacles"`
	Coins     Coins     `yaml:"coins"`
	Player    Player    `yaml:"player"`
}

// Physics defines craft motion parameters.
type Physics struct {
	Gravity      float64 `yaml:"gravity"`        // Downward acceleration, units/s²
	JumpImpulse  float64 `yaml:"jump_impulse"`   // Velocity set on jump (negative = up)
	MaxFallSpeed float64 `yaml:"max_fall_speed"` // Terminal velocity
}

// Playfield defines the simulation coordinate space. The terminal view
// projects this space onto whatever cell grid is available.
type Playfield struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundHeight float64 `yaml:"ground_height"` // Terminal collider band at the bottom
}

// Obstacles defines obstacle geometry and spawn placement.
type Obstacles struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	SpawnJitterMin float64 `yaml:"spawn_jitter_min"` // Random extra x past the right edge
	SpawnJitterMax float64 `yaml:"spawn_jitter_max"`
	DespawnMargin  float64 `yaml:"despawn_margin"` // How far past the left edge before removal
}

// Coins defines coin spawning and geometry.
type Coins struct {
	PeriodMs      int     `yaml:"period_ms"`      // Fixed spawn timer period, not tier-dependent
	Chance        float64 `yaml:"chance"`         // Probability of a coin per timer firing
	SafeMargin    float64 `yaml:"safe_margin"`    // Keep-out distance from top/bottom edges
	Size          float64 `yaml:"size"`           // Collision box side length
	DespawnMargin float64 `yaml:"despawn_margin"`
}

// Player defines the craft's fixed x position and collision box.
type Player struct {
	X           float64 `yaml:"x"`
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	HitboxInset float64 `yaml:"hitbox_inset"` // Fraction of height shaved off each side
}
