// Package game implements the playable simulation: entities, spawning,
// and the session controller that drives one play-through.
package game

import (
	"math"

	"github.com/samharte/airrush/internal/config"
	"github.com/samharte/airrush/internal/core"
)

// Orientation says which edge an obstacle barrier grows from.
type Orientation int

const (
	// OrientationLower barriers rise from the ground.
	OrientationLower Orientation = iota
	// OrientationUpper barriers hang from the ceiling.
	OrientationUpper
)

// Craft is the player-controlled vehicle. Exactly one exists while a
// session is active; it is destroyed on terminal collision and recreated
// on reset.
type Craft struct {
	Pos   core.Vec2 // Top-left corner
	Vel   float64   // Vertical velocity, positive = down
	W, H  float64
	Alive bool
}

// NewCraft creates a craft at the configured x, vertically centered.
func NewCraft(cfg config.GameConfig) *Craft {
	return &Craft{
		Pos:   core.Vec2{X: cfg.Player.X, Y: cfg.Playfield.Height/2 - cfg.Player.Height/2},
		W:     cfg.Player.Width,
		H:     cfg.Player.Height,
		Alive: true,
	}
}

// Jump sets the vertical velocity to the configured impulse. Repeated
// jumps reset the velocity rather than stacking.
func (c *Craft) Jump(impulse float64) {
	c.Vel = impulse
}

// Update integrates gravity into velocity, then velocity into position
// (semi-implicit Euler), capping at terminal fall speed.
func (c *Craft) Update(dt float64, phys config.Physics) {
	c.Vel += phys.Gravity * dt
	if c.Vel > phys.MaxFallSpeed {
		c.Vel = phys.MaxFallSpeed
	}
	c.Pos.Y += c.Vel * dt
}

// Rect returns the craft's full bounding box.
func (c *Craft) Rect() core.Rect {
	return core.NewRect(c.Pos.X, c.Pos.Y, c.W, c.H)
}

// Hitbox returns the collision box: the bounding box inset by the
// configured fraction of the craft height, approximating the forgiveness
// of a sprite mask.
func (c *Craft) Hitbox(insetFrac float64) core.Rect {
	return c.Rect().Inset(c.H * insetFrac)
}

// Obstacle is a single barrier with a gap beside it. Lower barriers leave
// the gap above them, upper barriers below; which one spawns is random.
type Obstacle struct {
	Box         core.Rect
	Speed       float64 // Horizontal speed, units/s leftward
	Gap         float64 // Gap size the barrier was spawned with
	Orientation Orientation
}

// newObstacle places a barrier at x with the tier's gap and speed. A lower
// barrier's visible top sits gap units above where it would fully block
// the field; an upper barrier mirrors that from the ceiling.
func newObstacle(x float64, gap, speed float64, orient Orientation, cfg config.GameConfig) Obstacle {
	o := Obstacle{Speed: speed, Gap: gap, Orientation: orient}
	w := cfg.Obstacles.Width
	h := cfg.Obstacles.Height

	if orient == OrientationLower {
		// Bottom edge pushed below the field by the gap size
		bottom := cfg.Playfield.Height + gap
		o.Box = core.NewRect(x, bottom-h, w, h)
	} else {
		// Top edge pulled above the field by the gap size
		top := -gap
		o.Box = core.NewRect(x, top, w, h)
	}
	return o
}

// Update moves the obstacle left.
func (o *Obstacle) Update(dt float64) {
	o.Box.X -= o.Speed * dt
}

// OffScreen reports whether the obstacle has fully left the playfield.
func (o *Obstacle) OffScreen(margin float64) bool {
	return o.Box.Right() <= -margin
}

// Coin floats gently while scrolling left at the obstacle speed it was
// spawned with. Collecting it is non-terminal.
type Coin struct {
	Pos        core.Vec2 // Center
	BaseY      float64   // Anchor for the floating wobble
	Phase      float64   // Floating animation phase
	FloatSpeed float64   // Phase advance rate, rad/s
	Speed      float64   // Horizontal speed, units/s leftward
	Size       float64   // Collision box side
}

// floatAmplitude is the vertical wobble range in playfield units.
const floatAmplitude = 5.0

// Update moves the coin left and advances its floating wobble.
func (c *Coin) Update(dt float64) {
	c.Pos.X -= c.Speed * dt
	c.Phase += c.FloatSpeed * dt
	c.Pos.Y = c.BaseY + math.Sin(c.Phase)*floatAmplitude
}

// Rect returns the coin's collision box, centered on its position.
func (c *Coin) Rect() core.Rect {
	return core.NewRect(c.Pos.X-c.Size/2, c.Pos.Y-c.Size/2, c.Size, c.Size)
}

// OffScreen reports whether the coin has fully left the playfield.
func (c *Coin) OffScreen(margin float64) bool {
	return c.Pos.X+c.Size/2 <= -margin
}

// Particle is a cosmetic point for explosions, sparkles, and level-up
// showers. The session simulates particles so the renderer only draws.
type Particle struct {
	Pos      core.Vec2
	Vel      core.Vec2
	Size     float64
	Color    core.Color
	Lifetime float64
	Initial  float64 // Starting lifetime, for fade-out ratios
}

// particleGravity pulls particles down, units/s².
const particleGravity = 200.0

// Update advances the particle; expired particles have Lifetime <= 0.
func (p *Particle) Update(dt float64) {
	p.Pos = p.Pos.Add(p.Vel.Scale(dt))
	p.Vel.Y += particleGravity * dt
	p.Lifetime -= dt
}
