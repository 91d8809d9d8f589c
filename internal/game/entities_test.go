package game

import (
	"math"
	"testing"

	"github.com/samharte/airrush/internal/config"
	"github.com/samharte/airrush/internal/core"
)

func TestCraftGravity(t *testing.T) {
	cfg := config.Default()
	c := NewCraft(cfg)
	startY := c.Pos.Y

	c.Update(0.1, cfg.Physics)
	if c.Vel != cfg.Physics.Gravity*0.1 {
		t.Fatalf("velocity after 0.1s = %v, want %v", c.Vel, cfg.Physics.Gravity*0.1)
	}
	if c.Pos.Y <= startY {
		t.Fatalf("craft did not fall: %v -> %v", startY, c.Pos.Y)
	}
}

func TestCraftJumpResetsVelocity(t *testing.T) {
	cfg := config.Default()
	c := NewCraft(cfg)

	// Build downward speed, then jump: velocity snaps to the impulse
	// instead of accumulating
	for i := 0; i < 20; i++ {
		c.Update(0.05, cfg.Physics)
	}
	c.Jump(cfg.Physics.JumpImpulse)
	if c.Vel != cfg.Physics.JumpImpulse {
		t.Fatalf("velocity after jump = %v, want %v", c.Vel, cfg.Physics.JumpImpulse)
	}

	// Jumping again mid-rise resets, never stacks
	c.Jump(cfg.Physics.JumpImpulse)
	if c.Vel != cfg.Physics.JumpImpulse {
		t.Fatalf("velocity after double jump = %v, want %v", c.Vel, cfg.Physics.JumpImpulse)
	}
}

func TestCraftTerminalVelocity(t *testing.T) {
	cfg := config.Default()
	c := NewCraft(cfg)

	for i := 0; i < 200; i++ {
		c.Update(0.05, cfg.Physics)
	}
	if c.Vel != cfg.Physics.MaxFallSpeed {
		t.Fatalf("velocity after long fall = %v, want cap %v", c.Vel, cfg.Physics.MaxFallSpeed)
	}
}

func TestCraftHitboxSmallerThanSprite(t *testing.T) {
	cfg := config.Default()
	c := NewCraft(cfg)

	full := c.Rect()
	hit := c.Hitbox(cfg.Player.HitboxInset)
	if hit.W >= full.W || hit.H >= full.H {
		t.Fatalf("hitbox %v not smaller than sprite %v", hit, full)
	}
	if !full.Contains(hit.Center()) {
		t.Fatal("hitbox drifted outside the sprite")
	}
}

func TestObstacleGapGeometry(t *testing.T) {
	cfg := config.Default()

	lower := newObstacle(500, 120, 250, OrientationLower, cfg)
	if got := lower.Box.Bottom(); got != cfg.Playfield.Height+120 {
		t.Fatalf("lower bottom = %v, want %v", got, cfg.Playfield.Height+120)
	}
	// Visible part leaves a 120-unit opening above the barrier top
	if got := lower.Box.Y; got != cfg.Playfield.Height+120-cfg.Obstacles.Height {
		t.Fatalf("lower top = %v", got)
	}

	upper := newObstacle(500, 120, 250, OrientationUpper, cfg)
	if got := upper.Box.Y; got != -120.0 {
		t.Fatalf("upper top = %v, want -120", got)
	}
}

func TestObstacleScrollAndDespawn(t *testing.T) {
	cfg := config.Default()
	o := newObstacle(0, 100, 200, OrientationLower, cfg)

	o.Update(0.5)
	if o.Box.X != -100 {
		t.Fatalf("x after 0.5s at 200/s = %v, want -100", o.Box.X)
	}
	if o.OffScreen(cfg.Obstacles.DespawnMargin) {
		t.Fatal("despawned while partially visible margin-wise")
	}

	for !o.OffScreen(cfg.Obstacles.DespawnMargin) {
		o.Update(0.5)
	}
	if o.Box.Right() > -cfg.Obstacles.DespawnMargin {
		t.Fatalf("despawned too early: right edge %v", o.Box.Right())
	}
}

func TestCoinFloatStaysInBand(t *testing.T) {
	c := Coin{
		Pos:        core.Vec2{X: 600, Y: 300},
		BaseY:      300,
		FloatSpeed: 2,
		Speed:      200,
		Size:       24,
	}

	for i := 0; i < 100; i++ {
		c.Update(0.05)
		if math.Abs(c.Pos.Y-c.BaseY) > floatAmplitude+1e-9 {
			t.Fatalf("coin wobbled %v past its %v amplitude", c.Pos.Y-c.BaseY, floatAmplitude)
		}
	}
	if c.Pos.X >= 600 {
		t.Fatal("coin did not scroll left")
	}
}

func TestParticleExpires(t *testing.T) {
	p := Particle{
		Pos:      core.Vec2{X: 10, Y: 10},
		Vel:      core.Vec2{X: 0, Y: -50},
		Lifetime: 0.5,
		Initial:  0.5,
	}

	for i := 0; i < 9; i++ {
		p.Update(0.05)
	}
	if p.Lifetime <= 0 {
		t.Fatal("particle expired early")
	}
	p.Update(0.05)
	p.Update(0.05)
	if p.Lifetime > 0 {
		t.Fatalf("particle alive past its lifetime: %v", p.Lifetime)
	}
	// Gravity pulled the initial upward velocity back down
	if p.Vel.Y <= -50 {
		t.Fatalf("particle velocity unaffected by gravity: %v", p.Vel.Y)
	}
}
