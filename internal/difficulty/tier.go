// Package difficulty maps cumulative score to a discrete difficulty tier.
// The tier table is static; progression only ever moves up within a run.
package difficulty

import (
	"time"

	"github.com/samharte/airrush/internal/core"
)

// MaxLevel is the hardest tier; levels above it clamp down to it.
const MaxLevel = 12

// Tier is one difficulty level's parameter bundle. Immutable.
type Tier struct {
	Level         int
	Name          string
	ObstacleSpeed float64       // Playfield units per second
	SpawnInterval time.Duration // Time between obstacle spawns
	GapSize       float64       // Vertical gap left open by an obstacle
	Color         core.Color
}

// tiers is the full progression, level 1 (easiest) through 12 (hardest).
var tiers = [MaxLevel]Tier{
	{1, "Tutorial", 200, 3000 * time.Millisecond, 150, core.ColorBrightGreen},
	{2, "Easy", 220, 2800 * time.Millisecond, 140, core.ColorGreen},
	{3, "Beginner", 240, 2600 * time.Millisecond, 130, core.ColorBrightYellow},
	{4, "Casual", 260, 2400 * time.Millisecond, 120, core.ColorYellow},
	{5, "Normal", 280, 2200 * time.Millisecond, 110, core.ColorOrange},
	{6, "Moderate", 300, 2000 * time.Millisecond, 100, core.ColorOrange},
	{7, "Challenging", 320, 1800 * time.Millisecond, 90, core.ColorBrightRed},
	{8, "Hard", 340, 1600 * time.Millisecond, 80, core.ColorBrightRed},
	{9, "Expert", 360, 1400 * time.Millisecond, 70, core.ColorRed},
	{10, "Master", 380, 1200 * time.Millisecond, 60, core.ColorRed},
	{11, "Insane", 400, 1000 * time.Millisecond, 50, core.ColorDarkRed},
	{12, "Nightmare", 450, 800 * time.Millisecond, 40, core.ColorDarkRed},
}

// TierFor returns the tier for the given level. Input is clamped to
// [1, MaxLevel]; the lookup is pure and has no side effects.
func TierFor(level int) Tier {
	level = core.Clamp(level, 1, MaxLevel)
	return tiers[level-1]
}

// MaybeAdvance decides whether the difficulty level should step up given
// the current score. It fires when the score sits on a fresh multiple of
// 10; lastIncrease is the watermark score of the previous advance,
// preventing re-triggering while the score holds the same value. Returns
// the (possibly unchanged) level, the new watermark, and whether a
// level-up happened. The level never decreases.
func MaybeAdvance(score, lastIncrease, level int) (newLevel, newWatermark int, leveledUp bool) {
	if score > 0 && score%10 == 0 && score > lastIncrease && level < MaxLevel {
		return level + 1, score, true
	}
	return level, lastIncrease, false
}
