package difficulty

import (
	"testing"
	"time"
)

func TestTierForClamping(t *testing.T) {
	if TierFor(13) != TierFor(12) {
		t.Error("TierFor(13) should clamp to TierFor(12)")
	}
	if TierFor(100) != TierFor(12) {
		t.Error("TierFor(100) should clamp to TierFor(12)")
	}
	if TierFor(0) != TierFor(1) {
		t.Error("TierFor(0) should clamp to TierFor(1)")
	}
}

func TestTierForDeterministic(t *testing.T) {
	for level := 1; level <= MaxLevel; level++ {
		a := TierFor(level)
		b := TierFor(level)
		if a != b {
			t.Errorf("TierFor(%d) not deterministic: %+v vs %+v", level, a, b)
		}
		if a.Level != level {
			t.Errorf("TierFor(%d).Level = %d", level, a.Level)
		}
	}
}

func TestTierTableShape(t *testing.T) {
	if TierFor(1).Name != "Tutorial" {
		t.Errorf("level 1 name = %q, expected Tutorial", TierFor(1).Name)
	}
	if TierFor(12).Name != "Nightmare" {
		t.Errorf("level 12 name = %q, expected Nightmare", TierFor(12).Name)
	}

	// Speed rises and spawn interval and gap shrink monotonically
	for level := 2; level <= MaxLevel; level++ {
		prev, cur := TierFor(level-1), TierFor(level)
		if cur.ObstacleSpeed <= prev.ObstacleSpeed {
			t.Errorf("speed not increasing at level %d", level)
		}
		if cur.SpawnInterval >= prev.SpawnInterval {
			t.Errorf("spawn interval not decreasing at level %d", level)
		}
		if cur.GapSize >= prev.GapSize {
			t.Errorf("gap not decreasing at level %d", level)
		}
	}

	if TierFor(12).SpawnInterval != 800*time.Millisecond {
		t.Errorf("level 12 interval = %v", TierFor(12).SpawnInterval)
	}
}

func TestMaybeAdvanceSequence(t *testing.T) {
	level, watermark := 1, 0
	ups := 0

	// Feed scores 0..20 sequentially; level must rise exactly at 10 and 20.
	for score := 0; score <= 20; score++ {
		var up bool
		level, watermark, up = MaybeAdvance(score, watermark, level)
		if up {
			ups++
			if score != 10 && score != 20 {
				t.Errorf("unexpected level-up at score %d", score)
			}
		}
	}

	if ups != 2 {
		t.Errorf("expected exactly 2 level-ups, got %d", ups)
	}
	if level != 3 {
		t.Errorf("expected level 3 after scores 0..20, got %d", level)
	}
}

func TestMaybeAdvanceWatermarkGuard(t *testing.T) {
	level, watermark := 1, 0

	// The same score checked every frame must advance only once.
	for frame := 0; frame < 100; frame++ {
		var up bool
		level, watermark, up = MaybeAdvance(10, watermark, level)
		if up && frame > 0 {
			t.Fatalf("re-triggered on held score at frame %d", frame)
		}
	}

	if level != 2 {
		t.Errorf("expected level 2 after holding score 10, got %d", level)
	}
}

func TestMaybeAdvanceNeverDecreasesAndCapsAtMax(t *testing.T) {
	level, watermark := MaxLevel, 110

	newLevel, _, up := MaybeAdvance(120, watermark, level)
	if up || newLevel != MaxLevel {
		t.Errorf("level must cap at %d, got %d (up=%v)", MaxLevel, newLevel, up)
	}

	newLevel, _, _ = MaybeAdvance(5, 0, 4)
	if newLevel < 4 {
		t.Errorf("level decreased to %d", newLevel)
	}
}
