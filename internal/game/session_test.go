package game

import (
	"testing"

	"github.com/samharte/airrush/internal/config"
	"github.com/samharte/airrush/internal/core"
)

// recordingSink captures Append calls for assertions.
type recordingSink struct {
	appends []appendCall
	best    int
}

type appendCall struct {
	name  string
	score int
	coins int
}

func (r *recordingSink) Append(name string, score, coins int) bool {
	r.appends = append(r.appends, appendCall{name, score, coins})
	return true
}

func (r *recordingSink) HighScore() int {
	return r.best
}

func newTestSession(sink ScoreSink) *Session {
	return NewSession(config.Default(), sink, 42)
}

func noInput() core.InputFrame {
	return core.NewInputFrame()
}

func jumpInput() core.InputFrame {
	in := core.NewInputFrame()
	in.Set(core.ActionJump)
	return in
}

func TestSessionStartState(t *testing.T) {
	s := newTestSession(nil)
	s.Start("ace")

	st := s.State()
	if !st.Active || st.GameOver || st.Paused {
		t.Fatalf("fresh session: active=%v gameOver=%v paused=%v", st.Active, st.GameOver, st.Paused)
	}
	if st.Score != 0 || st.Coins != 0 || st.Level != 1 {
		t.Fatalf("fresh session: score=%d coins=%d level=%d", st.Score, st.Coins, st.Level)
	}
	if s.Craft() == nil {
		t.Fatal("fresh session has no craft")
	}
	if s.Name() != "ace" {
		t.Fatalf("name = %q, want ace", s.Name())
	}
}

func TestSessionScoreIsSurvivalSeconds(t *testing.T) {
	s := newTestSession(nil)
	s.Start("ace")

	// 2.5 seconds of play, hovering clear of the ground
	for i := 0; i < 100; i++ {
		s.Update(0.025, alternatingHover(i))
	}
	if got := s.State().Score; got != 2 {
		t.Fatalf("score after 2.5s = %d, want 2", got)
	}
}

// alternatingHover jumps once per full arc (2*350/500 = 1.4s at the
// default physics) so the craft loiters mid-field indefinitely.
func alternatingHover(frame int) core.InputFrame {
	if frame%56 == 0 {
		return jumpInput()
	}
	return noInput()
}

func TestSessionPauseFreezesEverything(t *testing.T) {
	s := newTestSession(nil)
	s.Start("ace")

	for i := 0; i < 40; i++ {
		s.Update(0.025, alternatingHover(i))
	}
	before := s.State()
	obstaclesBefore := len(s.Obstacles())
	craftBefore := s.Craft().Pos

	s.Pause()
	// 5 simulated seconds of paused ticking
	for i := 0; i < 200; i++ {
		s.Update(0.025, jumpInput())
	}

	after := s.State()
	if !after.Paused {
		t.Fatal("session not paused")
	}
	if after.Score != before.Score {
		t.Fatalf("score advanced while paused: %d -> %d", before.Score, after.Score)
	}
	if len(s.Obstacles()) != obstaclesBefore {
		t.Fatalf("obstacles spawned while paused: %d -> %d", obstaclesBefore, len(s.Obstacles()))
	}
	if s.Craft().Pos != craftBefore {
		t.Fatal("craft moved while paused")
	}

	s.Resume()
	s.Update(0.025, noInput())
	if s.Craft().Pos == craftBefore {
		t.Fatal("craft did not move after resume")
	}
}

func TestSessionGroundCollisionEndsRun(t *testing.T) {
	sink := &recordingSink{}
	s := newTestSession(sink)
	s.Start("ace")

	// Never jump: the craft falls into the ground band within a few seconds
	ended := false
	for i := 0; i < 400 && !ended; i++ {
		for _, ev := range s.Update(0.025, noInput()) {
			if ev == EventGameOver {
				ended = true
			}
		}
	}
	if !ended {
		t.Fatal("free fall never ended the run")
	}

	st := s.State()
	if st.Active || !st.GameOver {
		t.Fatalf("after collision: active=%v gameOver=%v", st.Active, st.GameOver)
	}
	if s.Craft() != nil {
		t.Fatal("craft survived a terminal collision")
	}
	if len(s.Obstacles()) != 0 {
		t.Fatal("obstacles survived a terminal collision")
	}
	if st.Shake == 0 || st.Flash == 0 {
		t.Fatalf("collision effects missing: shake=%v flash=%v", st.Shake, st.Flash)
	}

	if len(sink.appends) != 1 {
		t.Fatalf("Append called %d times, want 1", len(sink.appends))
	}
	got := sink.appends[0]
	if got.name != "ace" || got.score < 1 {
		t.Fatalf("persisted %+v, want name ace and positive score", got)
	}

	// Further ticks must not persist again
	for i := 0; i < 40; i++ {
		s.Update(0.025, noInput())
	}
	if len(sink.appends) != 1 {
		t.Fatalf("Append called again after game over: %d calls", len(sink.appends))
	}
}

func TestSessionCeilingCollisionEndsRun(t *testing.T) {
	s := newTestSession(nil)
	s.Start("ace")

	// Hold jump every frame: velocity pins at the impulse and the craft
	// climbs into the ceiling
	ended := false
	for i := 0; i < 400 && !ended; i++ {
		for _, ev := range s.Update(0.025, jumpInput()) {
			if ev == EventGameOver {
				ended = true
			}
		}
	}
	if !ended {
		t.Fatal("climbing into the ceiling never ended the run")
	}
}

func TestSessionZeroScoreRunNotPersisted(t *testing.T) {
	sink := &recordingSink{}
	s := newTestSession(sink)
	s.Start("ace")

	// Force an immediate terminal state before any whole second elapses
	s.Craft().Pos.Y = -5
	s.Update(0.01, noInput())

	if !s.State().GameOver {
		t.Fatal("expected game over")
	}
	if len(sink.appends) != 0 {
		t.Fatalf("zero-score run persisted: %+v", sink.appends)
	}
}

func TestSessionHighScoreTieCountsAsNew(t *testing.T) {
	for _, tc := range []struct {
		name    string
		best    int
		wantNew bool
	}{
		{"beats best", 0, true},
		{"ties best", 5, true},
		{"under best", 100, false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			sink := &recordingSink{best: tc.best}
			s := newTestSession(sink)
			s.Start("ace")

			// End the run at exactly score 5
			s.elapsed = 5.0
			s.Craft().Pos.Y = -5
			s.Update(0.001, noInput())

			if !s.State().GameOver {
				t.Fatal("run never ended")
			}
			if got := s.State().Score; got != 5 {
				t.Fatalf("score = %d, want 5", got)
			}
			if got := s.State().NewHighScore; got != tc.wantNew {
				t.Fatalf("NewHighScore = %v, want %v (best %d)", got, tc.wantNew, tc.best)
			}
		})
	}
}

func TestSessionDtClamp(t *testing.T) {
	s := newTestSession(nil)
	s.Start("ace")

	// One monster frame must advance at most MaxFrameDelta
	s.Update(10.0, noInput())
	if got := s.State().Score; got != 0 {
		t.Fatalf("score after one clamped frame = %d, want 0", got)
	}
}

func TestSessionResetKeepsName(t *testing.T) {
	s := newTestSession(nil)
	s.Start("ace")
	for i := 0; i < 400 && !s.State().GameOver; i++ {
		s.Update(0.025, noInput())
	}
	if !s.State().GameOver {
		t.Fatal("run never ended")
	}

	s.Reset()
	st := s.State()
	if !st.Active || st.GameOver || st.Score != 0 || st.Level != 1 {
		t.Fatalf("after reset: %+v", st)
	}
	if s.Name() != "ace" {
		t.Fatalf("reset lost the name: %q", s.Name())
	}
	if s.Craft() == nil {
		t.Fatal("reset did not recreate the craft")
	}
}

func TestSessionCoinCollection(t *testing.T) {
	s := newTestSession(nil)
	s.Start("ace")

	// Plant a coin on the craft and tick once
	craft := s.Craft()
	center := craft.Rect().Center()
	s.coins = append(s.coins, Coin{
		Pos:   center,
		BaseY: center.Y,
		Size:  24,
	})

	events := s.Update(0.001, noInput())
	gotCoin := false
	for _, ev := range events {
		if ev == EventCoin {
			gotCoin = true
		}
	}
	if !gotCoin {
		t.Fatal("overlapping coin not collected")
	}
	if got := s.State().Coins; got != 1 {
		t.Fatalf("coin count = %d, want 1", got)
	}
	if len(s.Coins()) != 0 {
		t.Fatal("collected coin still live")
	}
	if len(s.Particles()) == 0 {
		t.Fatal("collection spawned no sparkle")
	}
}

func TestSessionEffectsDecayAfterGameOver(t *testing.T) {
	s := newTestSession(nil)
	s.Start("ace")
	s.Craft().Pos.Y = -5
	s.Update(0.01, noInput())
	if !s.State().GameOver {
		t.Fatal("expected game over")
	}

	shake := s.State().Shake
	if shake == 0 {
		t.Fatal("no shake after collision")
	}
	// Effects keep decaying even though the run is over
	for i := 0; i < 10; i++ {
		s.Update(0.025, noInput())
	}
	if got := s.State().Shake; got >= shake {
		t.Fatalf("shake did not decay: %v -> %v", shake, got)
	}
}
