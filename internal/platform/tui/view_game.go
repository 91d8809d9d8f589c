package tui

import (
	"fmt"

	"github.com/samharte/airrush/internal/core"
	"github.com/samharte/airrush/internal/game"
)

// viewport projects playfield coordinates onto the terminal cell grid.
type viewport struct {
	cols, rows     int
	fieldW, fieldH float64
	shakeX         int
}

func newViewport(s *core.Screen, sess *game.Session, shake float64) viewport {
	cfg := sess.Config()
	v := viewport{
		cols:   s.Width(),
		rows:   s.Height(),
		fieldW: cfg.Playfield.Width,
		fieldH: cfg.Playfield.Height,
	}
	if shake > 0 {
		mag := int(shake)/5 + 1
		if int(shake*7)%2 == 0 {
			mag = -mag
		}
		v.shakeX = mag
	}
	return v
}

func (v viewport) x(sx float64) int {
	return v.shakeX + int(sx/v.fieldW*float64(v.cols))
}

func (v viewport) y(sy float64) int {
	return int(sy / v.fieldH * float64(v.rows))
}

// drawPlaying renders the live playfield: ground, obstacles, coins, the
// craft, particles, HUD, and the transient overlays.
func drawPlaying(s *core.Screen, sess *game.Session) {
	s.Clear()
	st := sess.State()
	v := newViewport(s, sess, st.Shake)
	cfg := sess.Config()

	drawGround(s, v, cfg.Playfield.GroundHeight)
	drawObstacles(s, v, sess, st)
	drawCoins(s, v, sess)
	drawCraft(s, v, sess)
	drawParticles(s, v, sess)

	if st.Flash > 0 {
		drawFlash(s, st.Flash)
	}

	drawHUD(s, st)

	if st.LevelUpLeft > 0 {
		drawLevelUpBanner(s, st)
	}
}

func drawGround(s *core.Screen, v viewport, groundHeight float64) {
	top := v.y(v.fieldH - groundHeight)
	if top < 0 {
		top = 0
	}
	for y := top; y < v.rows; y++ {
		fill := '▒'
		if y == top {
			fill = '▔'
		}
		s.DrawHLine(0, y, v.cols, fill, core.ColorGreen)
	}
}

func drawObstacles(s *core.Screen, v viewport, sess *game.Session, st game.State) {
	for _, o := range sess.Obstacles() {
		x0 := v.x(o.Box.X)
		x1 := v.x(o.Box.Right())
		y0 := v.y(o.Box.Y)
		y1 := v.y(o.Box.Bottom())
		if x1 <= x0 {
			x1 = x0 + 1
		}
		s.DrawRect(x0, y0, x1-x0, y1-y0, '█', st.Tier.Color)
	}
}

func drawCoins(s *core.Screen, v viewport, sess *game.Session) {
	for _, c := range sess.Coins() {
		s.SetCell(v.x(c.Pos.X), v.y(c.Pos.Y), '●', core.ColorGold)
	}
}

func drawCraft(s *core.Screen, v viewport, sess *game.Session) {
	craft := sess.Craft()
	if craft == nil {
		return
	}
	r := craft.Rect()
	x0 := v.x(r.X)
	x1 := v.x(r.Right())
	y := v.y(r.Center().Y)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	for x := x0; x < x1-1; x++ {
		s.SetCell(x, y, '▬', core.ColorBrightYellow)
	}
	s.SetCell(x1-1, y, '▶', core.ColorBrightYellow)
}

func drawParticles(s *core.Screen, v viewport, sess *game.Session) {
	for _, p := range sess.Particles() {
		r := '·'
		if p.Size > 5 {
			r = '*'
		}
		s.SetCell(v.x(p.Pos.X), v.y(p.Pos.Y), r, p.Color)
	}
}

// drawFlash overlays an impact flash, denser while the alpha is high.
func drawFlash(s *core.Screen, flash float64) {
	step := 2
	if flash > 100 {
		step = 1
	}
	for y := 0; y < s.Height(); y++ {
		for x := y % step; x < s.Width(); x += step + 1 {
			s.SetCell(x, y, '░', core.ColorBrightRed)
		}
	}
}

func drawHUD(s *core.Screen, st game.State) {
	s.DrawTextColored(1, 0, fmt.Sprintf("SCORE %d", st.Score), core.ColorWhite)
	s.DrawTextColored(1, 1, fmt.Sprintf("COINS %d", st.Coins), core.ColorGold)

	tierLabel := fmt.Sprintf("LVL %d %s", st.Level, st.Tier.Name)
	s.DrawTextColored(s.Width()-len(tierLabel)-1, 0, tierLabel, st.Tier.Color)

	best := fmt.Sprintf("BEST %d", st.HighScore)
	s.DrawTextColored(s.Width()-len(best)-1, 1, best, core.ColorGray)
}

func drawLevelUpBanner(s *core.Screen, st game.State) {
	text := fmt.Sprintf(" LEVEL %d: %s ", st.Level, st.Tier.Name)
	w := len([]rune(text)) + 2
	x := (s.Width() - w) / 2
	y := s.Height() / 3

	s.DrawBox(x, y, w, 3, st.Tier.Color)
	s.DrawTextColored(x+1, y+1, text, st.Tier.Color)
}

// drawPauseOverlay dims nothing; it draws a box over the frozen playfield.
func drawPauseOverlay(s *core.Screen) {
	lines := []string{"PAUSED", "", "p resume   q quit"}
	drawOverlayBox(s, lines, core.ColorBrightYellow)
}

func drawGameOverOverlay(s *core.Screen, st game.State) {
	lines := []string{
		"GAME OVER",
		"",
		fmt.Sprintf("score %d   coins %d", st.Score, st.Coins),
	}
	if st.NewHighScore {
		lines = append(lines, "NEW HIGH SCORE!")
	} else {
		lines = append(lines, fmt.Sprintf("best %d", st.HighScore))
	}
	lines = append(lines, "", "r retry   enter menu   q quit")
	drawOverlayBox(s, lines, core.ColorBrightRed)
}

// drawOverlayBox centers a bordered text block over the current screen.
func drawOverlayBox(s *core.Screen, lines []string, c core.Color) {
	w := 0
	for _, l := range lines {
		if n := len([]rune(l)); n > w {
			w = n
		}
	}
	w += 6
	h := len(lines) + 2
	x := (s.Width() - w) / 2
	y := (s.Height() - h) / 2

	s.DrawRect(x, y, w, h, ' ', core.ColorDefault)
	s.DrawBox(x, y, w, h, c)
	for i, l := range lines {
		lx := x + (w-len([]rune(l)))/2
		s.DrawTextColored(lx, y+1+i, l, c)
	}
}

// applyFade blanks cells in a dithered pattern as the transition overlay
// opacity rises, wiping to black at full fade.
func applyFade(s *core.Screen, fade float64) {
	if fade <= 0 {
		return
	}
	threshold := int(fade)
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			pattern := (x*2654435761 + y*40503) % 255
			if pattern < threshold {
				s.SetCell(x, y, ' ', core.ColorDefault)
			}
		}
	}
}
