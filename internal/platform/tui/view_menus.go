package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/samharte/airrush/internal/core"
)

var menuItems = []string{"Play", "Leaderboard", "Help", "Quit"}

const titleArt = "A I R   R U S H"

func drawMainMenu(s *core.Screen, cursor int, best int) {
	s.Clear()

	top := s.Height()/2 - len(menuItems) - 3
	if top < 1 {
		top = 1
	}

	s.DrawTextCentered(top, titleArt, core.ColorBrightYellow)
	s.DrawTextCentered(top+1, "dodge the barriers, grab the coins", core.ColorGray)
	if best > 0 {
		s.DrawTextCentered(top+2, fmt.Sprintf("best: %d", best), core.ColorGold)
	}

	for i, item := range menuItems {
		y := top + 4 + i
		if i == cursor {
			s.DrawTextCentered(y, "> "+item+" <", core.ColorBrightYellow)
		} else {
			s.DrawTextCentered(y, item, core.ColorWhite)
		}
	}

	s.DrawTextCentered(s.Height()-2, "↑/↓ move   enter select   q quit", core.ColorGray)
}

func drawNameInput(s *core.Screen, input textinput.Model) {
	s.Clear()

	mid := s.Height() / 2
	s.DrawTextCentered(mid-2, "ENTER YOUR CALLSIGN", core.ColorBrightYellow)

	value := input.Value()
	field := value + "_"
	s.DrawTextCentered(mid, field, core.ColorWhite)

	s.DrawTextCentered(mid+3, "enter start   esc back", core.ColorGray)
}

var helpLines = []struct {
	text  string
	color core.Color
}{
	{"HOW TO PLAY", core.ColorBrightYellow},
	{"", core.ColorDefault},
	{"space / w / ↑   thrust upward", core.ColorWhite},
	{"p / esc         pause", core.ColorWhite},
	{"r               retry after a crash", core.ColorWhite},
	{"q               quit", core.ColorWhite},
	{"", core.ColorDefault},
	{"Survive as long as you can. Score is seconds", core.ColorGray},
	{"survived; every 10 points the game gets faster,", core.ColorGray},
	{"the gaps get tighter, and the barriers change", core.ColorGray},
	{"color. Coins are a souvenir, not a shield.", core.ColorGray},
	{"", core.ColorDefault},
	{"The ground and the ceiling are just as fatal", core.ColorGray},
	{"as the barriers.", core.ColorGray},
}

func drawHelp(s *core.Screen) {
	s.Clear()

	top := (s.Height() - len(helpLines)) / 2
	if top < 1 {
		top = 1
	}
	for i, l := range helpLines {
		s.DrawTextCentered(top+i, l.text, l.color)
	}
	s.DrawTextCentered(s.Height()-2, "esc back", core.ColorGray)
}
