package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/samharte/airrush/internal/audio"
	"github.com/samharte/airrush/internal/config"
	"github.com/samharte/airrush/internal/core"
	"github.com/samharte/airrush/internal/platform/tui"
	"github.com/samharte/airrush/internal/storage"
)

var (
	flagConfig string
	flagName   string
	flagMute   bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start the game",
	Long: `Start a session: main menu, name entry, then the run.

Controls:
  Space/W/Up - Thrust upward
  P/Esc      - Pause
  R          - Retry (after a crash)
  Q/Ctrl+C   - Quit

Examples:
  airrush play
  airrush play --name ACE
  airrush play --config ./my-tuning.yaml
  airrush play --seed 42 --mute`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagName, "name", "", "Prefill the player name")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound effects")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	var sound *audio.Player
	if !flagMute {
		sound = audio.NewPlayer()
		if initErr := sound.Init(); initErr != nil {
			// No audio device; play silently
			sound = nil
		}
	}

	runErr := tui.Run(gameCfg, store, sound, cfg, flagName)

	if sound != nil {
		sound.Close()
	}
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
