package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/ninja/internal/platform/tui"
)

var flagPick bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the game in the terminal. Each character cell shows two pixels,
so a larger terminal gives a sharper picture.

Controls:
  Left/A, Right/D  - Run
  Up/W/Space       - Jump (twice in the air, or off a wall)
  X                - Dash
  P/Esc            - Pause
  R                - Restart
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Terminals do not report key releases, so a direction stays held for
input.hold_ticks ticks after the last key repeat.

Examples:
  ninja play
  ninja play --seed 42
  ninja play --map ./level.json
  ninja play --stored cliffs
  ninja play --pick`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addMapFlags(playCmd)
	playCmd.Flags().BoolVar(&flagPick, "pick", false, "Choose a stored map from a list")
	playCmd.MarkFlagsMutuallyExclusive("pick", "map")
	playCmd.MarkFlagsMutuallyExclusive("pick", "stored")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store := openStore(flagPick || flagStored != "")
	if store != nil {
		defer store.Close()
	}

	if flagPick {
		name, err := tui.RunPicker(store, height)
		if err != nil {
			fail("%v", err)
		}
		// User cancelled
		if name == "" {
			return
		}
		flagStored = name
	}

	game := newGame(gameOptions(&cfg, store))

	settings := tui.Settings{
		Runtime:   runtimeConfig(width, height),
		HoldTicks: cfg.Input.HoldTicks,
	}
	// Log lines would tear the full-screen view, so only a file gets them.
	if flagLogFile != "" {
		settings.Logger = logger
	}

	if err := tui.Run(game, settings); err != nil {
		fail("running game: %v", err)
	}
}
