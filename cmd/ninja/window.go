package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/ninja/internal/platform/desktop"
)

var flagScale int

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open the game in a native window. Key releases are real here, so
movement stops the moment a direction key is let go.

Examples:
  ninja window
  ninja window --scale 3
  ninja window --map ./level.json`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	addMapFlags(windowCmd)
	windowCmd.Flags().IntVar(&flagScale, "scale", 0, "Window pixels per game pixel (0 = display.scale from config)")
}

func runWindow(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	store := openStore(flagStored != "")
	if store != nil {
		defer store.Close()
	}

	game := newGame(gameOptions(&cfg, store))

	scale := flagScale
	if scale <= 0 {
		scale = cfg.Display.Scale
	}
	w, h := game.Resolution()
	settings := desktop.Settings{
		Runtime: runtimeConfig(w, h),
		Scale:   scale,
		Logger:  logger,
	}
	if err := desktop.Run(game, settings); err != nil {
		fail("running game: %v", err)
	}
}
