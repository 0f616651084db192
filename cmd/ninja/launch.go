package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ninja/internal/config"
	"github.com/vovakirdan/ninja/internal/core"
	"github.com/vovakirdan/ninja/internal/games/ninja"
	"github.com/vovakirdan/ninja/internal/registry"
	"github.com/vovakirdan/ninja/internal/storage"
)

// Map selection flags shared by play, window and serve.
var (
	flagMap    string
	flagStored string
)

func addMapFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagMap, "map", "", "Map file to play (.json, .yaml)")
	cmd.Flags().StringVar(&flagStored, "stored", "", "Name of a map in the database")
	cmd.MarkFlagsMutuallyExclusive("map", "stored")
}

// fail prints an error and exits, as every command does on startup errors.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// loadConfig resolves the configuration through the search path.
func loadConfig() config.NinjaConfig {
	cfg, source, err := config.LoadNinjaFrom(flagConfig)
	if err != nil {
		fail("%v", err)
	}
	logger.Debug("config loaded", "source", source)
	return cfg
}

// openStore opens the map database. Failures are warnings unless the store
// is required.
func openStore(required bool) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		if required {
			fail("could not open map database: %v", err)
		}
		logger.Warn("could not open map database", "error", err)
		return nil
	}
	return store
}

// gameOptions builds registry options for the selected map.
func gameOptions(cfg *config.NinjaConfig, store *storage.Store) registry.Options {
	opts := registry.Options{
		Config:    cfg,
		MapPath:   flagMap,
		StoredMap: flagStored,
		Logger:    logger,
	}
	if store != nil {
		opts.Maps = store
	}
	return opts
}

// newGame creates the game and loads its world so broken maps fail before
// the screen is taken over.
func newGame(opts registry.Options) *ninja.Game {
	game := ninja.New(opts)
	if err := game.Load(); err != nil {
		fail("%v", err)
	}
	return game
}

func runtimeConfig(width, height int) core.RuntimeConfig {
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seed,
	}
}
