// ninja runs a tile-map platformer in the terminal, in a desktop window or
// over SSH.
//
// Usage:
//
//	ninja play               - Play in the terminal
//	ninja window             - Play in a desktop window
//	ninja serve              - Start SSH server for remote play
//	ninja maps <command>     - Manage stored maps
//	ninja config             - Print the effective configuration
//	ninja list               - List available games
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set map database path (default: ~/.ninja/maps.db)
//	--config <path>     - Use a specific config file
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/ninja/internal/games/ninja"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagLogFile  string

	logger  *log.Logger
	logSink *os.File
)

func main() {
	err := rootCmd.Execute()
	if logSink != nil {
		logSink.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ninja",
	Short: "Ninja - a tile-map platformer",
	Long: `Ninja is a small platformer: run, double jump, wall slide and dash
through a tile map under drifting clouds and falling leaves.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  maps     - Import, export and autotile maps
  config   - Print the effective configuration
  list     - Show all available games

Examples:
  ninja play
  ninja play --map ./level.json
  ninja window --scale 3
  ninja serve --ssh :2222
  ninja maps import ./level.json --name cliffs`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogger,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.ninja/maps.db", "Path to map database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to a file instead of stderr")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(mapsCmd)
	rootCmd.AddCommand(configCmd)
}

func setupLogger(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}

	out := os.Stderr
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		logSink = f
		out = f
	}

	logger = log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Prefix:          "ninja",
		Level:           level,
	})
	return nil
}
