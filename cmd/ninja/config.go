package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ninja/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would run with, as YAML, and where it
came from. Redirect the output to ~/.ninja/configs/ninja.yaml to start a
custom config.

Search order:
  --config path
  ~/.ninja/configs/ninja.yaml
  ./configs/ninja.yaml
  built-in defaults`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(_ *cobra.Command, _ []string) {
	cfg, source, err := config.LoadNinjaFrom(flagConfig)
	if err != nil {
		fail("%v", err)
	}
	data, err := cfg.Marshal()
	if err != nil {
		fail("%v", err)
	}
	fmt.Printf("# source: %s\n", source)
	fmt.Print(string(data))
}
