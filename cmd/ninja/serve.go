package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ninja/internal/games/ninja"
	"github.com/vovakirdan/ninja/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection runs its own game with its own seed. Stored maps come
from the shared database given by --db.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.ninja/host_key

Examples:
  ninja serve                           # Listen on :23234 with auto-generated key
  ninja serve --ssh :2222               # Listen on port 2222
  ninja serve --stored cliffs           # Every session plays a stored map
  ninja serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	addMapFlags(serveCmd)
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	srvCfg := tui.DefaultSSHServerConfig()
	srvCfg.Address = flagSSHAddr
	srvCfg.HostKeyPath = flagHostKey
	srvCfg.DBPath = flagDBPath
	srvCfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	srvCfg.GameID = ninja.ID
	srvCfg.TickRate = flagFPS
	srvCfg.HoldTicks = cfg.Input.HoldTicks
	srvCfg.Options = gameOptions(&cfg, nil)

	server, err := tui.NewSSHServer(srvCfg, logger)
	if err != nil {
		fail("creating server: %v", err)
	}

	fmt.Printf("Starting ninja SSH server on %s\n", srvCfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fail("server: %v", err)
	}
}
