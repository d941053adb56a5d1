package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/michelv/squish/internal/platform/tui"
)

var (
	flagSSHAddr      string
	flagHostKey      string
	flagServeEndless bool
	flagIdleTimeout  time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run an SSH server so others can play remotely",
	Long: `Start an SSH server that serves the game to connecting clients.

Players connect with a plain SSH client:
  ssh -p 23234 localhost

Each session gets its own simulation sized to the client's terminal.
Scores from remote sessions are saved to the shared database.

Examples:
  squish serve
  squish serve --ssh :2222
  squish serve --endless
  squish serve --host-key /etc/squish/host_key`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	defaults := tui.DefaultSSHServerConfig()
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", defaults.Address, "Address to listen on")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to the SSH host key (auto-generated if empty)")
	serveCmd.Flags().BoolVar(&flagServeEndless, "endless", false, "Serve endless mode instead of the campaign")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", defaults.IdleTimeout, "Disconnect idle sessions after this duration")
}

func runServe(cmd *cobra.Command, args []string) {
	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = flagDBPath
	cfg.IdleTimeout = flagIdleTimeout
	if flagServeEndless {
		cfg.GameID = "squish_endless"
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating SSH server: %v\n", err)
		os.Exit(1)
	}

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running SSH server: %v\n", err)
		os.Exit(1)
	}
}
