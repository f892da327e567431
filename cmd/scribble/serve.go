package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-scribble/internal/platform/tui"
	"github.com/vovakirdan/tui-scribble/internal/storage"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the scribble SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each connection gets its own game. Sessions and the high score are stored
per-server (all users share the same high score).

Examples:
  scribble serve                           # Listen on :23235 with auto-generated key
  scribble serve --ssh :2222               # Listen on port 2222
  scribble serve --host-key ./my_host_key  # Use specific host key

Connect with:
  ssh localhost -p 23235`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23235", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().BoolVar(&flagOffline, "offline", false, "Use the embedded words and offline reference shapes")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger := newStderrLogger("scribble-ssh")

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open sessions database", "error", err)
		// Continue without storage
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	deps, err := buildDeps(context.Background(), cfg, store, logger, flagOffline)
	if err != nil {
		return err
	}

	serverCfg := tui.DefaultSSHServerConfig()
	serverCfg.Address = flagSSHAddr
	serverCfg.HostKeyPath = flagHostKey
	serverCfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute

	server, err := tui.NewSSHServer(serverCfg, deps)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	fmt.Printf("Starting scribble SSH server on %s\n", server.Addr())
	return server.ListenAndServe()
}
