package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/octobees/product-advisor/internal/config"
)

const version = "0.1.0"

// Reconnect policy shared by the long-lived front-ends.
const (
	connectAttempts = 3
	connectDelay    = 2 * time.Second
)

var rootCmd = &cobra.Command{
	Use:   "advisor",
	Short: "Product recommendation relay",
	Long: `advisor searches product listings for a query and price range, then asks a
language model to pick the single best match.

The pipeline is hosted as an MCP tool (serve); the other subcommands are thin
clients that spawn the server over stdio and call the tool.`,
	SilenceUsage: true,
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// serverCommand resolves the argv used to spawn the MCP server: an explicit
// override from the environment, or this binary's own serve subcommand.
func serverCommand(cfg *config.Config) ([]string, error) {
	if len(cfg.ServerCommand) > 0 {
		return cfg.ServerCommand, nil
	}
	self, err := os.Executable()
	if err != nil {
		return nil, err
	}
	return []string{self, "serve"}, nil
}
