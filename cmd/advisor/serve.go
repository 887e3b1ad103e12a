package main

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/octobees/product-advisor/internal/advisor"
	"github.com/octobees/product-advisor/internal/config"
	"github.com/octobees/product-advisor/internal/recommend"
	"github.com/octobees/product-advisor/internal/search"
	"github.com/octobees/product-advisor/internal/toolserver"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the MCP recommendation server on stdio",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if err := cfg.RequireSearchCredentials(); err != nil {
			return err
		}
		if err := cfg.RequireCompletionCredentials(); err != nil {
			return err
		}

		pipeline := advisor.New(search.NewClient(nil, cfg), recommend.NewRequester(cfg))
		s := toolserver.New(pipeline, version)

		// log goes to stderr; stdout belongs to the MCP transport.
		log.Printf("server=%s version=%s tool=%s transport=stdio", toolserver.ServerName, version, toolserver.ToolName)
		return toolserver.ServeStdio(s)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
