package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	mcpserver "github.com/ziadkadry99/usuarios-api/internal/mcp"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server for AI agent integration",
	Long: `Starts a Model Context Protocol (MCP) server on stdio exposing the user
collection as tools. The collection lives in this process and is separate from
any running HTTP server.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		store, closeStore, err := openStore(context.Background(), cfg)
		if err != nil {
			return err
		}
		defer closeStore()

		mcpserver.Version = Version

		fmt.Fprintf(os.Stderr, "usuarios MCP server started on stdio (storage=%s)\n", cfg.Storage)

		srv := mcpserver.NewServer(store)
		return srv.Serve()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
