package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/usuarios-api/internal/config"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "usuarios",
	Short: "Minimal users CRUD API",
	Long: `usuarios serves a small JSON API over an ordered, process-local
collection of user records, plus the /hola and /saludo greeting
endpoints. The same collection can be exposed to AI agents over MCP.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultConfigFile, "config file path")
}

func exitOnError(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
