package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/usuarios-api/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a configuration file with an interactive wizard",
	Long:  `Runs an interactive wizard and writes the answers to the --config path (default .usuarios.yml).`,
	Run: func(cmd *cobra.Command, args []string) {
		_, err := config.RunWizard(cfgFile)
		exitOnError(err)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
