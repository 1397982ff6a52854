package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the configuration file",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		_, err := loadConfig(cmd.Context())
		exitOnError("Validation error", err)
		fmt.Println("Configuration is valid.")
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
