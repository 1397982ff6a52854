package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the datastore schema",
	Long:  "Open the configured datastore and create the subdomains table if it does not exist.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		exitOnError("Error", runMigrate(cmd.Context()))
		fmt.Println("Datastore schema is up to date.")
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(ctx context.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	configureLogging(cfg)

	st, err := openStore(ctx, cfg, os.LookupEnv, true)
	if err != nil {
		return err
	}
	return st.Close()
}
