package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/lite-lake/subdomaind/internal/infrastructure/logger"
)

var serveAutoMigrate bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the provisioning HTTP server",
	Long:  "Serve the provisioning endpoint, health checks and metrics until interrupted.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		exitOnError("Error", runServe(cmd.Context()))
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().BoolVar(&serveAutoMigrate, "auto-migrate", false, "Create the datastore schema before serving")
}

func runServe(ctx context.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	configureLogging(cfg)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := bootstrap(ctx, cfg, os.LookupEnv, serveAutoMigrate)
	if err != nil {
		return err
	}
	defer func() {
		if err := a.Close(); err != nil {
			logger.Warn("close datastore", "error", err)
		}
	}()

	logger.Info("starting",
		"version", Version,
		"dns_provider", a.dns.Name(),
		"identity_provider", a.identity.Name(),
	)
	if err := a.server.Start(); err != nil {
		return err
	}

	<-ctx.Done()
	logger.Info("shutting down")
	return a.server.Shutdown(context.Background())
}
