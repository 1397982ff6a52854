package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lite-lake/subdomaind/internal/domain/entity"
	"github.com/lite-lake/subdomaind/internal/infrastructure/logger"
	"github.com/lite-lake/subdomaind/internal/infrastructure/persistence"
)

var (
	ConfigPath  string
	ShowVersion bool
)

var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "subdomaind",
	Short: "Subdomain provisioning service",
	Long:  "Subdomaind issues secret-protected subdomains and attaches private DNS records to them.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if ShowVersion {
			fmt.Println(Version)
			os.Exit(0)
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&ConfigPath, "config", "c", persistence.DefaultConfigFile, "Configuration file")
	rootCmd.PersistentFlags().BoolVarP(&ShowVersion, "version", "v", false, "Show version information")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig(ctx context.Context) (*entity.Config, error) {
	return persistence.NewConfigLoader(ConfigPath).LoadAndValidate(ctx)
}

// configureLogging applies the log section of cfg unless SUBDOMAIND_DEBUG
// already forced debug output at startup.
func configureLogging(cfg *entity.Config) {
	if os.Getenv("SUBDOMAIND_DEBUG") != "" {
		return
	}
	level, err := logger.ParseLevel(cfg.Log.Level)
	if err != nil {
		logger.Warn("ignoring log level", "error", err)
	}
	logger.SetDefault(logger.New(&logger.Config{
		Level:  level,
		Format: cfg.Log.Format,
	}))
}

func exitOnError(msg string, err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", msg, err)
		os.Exit(1)
	}
}
