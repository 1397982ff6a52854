package main

import (
	"log/slog"
	"os"

	"github.com/lite-lake/subdomaind/internal/infrastructure/logger"
	"github.com/lite-lake/subdomaind/internal/interfaces/cli"
)

func main() {
	logLevel := slog.LevelInfo
	if os.Getenv("SUBDOMAIND_DEBUG") != "" {
		logLevel = slog.LevelDebug
	}

	logFormat := os.Getenv("SUBDOMAIND_LOG_FORMAT")

	logger.Init(&logger.Config{
		Level:     logLevel,
		Format:    logFormat,
		AddSource: os.Getenv("SUBDOMAIND_DEBUG") != "",
	})

	cli.Execute()
}
