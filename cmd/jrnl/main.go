package main

import (
	"os"

	jrnlcmd "github.com/tasleson/sdjournal/internal/cmd/jrnl"
	logpkg "github.com/tasleson/sdjournal/pkg/log"
)

func main() {
	// Respect SDJOURNAL_LOG_LEVEL/FORMAT for CLI output before config
	// resolution kicks in.
	level, err := logpkg.ParseLevel(os.Getenv("SDJOURNAL_LOG_LEVEL"))
	if err != nil {
		level = logpkg.InfoLevel
	}
	format := os.Getenv("SDJOURNAL_LOG_FORMAT")
	if format == "" {
		format = "text"
	}
	logger := logpkg.NewLogger(
		logpkg.WithLevel(level),
		logpkg.WithFormat(format),
	)

	rootCmd := jrnlcmd.New(logger)
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}
