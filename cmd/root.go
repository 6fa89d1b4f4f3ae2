package cmd

import (
	"fmt"
	"os"

	"demo-server/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Version is reported by --version and GET /api/health.
var Version = "1.2.0"

// RootCmd represents the base command when called without any subcommands.
// Without a subcommand it starts the server.
var RootCmd = &cobra.Command{
	Use:   "demo-server",
	Short: "Static file server for the bus tracker demo",
	Long: `demo-server serves the demo web application from its own directory on
http://localhost:8080, opens the landing page in the default browser and
runs until interrupted.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
	RunE:          runStart,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Use the application's standard logger for error reporting
		// We default to console format to match user expectations (CLI tool)
		// We use "debug" level configuration to get ISO8601 timestamps (DevConfig) instead of Epoch (ProdConfig)
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
			Output: "stderr",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			// Absolute fallback if logger creation fails (rare)
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
