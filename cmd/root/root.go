// Package root contains the root command for the application
package root

import (
	"strings"

	"pfgen/internal/config"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cfg is the application configuration, loaded before any command runs
	Cfg *config.Config

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "pfgen",
		Short: "Generate the PF1-PF6 punchout provisioning tables from an account roster.",
		Long: `pfgen reads an account roster (CSV or Excel) and generates the PF1-PF6
tables used to provision B2B punchout accounts in the downstream catalogue
system. It also produces the empty roster template and can validate a
roster without generating anything.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to pfgen!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()
			Log = config.ConfigureLogging()

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Error loading configuration: %v", err)
			}
			Cfg = cfg

			// Flags override config file and environment.
			if logLevel == "" {
				logLevel = cfg.Log.Level
			}
			if level, err := logrus.ParseLevel(logLevel); err == nil {
				Log.SetLevel(level)
			} else {
				Log.Warnf("Invalid log level '%s', using 'info'", logLevel)
			}

			if logFormat == "" {
				logFormat = cfg.Log.Format
			}
			if strings.EqualFold(logFormat, "json") {
				Log.SetFormatter(&logrus.JSONFormatter{})
			}
		},
	}

	logLevel  string
	logFormat string
)

// Init initializes the root command flags
func Init() {
	Cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	Cmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format (text, json)")
}
