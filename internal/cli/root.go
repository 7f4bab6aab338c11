package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Jonahss/appium-ios-driver/internal/process"
	"github.com/spf13/cobra"
)

var (
	verbose   bool
	logLevel  string
	logFormat string
	rootCmd   *cobra.Command
)

func init() {
	rootCmd = &cobra.Command{
		Use:   "iosresolve",
		Short: "Resolve iOS test-session capabilities to a concrete device target",
		Long: `iosresolve turns a loosely-specified capability set (device name, platform
version, overrides) into an exact simulator device string and udid.

Common workflows:
  iosresolve resolve --caps caps.json   Resolve a session target
  iosresolve devices list               Show the instruments device inventory
  iosresolve udid detect                Probe for an attached device udid
  iosresolve cleanup                    Stop leftover simulator daemons`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			process.SetGlobalVerbose(verbose)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show underlying commands")
	rootCmd.PersistentFlags().StringVar(&logLevel, "loglevel", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "logformat", "text", "Log format (text, json)")
}

func Execute(ctx context.Context, version string) error {
	rootCmd.Version = version

	rootCmd.AddCommand(resolveCmd())
	rootCmd.AddCommand(devicesCmd())
	rootCmd.AddCommand(udidCmd())
	rootCmd.AddCommand(cleanupCmd())

	return rootCmd.ExecuteContext(ctx)
}

// newLogger builds the slog logger selected by the root flags.
func newLogger() (*slog.Logger, error) {
	var level slog.Level
	switch logLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return nil, fmt.Errorf("invalid log level: %s", logLevel)
	}

	var handler slog.Handler
	switch logFormat {
	case "json":
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	case "text":
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	default:
		return nil, fmt.Errorf("invalid log format: %s", logFormat)
	}

	return slog.New(handler), nil
}

// driverRoot is where bundled fallback tools live: next to the executable.
func driverRoot() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}
