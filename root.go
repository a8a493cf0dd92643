package main

import (
	"log/slog"
	"notes-api/config"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var (
	verbose bool

	cfg    *config.Config
	logger *slog.Logger
)

// rootCmd serves the API when called without a subcommand
var rootCmd = &cobra.Command{
	Use:   "notes-api",
	Short: "HTTP API for notes stored in a Turso (libSQL) database",
	Long: `notes-api exposes list, create and get-by-id over a single notes table.
The database is selected with TURSO_DATABASE_URL and TURSO_AUTH_TOKEN.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg = config.Load()
		logger = setupLogger(cfg, verbose)
		slog.SetDefault(logger)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return serveCmd.RunE(cmd, args)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

func setupLogger(cfg *config.Config, verbose bool) *slog.Logger {
	var handler slog.Handler

	level := parseLogLevel(cfg.LogLevel)
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: cfg.Env == "development",
	}

	if cfg.IsProduction() {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
