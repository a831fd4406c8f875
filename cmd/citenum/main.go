// Package main provides the citenum binary entry point.
// Citenum reports whether bibliographic field values hold numeric content,
// the way the CSL is-numeric condition decides it.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/c360studio/citenum/config"
	"github.com/c360studio/citenum/numeric"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "citenum"
)

func main() {
	// Add panic recovery
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// app holds state shared by subcommands. It is populated by setup before
// any subcommand runs.
type app struct {
	configPath string
	logLevel   string
	roman      string

	logger     *slog.Logger
	cfg        *config.Config
	registry   *prometheus.Registry
	classifier *numeric.Instrumented
}

func rootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Classify bibliographic values as numeric or literal",
		Long: `Citenum decides whether bibliographic field values hold numeric content
as the CSL is-numeric condition does.

A value is numeric if it is:
- a plain number (42, -3.5)
- an ordinal valid in the active locale (2nd, 1er, 3º)
- a Roman numeral (IV, xii)
- a list or range of numbers (1-5, 2, 4 & 6, A1-A9)`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.writeMetrics()
		},
	}

	cmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Config file path (YAML)")
	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&a.roman, "roman", "", "Roman numeral mode (lenient, strict)")

	cmd.AddCommand(
		classifyCmd(a),
		scanCmd(a),
		watchCmd(a),
		localesCmd(),
		versionCmd(),
	)

	return cmd
}

// setup configures logging, loads configuration and builds the instrumented
// classifier.
func (a *app) setup(cmd *cobra.Command) error {
	a.logger = newLogger(cmd.ErrOrStderr(), a.logLevel)
	slog.SetDefault(a.logger)

	cfg, err := config.NewLoader(a.logger).Load(a.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Flags override file configuration
	if a.roman != "" {
		cfg.Roman.Mode = a.roman
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}
	}

	classifier, err := cfg.Classifier()
	if err != nil {
		return fmt.Errorf("build classifier: %w", err)
	}

	a.cfg = cfg
	a.registry = prometheus.NewRegistry()
	a.classifier = numeric.Instrument(classifier, numeric.NewMetrics(a.registry))

	a.logger.Debug("Classifier ready",
		"locale", cfg.Locale.Default,
		"roman", classifier.RomanMode())
	return nil
}

// writeMetrics writes classification counters to the configured textfile.
func (a *app) writeMetrics() error {
	if a.cfg == nil || a.registry == nil || a.cfg.Metrics.Textfile == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(a.cfg.Metrics.Textfile, a.registry); err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}
	a.logger.Debug("Wrote metrics", "path", a.cfg.Metrics.Textfile)
	return nil
}

func newLogger(w io.Writer, logLevel string) *slog.Logger {
	level := slog.LevelInfo
	switch strings.ToLower(logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		// Version needs no configuration
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	}
}
