package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/c360studio/citenum/source"
)

func watchCmd(a *app) *cobra.Command {
	var (
		variables  []string
		match      string
		locale     string
		outputJSON bool
	)

	cmd := &cobra.Command{
		Use:   "watch <dir>",
		Short: "Re-scan CSL-JSON files as they change",
		Long: `Watch a directory tree and re-scan bibliography files whenever their
content changes. Runs until interrupted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := args[0]
			info, err := os.Stat(root)
			if err != nil {
				return fmt.Errorf("stat watch root: %w", err)
			}
			if !info.IsDir() {
				return fmt.Errorf("not a directory: %s", root)
			}

			scanner, err := a.newScanner(cmd, variables, match)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return a.watch(ctx, cmd, root, scanner, locale, outputJSON)
		},
	}

	cmd.Flags().StringSliceVar(&variables, "variables", nil, "CSL variables to inspect (default from config, else all number variables)")
	cmd.Flags().StringVar(&match, "match", "", "Combine variables with all, any or none (default from config)")
	cmd.Flags().StringVar(&locale, "locale", "", "Locale for ordinals (default: each item's language)")
	cmd.Flags().BoolVar(&outputJSON, "json", false, "Output results as JSON")

	return cmd
}

// watch re-scans files reported by the watcher until ctx is cancelled.
func (a *app) watch(ctx context.Context, cmd *cobra.Command, root string, scanner *source.Scanner, locale string, outputJSON bool) error {
	watcher, err := source.NewWatcher(a.cfg.Watch, root, a.logger)
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() {
		if err := watcher.Stop(); err != nil {
			a.logger.Warn("Failed to stop watcher", "error", err)
		}
	}()

	if err := watcher.Start(ctx); err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			a.logger.Info("Watcher stopped", "dropped_events", watcher.DroppedEvents())
			return nil

		case event, ok := <-watcher.Events():
			if !ok {
				return nil
			}
			if event.Operation == source.WatchOpDelete {
				a.logger.Info("Bibliography removed", "path", event.Path)
				continue
			}

			reports, err := scanner.ScanFile(event.AbsPath, locale)
			if err != nil {
				a.logger.Warn("Failed to scan file", "path", event.Path, "error", err)
				continue
			}
			a.logger.Info("Bibliography rescanned",
				"path", event.Path,
				"op", event.Operation,
				"items", len(reports))

			if err := writeReports(cmd.OutOrStdout(), reports, outputJSON); err != nil {
				return err
			}
			if err := a.writeMetrics(); err != nil {
				a.logger.Warn("Failed to write metrics", "error", err)
			}
		}
	}
}
