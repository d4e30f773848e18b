// ABOUTME: Root Cobra command for ironlog CLI.
// ABOUTME: Opens the record store around each command via PersistentPre/PostRunE.
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/harperreed/ironlog/internal/config"
	"github.com/harperreed/ironlog/internal/storage"
	"github.com/spf13/cobra"
)

var (
	cfg     *config.Config
	repo    *storage.DB
	dataDir string
)

var rootCmd = &cobra.Command{
	Use:   "ironlog",
	Short: "Resistance-training log and progress tracker",
	Long: `IronLog tracks resistance-training sessions and turns the history
into progress analytics.

QUICK START:

  $ ironlog catalog add "Kettlebell Swing" --category swing
  $ ironlog workout new "Monday A" --template        # Plan a template
  $ ironlog workout add-exercise <workout> <type> --sets 3 --reps 10 --weight 16
  $ ironlog session start <workout>                  # Begin executing
  $ ironlog session set 10 16                        # Log a set, rest runs
  $ ironlog session finish                           # Finalize the workout

PROGRESS:

  $ ironlog stats              # Dashboard: totals, streak, records, weeks
  $ ironlog records            # Personal records
  $ ironlog streak             # Current consecutive-day streak
  $ ironlog plateau            # Plateau check on weekly volume
  $ ironlog orm 80 5           # One-rep-max estimate (Brzycki)

Sessions survive interruption: every set completion and a 30-second
autosave write a snapshot, and the next session command resumes from it.

MCP INTEGRATION:

  Run 'ironlog mcp' to start the Model Context Protocol server for use
  with MCP-compatible AI assistants.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip store setup for commands that don't need it
		if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "timer" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if dataDir != "" {
			cfg.DataDir = dataDir
		}

		repo, err = cfg.OpenStorage()
		if err != nil {
			return fmt.Errorf("failed to open store: %w", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if repo != nil {
			return repo.Close()
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "override the data directory")
}

// parseTime accepts the handful of timestamp shapes users actually type.
func parseTime(s string) (time.Time, error) {
	formats := []string{
		time.RFC3339,
		"2006-01-02T15:04",
		"2006-01-02 15:04",
		"2006-01-02",
	}
	for _, f := range formats {
		if t, err := time.ParseInLocation(f, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time: %q", s)
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func shortID(id fmt.Stringer) string {
	return id.String()[:8]
}
