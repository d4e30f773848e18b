// ABOUTME: Goal commands: set per-exercise targets and check them against records.
// ABOUTME: Achievement is evaluated on demand from personal record history.
package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/harperreed/ironlog/internal/analytics"
	"github.com/harperreed/ironlog/internal/models"
	"github.com/spf13/cobra"
)

var goalCmd = &cobra.Command{
	Use:   "goal",
	Short: "Manage training goals",
}

var goalAddCmd = &cobra.Command{
	Use:   "add <exercise-type-id> <metric> <target>",
	Short: "Set a goal for an exercise (metric: weight, reps, or volume)",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		deadlineStr, _ := cmd.Flags().GetString("deadline")

		et, err := findExerciseType(args[0])
		if err != nil {
			return err
		}
		if !models.IsValidGoalMetric(args[1]) {
			return fmt.Errorf("invalid metric %q (valid: weight, reps, volume)", args[1])
		}
		target, err := strconv.ParseFloat(args[2], 64)
		if err != nil || target <= 0 {
			return fmt.Errorf("target must be a positive number: %q", args[2])
		}

		g := models.NewGoal(cfg.GetOwnerID(), et.ID, models.GoalMetric(args[1]), target)
		if deadlineStr != "" {
			t, err := parseTime(deadlineStr)
			if err != nil {
				return err
			}
			g.WithDeadline(t)
		}

		if err := repo.CreateGoal(g); err != nil {
			return fmt.Errorf("failed to create goal: %w", err)
		}

		color.Green("✓ Goal set: %s %s %.1f [%s]", et.Name, g.Metric, g.TargetValue, shortID(g.ID))
		return nil
	},
}

var goalListCmd = &cobra.Command{
	Use:   "list",
	Short: "List goals with current progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		goals, err := repo.ListGoals(cfg.GetOwnerID())
		if err != nil {
			return fmt.Errorf("failed to list goals: %w", err)
		}
		if len(goals) == 0 {
			fmt.Println("No goals. Add one with 'ironlog goal add'.")
			return nil
		}

		workouts, catalog, err := loadHistory()
		if err != nil {
			return err
		}

		bold := color.New(color.Bold)
		bold.Printf("%s %s %s %s %s\n",
			padRight("ID", 10), padRight("EXERCISE", 24), padRight("METRIC", 8), padRight("TARGET", 8), "PROGRESS")
		for _, g := range goals {
			name := g.ExerciseTypeID.String()[:8]
			if et, ok := catalog[g.ExerciseTypeID]; ok {
				name = et.Name
			}

			current := bestForMetric(workouts, catalog, g)
			progress := fmt.Sprintf("%.1f", current)
			if current >= g.TargetValue {
				progress = color.GreenString("%.1f ✓", current)
			}
			fmt.Printf("%s %s %s %s %s\n",
				padRight(shortID(g.ID), 10),
				padRight(name, 24),
				padRight(string(g.Metric), 8),
				padRight(fmt.Sprintf("%.1f", g.TargetValue), 8),
				progress)
		}
		return nil
	},
}

var goalDoneCmd = &cobra.Command{
	Use:   "done <id>",
	Short: "Mark a goal as achieved",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := findGoal(args[0])
		if err != nil {
			return err
		}

		g.Achieved = true
		if err := repo.UpdateGoal(g); err != nil {
			return fmt.Errorf("failed to update goal: %w", err)
		}

		color.Green("✓ Goal achieved")
		return nil
	},
}

var goalDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a goal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := findGoal(args[0])
		if err != nil {
			return err
		}

		if err := repo.DeleteGoal(g.ID); err != nil {
			return fmt.Errorf("failed to delete goal: %w", err)
		}

		color.Green("✓ Deleted goal")
		return nil
	},
}

// bestForMetric maps a goal's metric onto the matching record kind and
// returns the best value achieved so far.
func bestForMetric(workouts []*models.Workout, catalog analytics.Catalog, g *models.Goal) float64 {
	var kind models.RecordKind
	switch g.Metric {
	case models.GoalWeight:
		kind = models.RecordMaxWeight
	case models.GoalReps:
		kind = models.RecordMaxReps
	case models.GoalVolume:
		kind = models.RecordMaxVolume
	default:
		return 0
	}

	for _, r := range analytics.RecordsForExercise(workouts, catalog, g.ExerciseTypeID) {
		if r.Kind == kind {
			return r.Value
		}
	}
	return 0
}

// findGoal resolves a full UUID or a unique ID prefix.
func findGoal(ref string) (*models.Goal, error) {
	goals, err := repo.ListGoals(cfg.GetOwnerID())
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}

	if id, err := uuid.Parse(ref); err == nil {
		for _, g := range goals {
			if g.ID == id {
				return g, nil
			}
		}
		return nil, fmt.Errorf("no goal with id %s", ref)
	}

	var match *models.Goal
	for _, g := range goals {
		if strings.HasPrefix(g.ID.String(), ref) {
			if match != nil {
				return nil, fmt.Errorf("ambiguous goal id prefix: %s", ref)
			}
			match = g
		}
	}
	if match == nil {
		return nil, fmt.Errorf("no goal matching %q", ref)
	}
	return match, nil
}

func init() {
	goalAddCmd.Flags().String("deadline", "", "target date")

	goalCmd.AddCommand(goalAddCmd)
	goalCmd.AddCommand(goalListCmd)
	goalCmd.AddCommand(goalDoneCmd)
	goalCmd.AddCommand(goalDeleteCmd)
	rootCmd.AddCommand(goalCmd)
}
