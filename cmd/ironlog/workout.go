// ABOUTME: Workout commands: plan templates, list history, show and delete records.
// ABOUTME: Templates are blueprints; sessions are the dated instances executed from them.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/harperreed/ironlog/internal/models"
	"github.com/harperreed/ironlog/internal/storage"
	"github.com/spf13/cobra"
)

var workoutCmd = &cobra.Command{
	Use:   "workout",
	Short: "Plan and browse workouts",
}

var workoutNewCmd = &cobra.Command{
	Use:   "new <name>",
	Short: "Create a workout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		isTemplate, _ := cmd.Flags().GetBool("template")
		notes, _ := cmd.Flags().GetString("notes")
		dateStr, _ := cmd.Flags().GetString("date")

		w := models.NewWorkout(cfg.GetOwnerID(), args[0])
		if isTemplate {
			w.AsTemplate()
		}
		if notes != "" {
			w.WithNotes(notes)
		}
		if dateStr != "" {
			t, err := parseTime(dateStr)
			if err != nil {
				return err
			}
			w.WithDate(t)
		}

		if err := repo.PutWorkout(w); err != nil {
			return fmt.Errorf("failed to create workout: %w", err)
		}

		kind := "workout"
		if isTemplate {
			kind = "template"
		}
		color.Green("✓ Created %s %q [%s]", kind, w.Name, shortID(w.ID))
		return nil
	},
}

var workoutAddExerciseCmd = &cobra.Command{
	Use:   "add-exercise <workout-id> <exercise-type-id>",
	Short: "Append an exercise with planned sets to a workout",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		sets, _ := cmd.Flags().GetInt("sets")
		reps, _ := cmd.Flags().GetInt("reps")
		weight, _ := cmd.Flags().GetFloat64("weight")
		rest, _ := cmd.Flags().GetInt("rest")

		if sets <= 0 {
			return fmt.Errorf("sets must be positive")
		}
		if reps <= 0 {
			return fmt.Errorf("reps must be positive")
		}
		if weight < 0 {
			return fmt.Errorf("weight must not be negative")
		}
		if rest < 0 {
			return fmt.Errorf("rest must not be negative")
		}

		w, err := findWorkout(args[0])
		if err != nil {
			return err
		}
		if w.IsCompleted() {
			return fmt.Errorf("workout %q is already completed", w.Name)
		}
		et, err := findExerciseType(args[1])
		if err != nil {
			return err
		}

		ex := models.NewExercise(et.ID, len(w.Exercises))
		for i := 0; i < sets; i++ {
			ex.WithSets(*models.NewSet(reps, weight, rest, i))
		}
		w.WithExercises(*ex)

		if err := repo.PutWorkout(w); err != nil {
			return fmt.Errorf("failed to save workout: %w", err)
		}

		color.Green("✓ Added %s: %d×%d @ %.1f (rest %ds)", et.Name, sets, reps, weight, rest)
		return nil
	},
}

var workoutListCmd = &cobra.Command{
	Use:   "list",
	Short: "List workouts",
	RunE: func(cmd *cobra.Command, args []string) error {
		templatesOnly, _ := cmd.Flags().GetBool("templates")
		limit, _ := cmd.Flags().GetInt("limit")
		fromStr, _ := cmd.Flags().GetString("from")
		toStr, _ := cmd.Flags().GetString("to")

		opts := storage.ListOptions{Limit: limit}
		if cmd.Flags().Changed("templates") {
			opts.Templates = &templatesOnly
		}
		if fromStr != "" {
			t, err := parseTime(fromStr)
			if err != nil {
				return err
			}
			opts.From = &t
		}
		if toStr != "" {
			t, err := parseTime(toStr)
			if err != nil {
				return err
			}
			opts.To = &t
		}

		workouts, err := repo.ListWorkouts(cfg.GetOwnerID(), opts)
		if err != nil {
			return fmt.Errorf("failed to list workouts: %w", err)
		}
		if len(workouts) == 0 {
			fmt.Println("No workouts found.")
			return nil
		}

		bold := color.New(color.Bold)
		bold.Printf("%s %s %s %s\n", padRight("ID", 10), padRight("DATE", 12), padRight("NAME", 24), "STATUS")
		for _, w := range workouts {
			fmt.Printf("%s %s %s %s\n",
				padRight(shortID(w.ID), 10),
				padRight(w.Date.Format("2006-01-02"), 12),
				padRight(w.Name, 24),
				workoutStatus(w))
		}
		return nil
	},
}

var workoutShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a workout with its exercises and sets",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := findWorkout(args[0])
		if err != nil {
			return err
		}

		types, err := repo.ListExerciseTypes()
		if err != nil {
			return fmt.Errorf("failed to list exercise types: %w", err)
		}
		names := make(map[uuid.UUID]string, len(types))
		for _, et := range types {
			names[et.ID] = et.Name
		}

		bold := color.New(color.Bold)
		bold.Printf("%s (%s)\n", w.Name, workoutStatus(w))
		fmt.Printf("  ID:   %s\n", w.ID)
		fmt.Printf("  Date: %s\n", w.Date.Format("2006-01-02 15:04"))
		if w.DurationMinutes != nil {
			fmt.Printf("  Duration: %d min\n", *w.DurationMinutes)
		}
		if w.Notes != "" {
			fmt.Printf("  Notes: %s\n", w.Notes)
		}

		for _, ex := range w.Exercises {
			name := names[ex.ExerciseTypeID]
			if name == "" {
				name = ex.ExerciseTypeID.String()
			}
			fmt.Printf("\n  %s\n", name)
			for _, s := range ex.Sets {
				line := fmt.Sprintf("    set %d: target %d @ %.1f", s.OrderIndex+1, s.TargetReps, s.TargetWeight)
				if s.Completed && s.ActualReps != nil && s.ActualWeight != nil {
					line += fmt.Sprintf("  → did %d @ %.1f", *s.ActualReps, *s.ActualWeight)
				}
				fmt.Println(line)
			}
		}
		return nil
	},
}

var workoutDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a workout and all its exercises and sets",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := findWorkout(args[0])
		if err != nil {
			return err
		}

		if err := repo.DeleteWorkout(w.ID); err != nil {
			return fmt.Errorf("failed to delete workout: %w", err)
		}

		color.Green("✓ Deleted %q", w.Name)
		return nil
	},
}

func workoutStatus(w *models.Workout) string {
	switch {
	case w.IsTemplate:
		return "template"
	case w.IsCompleted():
		return "completed"
	default:
		return "planned"
	}
}

// findWorkout resolves a full UUID or a unique ID prefix.
func findWorkout(ref string) (*models.Workout, error) {
	if id, err := uuid.Parse(ref); err == nil {
		w, err := repo.GetWorkout(id)
		if err != nil {
			return nil, fmt.Errorf("workout %s: %w", ref, err)
		}
		return w, nil
	}

	workouts, err := repo.ListWorkouts(cfg.GetOwnerID(), storage.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to list workouts: %w", err)
	}

	var matchID uuid.UUID
	found := false
	for _, w := range workouts {
		if strings.HasPrefix(w.ID.String(), ref) {
			if found {
				return nil, fmt.Errorf("ambiguous workout id prefix: %s", ref)
			}
			matchID = w.ID
			found = true
		}
	}
	if !found {
		return nil, fmt.Errorf("no workout matching %q", ref)
	}
	return repo.GetWorkout(matchID)
}

func init() {
	workoutNewCmd.Flags().Bool("template", false, "create a reusable template")
	workoutNewCmd.Flags().String("notes", "", "free-text notes")
	workoutNewCmd.Flags().String("date", "", "workout date (default now)")

	workoutAddExerciseCmd.Flags().Int("sets", 3, "number of sets")
	workoutAddExerciseCmd.Flags().Int("reps", 10, "target reps per set")
	workoutAddExerciseCmd.Flags().Float64("weight", 0, "target weight")
	workoutAddExerciseCmd.Flags().Int("rest", 90, "rest seconds between sets")

	workoutListCmd.Flags().Bool("templates", false, "only templates (or --templates=false for only sessions)")
	workoutListCmd.Flags().Int("limit", 0, "max results")
	workoutListCmd.Flags().String("from", "", "earliest date")
	workoutListCmd.Flags().String("to", "", "latest date")

	workoutCmd.AddCommand(workoutNewCmd)
	workoutCmd.AddCommand(workoutAddExerciseCmd)
	workoutCmd.AddCommand(workoutListCmd)
	workoutCmd.AddCommand(workoutShowCmd)
	workoutCmd.AddCommand(workoutDeleteCmd)
	rootCmd.AddCommand(workoutCmd)
}
