// ABOUTME: Analytics commands: dashboard, records, streak, weekly, plateau, one-rep max.
// ABOUTME: All derive from completed workout history on demand; nothing is stored.
package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/ironlog/internal/analytics"
	"github.com/harperreed/ironlog/internal/models"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the training dashboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		workouts, catalog, err := loadHistory()
		if err != nil {
			return err
		}

		d := analytics.Dashboard(workouts, catalog, time.Now(), cfg.Analytics())
		bold := color.New(color.Bold)

		bold.Println("Training Dashboard")
		fmt.Printf("  Workouts:     %d\n", d.TotalWorkouts)
		fmt.Printf("  Total volume: %.0f\n", d.TotalVolume)
		fmt.Printf("  Avg duration: %.0f min\n", d.AverageDuration)
		fmt.Printf("  Streak:       %d day(s)\n", d.CurrentStreak)

		if len(d.Records) > 0 {
			bold.Println("\nPersonal Records")
			for _, r := range d.Records {
				fmt.Printf("  %s %s %s\n",
					padRight(r.ExerciseName, 24),
					padRight(recordLabel(r.Kind), 10),
					formatRecordValue(r))
			}
		}

		if len(d.Weekly) > 0 {
			bold.Println("\nRecent Weeks")
			weeks := d.Weekly
			if len(weeks) > 4 {
				weeks = weeks[len(weeks)-4:]
			}
			for _, wk := range weeks {
				fmt.Printf("  %s  %d workout(s), volume %.0f\n", padRight(wk.Label, 16), wk.WorkoutCount, wk.TotalVolume)
			}
		}
		return nil
	},
}

var recordsCmd = &cobra.Command{
	Use:   "records [exercise-type-id]",
	Short: "Show personal records",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		workouts, catalog, err := loadHistory()
		if err != nil {
			return err
		}

		var records []models.PersonalRecord
		if len(args) == 1 {
			et, err := findExerciseType(args[0])
			if err != nil {
				return err
			}
			records = analytics.RecordsForExercise(workouts, catalog, et.ID)
		} else {
			records = analytics.PersonalRecords(workouts, catalog)
		}

		if len(records) == 0 {
			fmt.Println("No records yet. Complete a workout first.")
			return nil
		}

		bold := color.New(color.Bold)
		bold.Printf("%s %s %s %s\n", padRight("EXERCISE", 24), padRight("KIND", 10), padRight("VALUE", 10), "DATE")
		for _, r := range records {
			fmt.Printf("%s %s %s %s\n",
				padRight(r.ExerciseName, 24),
				padRight(recordLabel(r.Kind), 10),
				padRight(formatRecordValue(r), 10),
				r.Date.Format("2006-01-02"))
		}
		return nil
	},
}

var streakCmd = &cobra.Command{
	Use:   "streak",
	Short: "Show the current consecutive-day streak",
	RunE: func(cmd *cobra.Command, args []string) error {
		workouts, _, err := loadHistory()
		if err != nil {
			return err
		}

		days := analytics.CurrentStreak(workouts, time.Now())
		switch days {
		case 0:
			fmt.Println("No active streak. Train today to start one.")
		case 1:
			color.Green("1 day streak. Keep going.")
		default:
			color.Green("%d day streak.", days)
		}
		return nil
	},
}

var weeklyCmd = &cobra.Command{
	Use:   "weekly",
	Short: "Show per-week training stats",
	RunE: func(cmd *cobra.Command, args []string) error {
		weeks, _ := cmd.Flags().GetInt("weeks")

		workouts, _, err := loadHistory()
		if err != nil {
			return err
		}

		series := analytics.WeeklySeries(workouts, cfg.Analytics())
		if len(series) == 0 {
			fmt.Println("No completed workouts yet.")
			return nil
		}
		if weeks > 0 && len(series) > weeks {
			series = series[len(series)-weeks:]
		}

		bold := color.New(color.Bold)
		bold.Printf("%s %s %s %s\n", padRight("WEEK", 16), padRight("WORKOUTS", 9), padRight("VOLUME", 10), "AVG MIN")
		for _, wk := range series {
			fmt.Printf("%s %s %s %.0f\n",
				padRight(wk.Label, 16),
				padRight(strconv.Itoa(wk.WorkoutCount), 9),
				padRight(fmt.Sprintf("%.0f", wk.TotalVolume), 10),
				wk.AverageDuration)
		}
		return nil
	},
}

var plateauCmd = &cobra.Command{
	Use:   "plateau",
	Short: "Check whether weekly progress has flattened",
	RunE: func(cmd *cobra.Command, args []string) error {
		metric, _ := cmd.Flags().GetString("metric")
		if !analytics.IsValidPlateauMetric(metric) {
			return fmt.Errorf("unknown metric %q (valid: volume, count, duration)", metric)
		}

		workouts, _, err := loadHistory()
		if err != nil {
			return err
		}

		acfg := cfg.Analytics()
		series := analytics.WeeklySeries(workouts, acfg)
		result, err := analytics.DetectPlateau(series, analytics.PlateauMetric(metric), acfg)
		if err != nil {
			return err
		}

		if result.DataPoints < acfg.PlateauWindow {
			fmt.Printf("Not enough history: %d week(s) of %d needed.\n", result.DataPoints, acfg.PlateauWindow)
			return nil
		}
		if result.Plateau {
			color.Yellow("Plateau on weekly %s: variation %.1f%% over the last %d weeks (mean %.0f).",
				result.Metric, result.CoefficientVariation*100, acfg.PlateauWindow, result.Mean)
			fmt.Println("Consider changing weight, reps, or exercise selection.")
		} else {
			color.Green("No plateau: weekly %s variation is %.1f%%.", result.Metric, result.CoefficientVariation*100)
		}
		return nil
	},
}

var ormCmd = &cobra.Command{
	Use:   "orm <weight> <reps>",
	Short: "Estimate a one-rep max (Brzycki)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		weight, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("weight must be a number: %q", args[0])
		}
		reps, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("reps must be a whole number: %q", args[1])
		}
		if reps <= 0 {
			return fmt.Errorf("reps must be positive")
		}

		est := analytics.OneRepMax(weight, reps)
		fmt.Printf("Estimated 1RM for %.1f × %d: %d\n", weight, reps, est)
		return nil
	},
}

// loadHistory returns the analytics input: completed non-template workouts
// plus the catalog lookup.
func loadHistory() ([]*models.Workout, analytics.Catalog, error) {
	workouts, err := repo.ListCompletedWorkouts(cfg.GetOwnerID())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load workout history: %w", err)
	}
	types, err := repo.ListExerciseTypes()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list exercise types: %w", err)
	}
	return workouts, analytics.NewCatalog(types), nil
}

func recordLabel(k models.RecordKind) string {
	switch k {
	case models.RecordMaxWeight:
		return "weight"
	case models.RecordMaxReps:
		return "reps"
	case models.RecordMaxVolume:
		return "volume"
	}
	return string(k)
}

func formatRecordValue(r models.PersonalRecord) string {
	if r.Kind == models.RecordMaxReps {
		return strconv.Itoa(int(r.Value))
	}
	return fmt.Sprintf("%.1f", r.Value)
}

func init() {
	weeklyCmd.Flags().Int("weeks", 0, "max number of recent weeks")
	plateauCmd.Flags().String("metric", "volume", "weekly metric: volume, count, or duration")

	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(recordsCmd)
	rootCmd.AddCommand(streakCmd)
	rootCmd.AddCommand(weeklyCmd)
	rootCmd.AddCommand(plateauCmd)
	rootCmd.AddCommand(ormCmd)
}
