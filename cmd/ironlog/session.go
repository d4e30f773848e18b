// ABOUTME: Live session commands: start, set, pause, resume, status, finish, abandon.
// ABOUTME: Each invocation rebuilds the engine from the snapshot store, so interruptions cost nothing.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/harperreed/ironlog/internal/models"
	"github.com/harperreed/ironlog/internal/notify"
	"github.com/harperreed/ironlog/internal/session"
	"github.com/harperreed/ironlog/internal/timer"
	"github.com/spf13/cobra"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Execute a workout set by set",
	Long: `Execute a workout set by set, with rest countdowns between sets.

Progress is snapshotted on every set and every 30 seconds, so a killed
process or a dead battery loses at most the interval since the last save.
The next session command picks up exactly where the last one stopped.`,
}

var sessionStartCmd = &cobra.Command{
	Use:   "start <workout-id>",
	Short: "Start (or resume) a workout session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := findWorkout(args[0])
		if err != nil {
			return err
		}

		return withEngine(w.ID, func(eng *session.Engine) error {
			st := eng.Status()
			if st.CompletedSets > 0 {
				color.Yellow("Resumed %q: %d of %d sets done", st.WorkoutName, st.CompletedSets, st.TotalSets)
			} else {
				color.Green("Started %q (%d sets)", st.WorkoutName, st.TotalSets)
			}
			printPosition(eng)
			return eng.Exit(false)
		})
	},
}

var sessionSetCmd = &cobra.Command{
	Use:   "set <reps> <weight>",
	Short: "Log the current set, then rest",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		skipRest, _ := cmd.Flags().GetBool("skip-rest")
		noWait, _ := cmd.Flags().GetBool("no-wait")

		reps, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("reps must be a whole number: %q", args[0])
		}
		weight, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("weight must be a number: %q", args[1])
		}

		id, err := activeWorkoutID(cmd)
		if err != nil {
			return err
		}

		return withEngine(id, func(eng *session.Engine) error {
			if err := eng.CompleteSet(reps, weight); err != nil {
				return err
			}
			color.Green("✓ Logged %d @ %.1f", reps, weight)

			st := eng.Status()
			if st.Phase == session.PhaseResting {
				switch {
				case skipRest:
					if err := eng.SkipRest(); err != nil {
						return err
					}
				case noWait:
					// Leave the rest pending; the next invocation moves on.
				default:
					waitOutRest(eng)
				}
			}

			printPosition(eng)
			return eng.Exit(false)
		})
	},
}

var sessionStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the live session position",
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := activeWorkoutID(cmd)
		if err != nil {
			return err
		}

		return withEngine(id, func(eng *session.Engine) error {
			st := eng.Status()
			bold := color.New(color.Bold)
			bold.Printf("%s\n", st.WorkoutName)
			fmt.Printf("  Started:  %s\n", st.StartedAt.Format("15:04"))
			fmt.Printf("  Progress: %d of %d sets\n", st.CompletedSets, st.TotalSets)
			if st.Paused {
				color.Yellow("  Paused")
			}
			printPosition(eng)
			return eng.Exit(false)
		})
	},
}

var sessionPauseCmd = &cobra.Command{
	Use:   "pause",
	Short: "Pause the session",
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := activeWorkoutID(cmd)
		if err != nil {
			return err
		}

		return withEngine(id, func(eng *session.Engine) error {
			eng.Pause()
			color.Yellow("Paused. Resume with 'ironlog session resume'.")
			return eng.Exit(false)
		})
	},
}

var sessionResumeCmd = &cobra.Command{
	Use:   "resume",
	Short: "Resume a paused session",
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := activeWorkoutID(cmd)
		if err != nil {
			return err
		}

		return withEngine(id, func(eng *session.Engine) error {
			eng.Resume()
			color.Green("Resumed.")
			printPosition(eng)
			return eng.Exit(false)
		})
	},
}

var sessionNoteCmd = &cobra.Command{
	Use:   "note <text>",
	Short: "Attach notes to the session",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := activeWorkoutID(cmd)
		if err != nil {
			return err
		}

		text := ""
		for i, a := range args {
			if i > 0 {
				text += " "
			}
			text += a
		}

		return withEngine(id, func(eng *session.Engine) error {
			if err := eng.SetNotes(text); err != nil {
				return err
			}
			color.Green("✓ Noted")
			return eng.Exit(false)
		})
	},
}

var sessionFinishCmd = &cobra.Command{
	Use:   "finish",
	Short: "Finalize the workout once every set is done",
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := activeWorkoutID(cmd)
		if err != nil {
			return err
		}

		return withEngine(id, func(eng *session.Engine) error {
			st := eng.Status()
			if err := eng.Finish(); err != nil {
				if err == session.ErrSessionNotFinished {
					return fmt.Errorf("%d of %d sets done; finish the remaining sets first", st.CompletedSets, st.TotalSets)
				}
				return err
			}

			w := eng.Workout()
			minutes := 0
			if w.DurationMinutes != nil {
				minutes = *w.DurationMinutes
			}
			color.Green("✓ Workout %q complete: %d sets in %d min", w.Name, w.TotalSets(), minutes)
			return nil
		})
	},
}

var sessionAbandonCmd = &cobra.Command{
	Use:   "abandon",
	Short: "Abandon the session and discard its snapshot",
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := activeWorkoutID(cmd)
		if err != nil {
			return err
		}

		return withEngine(id, func(eng *session.Engine) error {
			if err := eng.Exit(true); err != nil {
				return err
			}
			color.Yellow("Session abandoned. Logged sets remain on the workout record.")
			return nil
		})
	},
}

// withEngine builds an engine over the shared store, starts the workout
// (resuming any snapshot), and hands it to fn. The snapshot store closes on
// the way out.
func withEngine(workoutID uuid.UUID, fn func(*session.Engine) error) error {
	snaps, err := cfg.OpenSnapshots()
	if err != nil {
		return fmt.Errorf("failed to open session store: %w", err)
	}
	defer snaps.Close()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	eng := session.New(repo, snaps, notify.NewTerminal(), timer.RealClock{}, timer.TickerScheduler{}, logger, session.Options{
		Owner:            cfg.GetOwnerID(),
		AutosaveInterval: cfg.AutosaveInterval(),
	})
	if err := eng.Start(workoutID); err != nil {
		return err
	}
	return fn(eng)
}

// activeWorkoutID finds the session to operate on: the --workout flag if
// given, else the sole live snapshot.
func activeWorkoutID(cmd *cobra.Command) (uuid.UUID, error) {
	ref, _ := cmd.Flags().GetString("workout")
	if ref != "" {
		w, err := findWorkout(ref)
		if err != nil {
			return uuid.Nil, err
		}
		return w.ID, nil
	}

	snaps, err := cfg.OpenSnapshots()
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to open session store: %w", err)
	}
	defer snaps.Close()

	ids, err := snaps.ActiveSessions()
	if err != nil {
		return uuid.Nil, err
	}
	switch len(ids) {
	case 0:
		return uuid.Nil, fmt.Errorf("no session in progress; start one with 'ironlog session start'")
	case 1:
		return ids[0], nil
	default:
		return uuid.Nil, fmt.Errorf("%d sessions in progress; pick one with --workout", len(ids))
	}
}

// waitOutRest blocks until the rest countdown finishes, redrawing the
// remaining seconds once per second.
func waitOutRest(eng *session.Engine) {
	for {
		st := eng.Status()
		if st.Phase != session.PhaseResting {
			break
		}
		fmt.Printf("\r  Rest: %3ds ", st.RestRemaining)
		time.Sleep(time.Second)
	}
	fmt.Print("\r                \r")
}

// printPosition shows the set the cursor points at, or the finish prompt.
func printPosition(eng *session.Engine) {
	st := eng.Status()
	switch st.Phase {
	case session.PhaseCompleted:
		color.Green("All sets done. Run 'ironlog session finish' to finalize.")
		return
	case session.PhaseNotStarted:
		return
	case session.PhaseResting:
		fmt.Printf("  Resting: %ds left\n", st.RestRemaining)
		return
	}

	w := eng.Workout()
	ex := w.Exercises[st.ExerciseIndex]
	cur := ex.Sets[st.SetIndex]
	name := exerciseName(ex)
	fmt.Printf("  Next: %s set %d of %d — target %d @ %.1f\n",
		name, st.SetIndex+1, len(ex.Sets), cur.TargetReps, cur.TargetWeight)
}

func exerciseName(ex models.Exercise) string {
	et, err := repo.GetExerciseType(ex.ExerciseTypeID)
	if err != nil {
		return ex.ExerciseTypeID.String()[:8]
	}
	return et.Name
}

func init() {
	for _, c := range []*cobra.Command{
		sessionSetCmd, sessionStatusCmd, sessionPauseCmd, sessionResumeCmd,
		sessionNoteCmd, sessionFinishCmd, sessionAbandonCmd,
	} {
		c.Flags().String("workout", "", "workout id when several sessions are live")
	}

	sessionSetCmd.Flags().Bool("skip-rest", false, "skip the rest countdown")
	sessionSetCmd.Flags().Bool("no-wait", false, "log the set and return immediately")

	sessionCmd.AddCommand(sessionStartCmd)
	sessionCmd.AddCommand(sessionSetCmd)
	sessionCmd.AddCommand(sessionStatusCmd)
	sessionCmd.AddCommand(sessionPauseCmd)
	sessionCmd.AddCommand(sessionResumeCmd)
	sessionCmd.AddCommand(sessionNoteCmd)
	sessionCmd.AddCommand(sessionFinishCmd)
	sessionCmd.AddCommand(sessionAbandonCmd)
	rootCmd.AddCommand(sessionCmd)
}
