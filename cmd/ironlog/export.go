// ABOUTME: Export and import commands for training data.
// ABOUTME: Round-trips the full catalog, workout history, and goals as JSON or YAML.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/harperreed/ironlog/internal/storage"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all training data",
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		output, _ := cmd.Flags().GetString("output")

		data, err := repo.GetAllData(cfg.GetOwnerID())
		if err != nil {
			return fmt.Errorf("failed to collect data: %w", err)
		}

		raw, err := storage.MarshalExport(data, format)
		if err != nil {
			return err
		}

		if output == "" || output == "-" {
			fmt.Print(string(raw))
			return nil
		}
		if err := os.WriteFile(output, raw, 0600); err != nil {
			return fmt.Errorf("failed to write %s: %w", output, err)
		}

		color.Green("✓ Exported %d exercise type(s), %d workout(s), %d goal(s) to %s",
			len(data.ExerciseTypes), len(data.Workouts), len(data.Goals), output)
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import training data from an export file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}

		data, err := storage.UnmarshalExport(raw)
		if err != nil {
			return err
		}

		if err := repo.ImportData(data); err != nil {
			return fmt.Errorf("failed to import data: %w", err)
		}

		color.Green("✓ Imported %d exercise type(s), %d workout(s), %d goal(s)",
			len(data.ExerciseTypes), len(data.Workouts), len(data.Goals))
		return nil
	},
}

func init() {
	exportCmd.Flags().String("format", "json", "export format: json or yaml")
	exportCmd.Flags().StringP("output", "o", "", "output file (default stdout)")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
