// ABOUTME: Exercise catalog commands: add, list, show, edit, delete.
// ABOUTME: Catalog entries are referenced by workouts via exercise type IDs.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/harperreed/ironlog/internal/models"
	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the exercise catalog",
}

var catalogAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add an exercise to the catalog",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		category, _ := cmd.Flags().GetString("category")
		muscles, _ := cmd.Flags().GetStringSlice("muscles")
		instructions, _ := cmd.Flags().GetString("instructions")

		if !models.IsValidCategory(category) {
			return fmt.Errorf("invalid category %q (valid: %s)", category, categoryList())
		}

		et := models.NewExerciseType(args[0], models.Category(category))
		if len(muscles) > 0 {
			et.WithMuscles(muscles...)
		}
		if instructions != "" {
			et.WithInstructions(instructions)
		}

		if err := repo.CreateExerciseType(et); err != nil {
			return fmt.Errorf("failed to add exercise type: %w", err)
		}

		color.Green("✓ Added %s (%s) [%s]", et.Name, et.Category, shortID(et.ID))
		return nil
	},
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the exercise catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		types, err := repo.ListExerciseTypes()
		if err != nil {
			return fmt.Errorf("failed to list exercise types: %w", err)
		}
		if len(types) == 0 {
			fmt.Println("Catalog is empty. Add one with 'ironlog catalog add'.")
			return nil
		}

		bold := color.New(color.Bold)
		bold.Printf("%s %s %s\n", padRight("ID", 10), padRight("NAME", 28), "CATEGORY")
		for _, et := range types {
			fmt.Printf("%s %s %s\n", padRight(shortID(et.ID), 10), padRight(et.Name, 28), et.Category)
		}
		return nil
	},
}

var catalogShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one catalog entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		et, err := findExerciseType(args[0])
		if err != nil {
			return err
		}

		bold := color.New(color.Bold)
		bold.Println(et.Name)
		fmt.Printf("  ID:       %s\n", et.ID)
		fmt.Printf("  Category: %s\n", et.Category)
		if len(et.Muscles) > 0 {
			fmt.Printf("  Muscles:  %s\n", strings.Join(et.Muscles, ", "))
		}
		if et.Instructions != "" {
			fmt.Printf("  Notes:    %s\n", et.Instructions)
		}
		return nil
	},
}

var catalogEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a catalog entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		et, err := findExerciseType(args[0])
		if err != nil {
			return err
		}

		if cmd.Flags().Changed("name") {
			et.Name, _ = cmd.Flags().GetString("name")
		}
		if cmd.Flags().Changed("category") {
			category, _ := cmd.Flags().GetString("category")
			if !models.IsValidCategory(category) {
				return fmt.Errorf("invalid category %q (valid: %s)", category, categoryList())
			}
			et.Category = models.Category(category)
		}
		if cmd.Flags().Changed("muscles") {
			muscles, _ := cmd.Flags().GetStringSlice("muscles")
			et.Muscles = muscles
		}
		if cmd.Flags().Changed("instructions") {
			et.Instructions, _ = cmd.Flags().GetString("instructions")
		}

		if err := repo.UpdateExerciseType(et); err != nil {
			return fmt.Errorf("failed to update exercise type: %w", err)
		}

		color.Green("✓ Updated %s", et.Name)
		return nil
	},
}

var catalogDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a catalog entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		et, err := findExerciseType(args[0])
		if err != nil {
			return err
		}

		if err := repo.DeleteExerciseType(et.ID); err != nil {
			return fmt.Errorf("failed to delete exercise type: %w", err)
		}

		color.Green("✓ Deleted %s", et.Name)
		return nil
	},
}

// findExerciseType resolves a full UUID or a unique ID prefix.
func findExerciseType(ref string) (*models.ExerciseType, error) {
	if id, err := uuid.Parse(ref); err == nil {
		et, err := repo.GetExerciseType(id)
		if err != nil {
			return nil, fmt.Errorf("exercise type %s: %w", ref, err)
		}
		return et, nil
	}

	types, err := repo.ListExerciseTypes()
	if err != nil {
		return nil, fmt.Errorf("failed to list exercise types: %w", err)
	}

	var match *models.ExerciseType
	for _, et := range types {
		if strings.HasPrefix(et.ID.String(), ref) {
			if match != nil {
				return nil, fmt.Errorf("ambiguous exercise type id prefix: %s", ref)
			}
			match = et
		}
	}
	if match == nil {
		return nil, fmt.Errorf("no exercise type matching %q", ref)
	}
	return match, nil
}

func categoryList() string {
	names := make([]string, len(models.AllCategories))
	for i, c := range models.AllCategories {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}

func init() {
	catalogAddCmd.Flags().String("category", "other", "movement category ("+categoryList()+")")
	catalogAddCmd.Flags().StringSlice("muscles", nil, "muscle groups worked")
	catalogAddCmd.Flags().String("instructions", "", "form notes")

	catalogEditCmd.Flags().String("name", "", "new name")
	catalogEditCmd.Flags().String("category", "", "new category")
	catalogEditCmd.Flags().StringSlice("muscles", nil, "new muscle list")
	catalogEditCmd.Flags().String("instructions", "", "new form notes")

	catalogCmd.AddCommand(catalogAddCmd)
	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogShowCmd)
	catalogCmd.AddCommand(catalogEditCmd)
	catalogCmd.AddCommand(catalogDeleteCmd)
	rootCmd.AddCommand(catalogCmd)
}
