// ABOUTME: Config commands: inspect and change ironlog settings.
// ABOUTME: Settings persist as JSON under the XDG config directory.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/harperreed/ironlog/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and change settings",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		acfg := cfg.Analytics()
		fmt.Printf("config file:       %s\n", config.GetConfigPath())
		fmt.Printf("owner:             %s\n", cfg.GetOwnerID())
		fmt.Printf("data dir:          %s\n", cfg.GetDataDir())
		fmt.Printf("week start:        %s\n", acfg.WeekStart)
		fmt.Printf("plateau window:    %d weeks\n", acfg.PlateauWindow)
		fmt.Printf("plateau threshold: %.2f\n", acfg.PlateauThreshold)
		fmt.Printf("autosave:          %s\n", cfg.AutosaveInterval())
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value",
	Long: `Set a config value. Keys:

  owner               owner id stamped on records
  data-dir            data directory (supports ~)
  week-start          weekday weekly stats begin on (monday, sunday, ...)
  plateau-window      weeks the plateau test examines
  plateau-threshold   coefficient-of-variation cutoff (e.g. 0.05)
  autosave-seconds    session autosave interval`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]

		switch key {
		case "owner":
			cfg.OwnerID = value
		case "data-dir":
			cfg.DataDir = value
		case "week-start":
			cfg.WeekStart = value
		case "plateau-window":
			n, err := strconv.Atoi(value)
			if err != nil || n <= 0 {
				return fmt.Errorf("plateau-window must be a positive whole number: %q", value)
			}
			cfg.PlateauWindow = n
		case "plateau-threshold":
			f, err := strconv.ParseFloat(value, 64)
			if err != nil || f <= 0 {
				return fmt.Errorf("plateau-threshold must be a positive number: %q", value)
			}
			cfg.PlateauThreshold = f
		case "autosave-seconds":
			n, err := strconv.Atoi(value)
			if err != nil || n <= 0 {
				return fmt.Errorf("autosave-seconds must be a positive whole number: %q", value)
			}
			cfg.AutosaveSeconds = n
		default:
			return fmt.Errorf("unknown config key: %q", key)
		}

		if err := cfg.Save(); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}

		color.Green("✓ Set %s = %s", key, value)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}
