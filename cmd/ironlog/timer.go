// ABOUTME: Standalone countdown command, independent of any session.
// ABOUTME: Useful for ad-hoc rest or interval timing at the terminal.
package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/harperreed/ironlog/internal/notify"
	"github.com/harperreed/ironlog/internal/timer"
	"github.com/spf13/cobra"
)

var timerCmd = &cobra.Command{
	Use:   "timer <seconds>",
	Short: "Run a standalone countdown",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		seconds, err := strconv.Atoi(args[0])
		if err != nil || seconds <= 0 {
			return fmt.Errorf("seconds must be a positive whole number: %q", args[0])
		}

		done := make(chan struct{})
		c := timer.NewCountdown(seconds, notify.CategoryRest, func() {
			close(done)
		}, notify.NewTerminal(), timer.TickerScheduler{})

		c.Start()
		for {
			select {
			case <-done:
				fmt.Print("\r             \r")
				return nil
			case <-time.After(200 * time.Millisecond):
				fmt.Printf("\r  %3ds ", c.Remaining())
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(timerCmd)
}
