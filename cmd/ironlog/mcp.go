// ABOUTME: MCP server command exposing training data over stdio.
// ABOUTME: Runs until stdin closes or an interrupt arrives.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/harperreed/ironlog/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server over stdio.

Exposes read and analytics tools (workouts, records, weekly stats,
plateau checks, one-rep-max estimates) to MCP-compatible AI assistants.
Live session execution stays on the interactive CLI.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(repo, cfg.GetOwnerID(), cfg.Analytics())
		if err != nil {
			return fmt.Errorf("failed to create MCP server: %w", err)
		}

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigCh
			cancel()
		}()

		if err := server.Serve(ctx); err != nil && ctx.Err() == nil {
			return fmt.Errorf("MCP server error: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
