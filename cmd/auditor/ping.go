package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"auditor/internal/ui"
)

const pingPrompt = `Write a Python print statement that says "Hello World".`

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Send one test prompt to verify provider credentials",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		out := cmd.OutOrStdout()

		fmt.Fprintln(out, "--- Starting Connection Test ---")
		ag, err := agentClientFactory(ctx, cfg, "")
		if err != nil {
			return fmt.Errorf("failed to initialize agent: %w", err)
		}

		fmt.Fprintf(out, "Attempting to contact %s (%s)...\n", cfg.Provider, cfg.Model)
		reply, err := ag.Send(ctx, pingPrompt)
		if err != nil {
			fmt.Fprintln(out, ui.Failure("FAILED."))
			return err
		}
		fmt.Fprintln(out, ui.Success("SUCCESS! Reply received:"))
		fmt.Fprintln(out, reply)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pingCmd)
}
