package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"auditor/internal/agent"
	"auditor/internal/telemetry"
	"auditor/internal/ui"
)

var modelsProbe bool

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List available models or probe for one that works",
	Long: `List the provider's models that support content generation. With --probe,
send a short prompt to each configured candidate in order and report the first
one that answers.`,
	Args: cobra.NoArgs,
	RunE: runModelsCmd,
}

func init() {
	modelsCmd.Flags().BoolVar(&modelsProbe, "probe", false, "Find the first working candidate model")
	rootCmd.AddCommand(modelsCmd)
}

func runModelsCmd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if modelsProbe {
		return probeModels(ctx, cmd)
	}

	out := cmd.OutOrStdout()
	ag, err := agentClientFactory(ctx, cfg, "")
	if err != nil {
		return fmt.Errorf("failed to initialize agent: %w", err)
	}
	lister, ok := ag.(agent.ModelLister)
	if !ok {
		return fmt.Errorf("provider %s cannot list models", cfg.Provider)
	}

	fmt.Fprintln(out, "--- Asking "+cfg.Provider+" for Available Models ---")
	names, err := lister.ListModels(ctx)
	if err != nil {
		return err
	}
	for _, name := range names {
		fmt.Fprintf(out, "Found: %s\n", name)
	}
	return nil
}

func probeModels(ctx context.Context, cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "--- Hunting for a working model ---")

	build := func(model string) (agent.Agent, error) {
		return agentClientFactory(ctx, cfg, model)
	}
	report := func(model string, err error) {
		if err != nil {
			telemetry.LogDebug("probe failed", "model", model, "error", err)
			fmt.Fprintf(out, "Testing: %s... %s\n", model, ui.Failure("FAILED"))
			return
		}
		fmt.Fprintf(out, "Testing: %s... %s\n", model, ui.Success("SUCCESS"))
	}

	model, err := agent.FindWorkingModel(ctx, cfg.ProbeModels, build, report)
	if errors.Is(err, agent.ErrNoWorkingModel) {
		fmt.Fprintln(out, "\nALL FAILED. Check your API key carefully.")
		return err
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "\n>>> Set model to: '%s'\n", model)
	return nil
}
