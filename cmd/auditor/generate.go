package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"auditor/internal/ui"
	"auditor/internal/workbench"
)

var generateStrategy string

var generateCmd = &cobra.Command{
	Use:   "generate <task>",
	Short: "Generate and grade two competing solutions for a task",
	Long: `Ask the configured model for two solutions to the task: Model A with the
standard strategy and Model B with --strategy. Both are graded by the static
estimator and printed with their efficiency signal.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runGenerateCmd,
}

func init() {
	generateCmd.Flags().StringVarP(&generateStrategy, "strategy", "s", "", "Strategy for Model B: standard, trick or security (default from config)")
	rootCmd.AddCommand(generateCmd)
}

func runGenerateCmd(cmd *cobra.Command, args []string) error {
	name := generateStrategy
	if name == "" {
		name = cfg.Strategy
	}
	strategy, err := workbench.ParseStrategy(name)
	if err != nil {
		return err
	}

	wb, err := newWorkbench(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), ui.Muted("Asking "+cfg.Provider+"..."))
	pair, err := wb.Generate(cmd.Context(), strings.Join(args, " "), strategy)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	r := ui.NewRenderer(100, "")
	fmt.Fprintln(cmd.OutOrStdout(), r.Pair(pair, string(wb.Language)))
	return nil
}

// newWorkbench wires the configured agent, language and metrics together.
func newWorkbench(ctx context.Context) (*workbench.Workbench, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	lang, err := codeLanguage()
	if err != nil {
		return nil, err
	}
	ag, err := agentClientFactory(ctx, cfg, "")
	if err != nil {
		return nil, fmt.Errorf("failed to initialize agent: %w", err)
	}
	return workbench.New(ag, lang, cfg.Provider, appMetrics()), nil
}
