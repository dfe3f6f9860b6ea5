package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"auditor/internal/db"
	"auditor/internal/telemetry"
	"auditor/internal/ui"
	"auditor/internal/workbench"
)

var workbenchTask string

var workbenchCmd = &cobra.Command{
	Use:   "workbench",
	Short: "Interactive RLHF session: generate, compare, choose and log",
	Long: `Run one workbench round: enter a coding task, pick a prompt strategy,
compare the two graded solutions, choose the one fit for production, explain
why, and append the judgment to the training log.`,
	Args: cobra.NoArgs,
	RunE: runWorkbenchCmd,
}

func init() {
	workbenchCmd.Flags().StringVar(&workbenchTask, "task", "", "Coding task (prompted when empty)")
	rootCmd.AddCommand(workbenchCmd)
}

func runWorkbenchCmd(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	ctx := cmd.Context()

	fmt.Fprintln(out, ui.Banner("AI Validation & RLHF Workbench: Truthfulness vs. Efficiency (Big O)"))

	task := workbenchTask
	if strings.TrimSpace(task) == "" {
		if err := askOneFunc(&survey.Input{
			Message: "Enter a Coding Task:",
			Help:    "e.g., Find the duplicate number in this list: [1, 2, 3, 4, 2]",
		}, &task, survey.WithValidator(survey.Required)); err != nil {
			return err
		}
	}

	strategy, err := askStrategy()
	if err != nil {
		return err
	}

	wb, err := newWorkbench(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, ui.Muted("Asking "+cfg.Provider+"..."))
	pair, err := wb.Generate(ctx, task, strategy)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}
	fmt.Fprintln(out, ui.NewRenderer(100, "").Pair(pair, string(wb.Language)))

	var choice string
	if err := askOneFunc(&survey.Select{
		Message: "Select Production Code:",
		Options: []string{workbench.ChoiceModelA, workbench.ChoiceModelB},
		Default: workbench.ChoiceModelA,
	}, &choice); err != nil {
		return err
	}

	var reasoning string
	if err := askOneFunc(&survey.Input{Message: "Auditor Reasoning:"}, &reasoning); err != nil {
		return err
	}

	save := true
	if err := askOneFunc(&survey.Confirm{Message: "Save to Training Data?", Default: true}, &save); err != nil {
		return err
	}
	if !save {
		fmt.Fprintln(out, ui.Muted("Judgment discarded."))
		return nil
	}

	entry := workbench.NewJudgment(pair, choice, reasoning)
	if err := appendEntry(cfg.Store.Path, entry); err != nil {
		return err
	}
	fmt.Fprintln(out, ui.Success("Data Logged."))
	return nil
}

func askStrategy() (workbench.Strategy, error) {
	current, err := workbench.ParseStrategy(cfg.Strategy)
	if err != nil {
		current = workbench.Standard
	}

	var titles []string
	for _, s := range workbench.Strategies() {
		titles = append(titles, s.Title())
	}

	var picked string
	if err := askOneFunc(&survey.Select{
		Message: "Prompt Strategy",
		Options: titles,
		Default: current.Title(),
	}, &picked); err != nil {
		return "", err
	}
	return workbench.ParseStrategy(picked)
}

// appendEntry opens the configured store at path and appends entry.
func appendEntry(path string, entry db.Entry) error {
	sc := cfg.Store
	sc.Path = path
	store, err := storeFactory(sc)
	if err != nil {
		return fmt.Errorf("failed to open judgment log: %w", err)
	}
	appendErr := store.Append(entry)
	closeErr := store.Close()
	if err := errors.Join(appendErr, closeErr); err != nil {
		return fmt.Errorf("failed to save judgment: %w", err)
	}

	appMetrics().TrackJudgment(entry.Choice)
	telemetry.LogInfo("Judgment saved", "id", entry.ID, "choice", entry.Choice, "store", sc.Type)
	return nil
}
