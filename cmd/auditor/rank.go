package main

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"auditor/internal/db"
	"auditor/internal/ui"
	"auditor/internal/workbench"
)

const (
	defaultResponseA = "The capital of France is Paris."
	defaultResponseB = "Paris is the capital and largest city of France."
)

var (
	rankResponseA string
	rankResponseB string
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank two responses for truthfulness and reasoning",
	Long: `Show two fixed responses side by side, ask which one is superior (or a
tie) with step-by-step reasoning, and append the ranking to rlhf_log.json or
the configured SQL store.`,
	Args: cobra.NoArgs,
	RunE: runRankCmd,
}

func init() {
	rankCmd.Flags().StringVar(&rankResponseA, "a", defaultResponseA, "Text of response A")
	rankCmd.Flags().StringVar(&rankResponseB, "b", defaultResponseB, "Text of response B")
	rootCmd.AddCommand(rankCmd)
}

func runRankCmd(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, ui.Header("AI Response Evaluation Portal"))
	fmt.Fprintln(out, ui.Muted("Goal: Rank responses based on truthfulness and reasoning."))
	fmt.Fprintf(out, "\nResponse A:\n  %s\n\nResponse B:\n  %s\n\n", rankResponseA, rankResponseB)

	var choice string
	if err := askOneFunc(&survey.Select{
		Message: "Which response is superior?",
		Options: []string{workbench.ChoiceResponseA, workbench.ChoiceResponseB, workbench.ChoiceTie},
		Default: workbench.ChoiceResponseA,
	}, &choice); err != nil {
		return err
	}

	var reasoning string
	if err := askOneFunc(&survey.Input{Message: "Provide a step-by-step reasoning for your choice:"}, &reasoning); err != nil {
		return err
	}

	path := cfg.Store.Path
	if cfg.Store.Type == "jsonl" && path == "" {
		path = db.DefaultRankingFile
	}
	if err := appendEntry(path, workbench.NewRanking(rankResponseA, rankResponseB, choice, reasoning)); err != nil {
		return err
	}
	fmt.Fprintln(out, ui.Success("Data logged for model fine-tuning."))
	return nil
}
