package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"auditor/internal/analysis"
	"auditor/internal/ui"
)

var (
	analyzeCode      string
	analyzeAlgorithm string
	analyzeJSON      bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file]",
	Short: "Estimate the Big-O class of a code sample",
	Long: `Estimate the complexity bucket of a code sample by counting its loop
statements. The sample comes from --code, a file argument, or stdin ("-" or no
argument). Code that does not parse is reported as a syntax error label.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyzeCmd,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeCode, "code", "", "Code to analyze instead of a file")
	analyzeCmd.Flags().StringVar(&analyzeAlgorithm, "algorithm", "count", "Loop algorithm: count (every loop) or depth (deepest nesting)")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Print the result as JSON")
	rootCmd.AddCommand(analyzeCmd)
}

// analyzeResult is the --json output of analyze.
type analyzeResult struct {
	Source    string `json:"source"`
	Language  string `json:"language"`
	Algorithm string `json:"algorithm"`
	Label     string `json:"label"`
	Kind      string `json:"kind"`
}

func runAnalyzeCmd(cmd *cobra.Command, args []string) error {
	lang, err := codeLanguage()
	if err != nil {
		return err
	}
	algo, err := analysis.ParseAlgorithm(analyzeAlgorithm)
	if err != nil {
		return err
	}

	code, source, err := readAnalyzeInput(cmd, args)
	if err != nil {
		return err
	}

	label := analysis.Estimate(code, lang, algo)
	kind := analysis.Kind(label)
	appMetrics().TrackEstimate(kind)

	if analyzeJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(analyzeResult{
			Source:    source,
			Language:  string(lang),
			Algorithm: string(algo),
			Label:     label,
			Kind:      kind,
		})
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", source, ui.Label(label))
	return nil
}

func readAnalyzeInput(cmd *cobra.Command, args []string) (code, source string, err error) {
	if cmd.Flags().Changed("code") {
		return analyzeCode, "<code>", nil
	}
	if len(args) == 1 && args[0] != "-" {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", fmt.Errorf("failed to read %s: %w", args[0], err)
		}
		return string(data), args[0], nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), "<stdin>", nil
}
