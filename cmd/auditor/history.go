package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"auditor/internal/db"
	"auditor/internal/stringutils"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent judgments from a SQL store",
	Long: `Print the most recent judgments and rankings. Only the sqlite and postgres
stores keep a readable history; the JSON-lines log is write-only.`,
	Args: cobra.NoArgs,
	RunE: runHistoryCmd,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 10, "Number of entries to show")
	rootCmd.AddCommand(historyCmd)
}

func runHistoryCmd(cmd *cobra.Command, args []string) error {
	store, err := storeFactory(cfg.Store)
	if err != nil {
		return fmt.Errorf("failed to open judgment log: %w", err)
	}
	defer store.Close()

	hs, ok := store.(db.HistoryStore)
	if !ok {
		return fmt.Errorf("store %q has no history; use sqlite or postgres", cfg.Store.Type)
	}

	entries, err := hs.Recent(historyLimit)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No judgments recorded yet.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TIMESTAMP\tCHOICE\tSIGNALS\tPROMPT")
	for _, e := range entries {
		signals := "-"
		if e.Signals != nil {
			signals = e.Signals.ModelA + " / " + e.Signals.ModelB
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.Timestamp, e.Choice, signals, stringutils.Truncate(e.Prompt, 40))
	}
	return w.Flush()
}
