package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"auditor/internal/analysis"
	"auditor/internal/benchmark"
	"auditor/internal/ui"
)

var (
	profileSizes   []int
	profileNoChart bool
	profileList    bool
	profileJSON    bool
)

// newProfiler is a variable so tests can inject a fake runner and viewer.
var newProfiler = benchmark.NewProfiler

var profileCmd = &cobra.Command{
	Use:   "profile [workload]",
	Short: "Compare a workload's static estimate with its measured growth",
	Long: `Run the static estimator on a built-in workload's source, then time the
workload once per input size, print the series and save complexity_proof.png
with an O(n^2) reference curve. The default workload is "sample".`,
	Args: cobra.MaximumNArgs(1),
	RunE: runProfileCmd,
}

func init() {
	profileCmd.Flags().IntSliceVar(&profileSizes, "sizes", nil, "Input sizes to measure (default from config)")
	profileCmd.Flags().BoolVar(&profileNoChart, "no-chart", false, "Skip rendering the chart")
	profileCmd.Flags().BoolVar(&profileList, "list", false, "List the built-in workloads")
	profileCmd.Flags().BoolVar(&profileJSON, "json", false, "Print the series as JSON")
	rootCmd.AddCommand(profileCmd)
}

func runProfileCmd(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if profileList {
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tDESCRIPTION")
		for _, wl := range benchmark.Workloads() {
			fmt.Fprintf(w, "%s\t%s\n", wl.Name, wl.Description)
		}
		return w.Flush()
	}

	name := "sample"
	if len(args) == 1 {
		name = args[0]
	}
	wl, err := benchmark.LookupWorkload(name)
	if err != nil {
		return err
	}

	sizes := profileSizes
	if len(sizes) == 0 && cfg != nil {
		sizes = cfg.Profile.Sizes
	}

	m := appMetrics()
	label := analysis.AnalyzeComplexity(wl.Source)
	m.TrackEstimate(analysis.Kind(label))

	if !profileJSON {
		fmt.Fprintln(out, ui.Header("Static analysis: "+wl.Name))
		fmt.Fprintln(out, strings.TrimSpace(wl.Source))
		fmt.Fprintf(out, "Estimated complexity: %s\n\n", ui.Label(label))
		fmt.Fprintln(out, ui.Header("Measured runtime"))
	}

	p := newProfiler()
	p.SkipChart = profileNoChart
	if p.Runner == nil {
		p.Runner = benchmark.NewRunner()
	}
	p.Runner.OnSample = func(r benchmark.Result) {
		m.TrackProfileSample()
		if !profileJSON {
			fmt.Fprintf(out, "Input: %d -> Time: %.6fs\n", r.Size, r.RawTime.Seconds())
		}
	}

	series, path, err := p.Profile(wl.Name, wl.Fn, sizes)
	if err != nil {
		return fmt.Errorf("profiling %s failed: %w", wl.Name, err)
	}

	if profileJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{
			"workload": wl.Name,
			"label":    label,
			"series":   series,
			"chart":    path,
		})
	}

	fmt.Fprintln(out)
	fmt.Fprint(out, ui.Series(series))
	if path != "" {
		fmt.Fprintf(out, "\nChart saved to %s\n", path)
	}
	return nil
}
