package benchmark

import (
	"auditor/internal/telemetry"
)

// Profiler runs a series, draws the chart and optionally opens it.
type Profiler struct {
	Runner *Runner
	Viewer *Viewer
	// SkipChart disables rendering; the series is still returned.
	SkipChart bool
}

// NewProfiler returns a Profiler with the default runner and viewer.
func NewProfiler() *Profiler {
	return &Profiler{Runner: NewRunner(), Viewer: NewViewer()}
}

// Profile measures fn across sizes and saves the chart. The returned path is
// empty when the chart was skipped. Failures of fn end the session and are
// returned unchanged.
func (p *Profiler) Profile(name string, fn Func, sizes []int) (Series, string, error) {
	runner := p.Runner
	if runner == nil {
		runner = NewRunner()
	}

	series, err := runner.Run(fn, sizes)
	if err != nil {
		return nil, "", err
	}
	if p.SkipChart {
		return series, "", nil
	}

	path, err := SaveChart(name, series)
	if err != nil {
		return series, "", err
	}
	telemetry.LogDebug("chart saved", "path", path, "samples", len(series))

	if p.Viewer != nil {
		if opened, err := p.Viewer.Open(path); err != nil {
			telemetry.LogError("failed to open chart viewer", err, "path", path)
		} else if opened {
			telemetry.LogDebug("chart opened", "path", path)
		}
	}
	return series, path, nil
}
