package main

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"auditor/internal/benchmark"
)

func fakeProfiler(t *testing.T) {
	t.Helper()
	original := newProfiler
	newProfiler = func() *benchmark.Profiler {
		return &benchmark.Profiler{
			Runner: &benchmark.Runner{Sampler: func() (uint64, error) { return 4096, nil }},
			Viewer: &benchmark.Viewer{GOOS: "linux"},
		}
	}
	t.Cleanup(func() { newProfiler = original })
}

func TestProfileCmd_List(t *testing.T) {
	isolate(t)
	out, err := executeCommand(rootCmd, "profile", "--list")
	require.NoError(t, err)
	assert.Contains(t, out, "sample")
	assert.Contains(t, out, "quadratic")
}

func TestProfileCmd_JSON(t *testing.T) {
	isolate(t)
	fakeProfiler(t)
	t.Setenv("AUDITOR_PROFILE_SIZES", "1,2,3")

	out, err := executeCommand(rootCmd, "profile", "quadratic", "--no-chart", "--json")
	require.NoError(t, err)

	var res struct {
		Workload string `json:"workload"`
		Label    string `json:"label"`
		Chart    string `json:"chart"`
		Series   []struct {
			Size   int    `json:"size"`
			Memory string `json:"memory"`
		} `json:"series"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "quadratic", res.Workload)
	assert.Equal(t, "O(n^2)", res.Label)
	assert.Empty(t, res.Chart)
	require.Len(t, res.Series, 3)
	assert.Equal(t, 3, res.Series[2].Size)
	assert.Equal(t, "0.00 KB", res.Series[0].Memory)
}

func TestProfileCmd_SavesChart(t *testing.T) {
	dir := isolate(t)
	fakeProfiler(t)
	t.Setenv("AUDITOR_PROFILE_SIZES", "10,20")

	out, err := executeCommand(rootCmd, "profile")
	require.NoError(t, err)
	assert.Contains(t, out, "Estimated complexity")
	assert.Contains(t, out, "O(1)")
	assert.Contains(t, out, "Chart saved to")

	resolved, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(resolved, benchmark.ChartFile))
	assert.NoError(t, err)
}

func TestProfileCmd_PrintsEachSample(t *testing.T) {
	isolate(t)
	fakeProfiler(t)
	t.Setenv("AUDITOR_PROFILE_SIZES", "10,20,30")

	out, err := executeCommand(rootCmd, "profile", "quadratic", "--no-chart")
	require.NoError(t, err)
	assert.Regexp(t, `Input: 10 -> Time: \d+\.\d{6}s\n`, out)
	assert.Contains(t, out, "Input: 20 -> Time: ")
	assert.Contains(t, out, "Input: 30 -> Time: ")
	assert.Less(t, strings.Index(out, "Input: 10"), strings.Index(out, "Input: 30"))
}

func TestProfileCmd_JSONOmitsSampleLines(t *testing.T) {
	isolate(t)
	fakeProfiler(t)
	t.Setenv("AUDITOR_PROFILE_SIZES", "5")

	out, err := executeCommand(rootCmd, "profile", "--no-chart", "--json")
	require.NoError(t, err)
	assert.NotContains(t, out, "Input: ")
}

func TestProfileCmd_FailedRunKeepsMeasuredSamples(t *testing.T) {
	isolate(t)
	original := newProfiler
	calls := 0
	newProfiler = func() *benchmark.Profiler {
		return &benchmark.Profiler{
			Runner: &benchmark.Runner{Sampler: func() (uint64, error) {
				calls++
				// two reads per sample: the third read starts the second size
				if calls > 2 {
					return 0, errors.New("rss unavailable")
				}
				return 4096, nil
			}},
			Viewer: &benchmark.Viewer{GOOS: "linux"},
		}
	}
	t.Cleanup(func() { newProfiler = original })
	t.Setenv("AUDITOR_PROFILE_SIZES", "10,20")

	out, err := executeCommand(rootCmd, "profile", "quadratic", "--no-chart")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rss unavailable")
	assert.Contains(t, out, "Input: 10 -> Time: ")
	assert.NotContains(t, out, "Input: 20")
}

func TestProfileCmd_UnknownWorkload(t *testing.T) {
	isolate(t)
	_, err := executeCommand(rootCmd, "profile", "bogus", "--no-chart")
	assert.ErrorIs(t, err, benchmark.ErrUnknownWorkload)
}
