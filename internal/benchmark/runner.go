package benchmark

import (
	"fmt"
	"os"
	"time"

	"github.com/shirou/gopsutil/v3/process"
)

// MemorySampler reports the resident set size of the current process in bytes.
type MemorySampler func() (uint64, error)

// ProcessRSS reads the resident set size of this process.
func ProcessRSS() (uint64, error) {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return 0, err
	}
	info, err := p.MemoryInfo()
	if err != nil {
		return 0, err
	}
	return info.RSS, nil
}

// Runner measures functions under test one call at a time.
//
// There is no warm-up, no retry and no averaging: every input size gets
// exactly one sample. Memory figures are before/after RSS snapshots of the
// whole process and include whatever else the process allocated meanwhile.
type Runner struct {
	// Sampler defaults to ProcessRSS.
	Sampler MemorySampler
	// OnSample, if set, is called after each successful measurement of a run.
	OnSample func(Result)
}

// NewRunner returns a Runner backed by the process RSS sampler.
func NewRunner() *Runner {
	return &Runner{Sampler: ProcessRSS}
}

// MeasureRuntime measures a single call of fn with the default runner.
func MeasureRuntime(fn Func, args ...int) (Result, error) {
	return NewRunner().Measure(fn, args...)
}

// Measure calls fn once with args and records elapsed time and RSS delta.
// An error returned by fn is returned unchanged; a panic is not recovered.
func (r *Runner) Measure(fn Func, args ...int) (Result, error) {
	sample := r.Sampler
	if sample == nil {
		sample = ProcessRSS
	}

	startMem, err := sample()
	if err != nil {
		return Result{}, fmt.Errorf("failed to read resident memory: %w", err)
	}
	start := time.Now()

	value, callErr := fn(args...)

	elapsed := time.Since(start)
	endMem, err := sample()
	if callErr != nil {
		return Result{}, callErr
	}
	if err != nil {
		return Result{}, fmt.Errorf("failed to read resident memory: %w", err)
	}

	delta := int64(endMem) - int64(startMem)
	res := Result{
		Value:       value,
		Time:        fmt.Sprintf("%.6fs", elapsed.Seconds()),
		RawTime:     elapsed,
		Memory:      fmt.Sprintf("%.2f KB", float64(delta)/1024),
		MemoryDelta: delta,
	}
	if len(args) > 0 {
		res.Size = args[0]
	}
	return res, nil
}

// Run measures fn once per input size, in order. When sizes is empty
// DefaultInputSizes is used. The first failure ends the run and is returned
// unchanged; sizes after it are never attempted and no series is returned.
func (r *Runner) Run(fn Func, sizes []int) (Series, error) {
	if len(sizes) == 0 {
		sizes = DefaultInputSizes
	}

	series := make(Series, 0, len(sizes))
	for _, n := range sizes {
		res, err := r.Measure(fn, n)
		if err != nil {
			return nil, err
		}
		series = append(series, res)
		if r.OnSample != nil {
			r.OnSample(res)
		}
	}
	return series, nil
}
