package benchmark

import "time"

// DefaultInputSizes are the input sizes used when a caller supplies none.
var DefaultInputSizes = []int{10, 100, 500, 1000}

// Func is a function under test. It receives the forwarded arguments of a
// measurement; during a series run that is the input size alone.
type Func func(args ...int) (any, error)

// Result is one measured call of a function under test.
type Result struct {
	Size        int           `json:"size"`
	Value       any           `json:"-"`
	Time        string        `json:"time"`
	RawTime     time.Duration `json:"raw_time_ns"`
	Memory      string        `json:"memory"`
	MemoryDelta int64         `json:"memory_delta_bytes"`
}

// Series holds one Result per input size, in the order the sizes were run.
type Series []Result

// Sizes returns the input sizes of the series.
func (s Series) Sizes() []int {
	sizes := make([]int, len(s))
	for i, r := range s {
		sizes[i] = r.Size
	}
	return sizes
}

// Seconds returns the elapsed times of the series in seconds.
func (s Series) Seconds() []float64 {
	times := make([]float64, len(s))
	for i, r := range s {
		times[i] = r.RawTime.Seconds()
	}
	return times
}
