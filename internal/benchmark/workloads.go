package benchmark

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownWorkload is returned by LookupWorkload for unregistered names.
var ErrUnknownWorkload = errors.New("unknown workload")

// Workload is a built-in function under test together with the Python
// source it mirrors, so the static estimate and the measured curve can be
// compared side by side.
type Workload struct {
	Name        string
	Description string
	Source      string
	Fn          Func
}

var workloads = map[string]Workload{
	"sample": {
		Name:        "sample",
		Description: "all pairwise products via a nested comprehension",
		Source: `
def sample_algo(n):
    return [i*j for i in range(n) for j in range(n)]
`,
		Fn: func(args ...int) (any, error) {
			n := firstArg(args)
			out := make([]int, 0, n*n)
			for i := 0; i < n; i++ {
				for j := 0; j < n; j++ {
					out = append(out, i*j)
				}
			}
			return out, nil
		},
	},
	"quadratic": {
		Name:        "quadratic",
		Description: "brute-force duplicate search with a double loop",
		Source: `
def find_duplicate(n):
    items = list(range(n))
    for i in range(n):
        for j in range(i + 1, n):
            if items[i] == items[j]:
                return items[i]
    return None
`,
		Fn: func(args ...int) (any, error) {
			n := firstArg(args)
			items := make([]int, n)
			for i := range items {
				items[i] = i
			}
			for i := 0; i < n; i++ {
				for j := i + 1; j < n; j++ {
					if items[i] == items[j] {
						return items[i], nil
					}
				}
			}
			return nil, nil
		},
	},
	"linear": {
		Name:        "linear",
		Description: "running sum over the input range",
		Source: `
def total(n):
    s = 0
    for i in range(n):
        s += i
    return s
`,
		Fn: func(args ...int) (any, error) {
			n := firstArg(args)
			s := 0
			for i := 0; i < n; i++ {
				s += i
			}
			return s, nil
		},
	},
	"constant": {
		Name:        "constant",
		Description: "closed-form sum of the input range",
		Source: `
def total(n):
    return n * (n - 1) // 2
`,
		Fn: func(args ...int) (any, error) {
			n := firstArg(args)
			return n * (n - 1) / 2, nil
		},
	},
}

// LookupWorkload returns the registered workload with the given name.
func LookupWorkload(name string) (Workload, error) {
	w, ok := workloads[name]
	if !ok {
		return Workload{}, fmt.Errorf("%w: %s", ErrUnknownWorkload, name)
	}
	return w, nil
}

// Workloads lists the registered workloads sorted by name.
func Workloads() []Workload {
	list := make([]Workload, 0, len(workloads))
	for _, w := range workloads {
		list = append(list, w)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].Name < list[j].Name
	})
	return list
}

func firstArg(args []int) int {
	if len(args) == 0 || args[0] < 0 {
		return 0
	}
	return args[0]
}
