package analysis

import (
	"fmt"
	"strconv"
	"strings"
)

// ConstantLabel is the bucket for code without any loop construct.
const ConstantLabel = "O(1)"

const syntaxErrorPrefix = "Syntax Error: "

// Language selects the grammar used to parse a code sample.
type Language string

const (
	Python Language = "python"
	Go     Language = "go"
)

// Algorithm selects how loop constructs are turned into a label.
type Algorithm string

const (
	// LoopCount counts every loop node in the tree, nested or not.
	LoopCount Algorithm = "count"
	// LoopDepth labels by the deepest chain of nested loops.
	LoopDepth Algorithm = "depth"
)

// loopStats is the result of one walk over a syntax tree.
type loopStats struct {
	count int
	depth int
}

// AnalyzeComplexity estimates the complexity bucket of a Python code sample
// by counting its for and while statements.
//
// A sample that does not parse yields a "Syntax Error: ..." label; the
// function never panics and never returns an error.
func AnalyzeComplexity(code string) string {
	return Estimate(code, Python, LoopCount)
}

// Estimate labels code written in lang using the given algorithm.
func Estimate(code string, lang Language, algo Algorithm) string {
	var (
		stats loopStats
		err   error
	)
	switch lang {
	case Go:
		stats, err = goLoopStats(code)
	default:
		stats, err = pythonLoopStats(code)
	}
	if err != nil {
		return syntaxErrorPrefix + err.Error()
	}

	if algo == LoopDepth {
		return FormatLabel(stats.depth)
	}
	return FormatLabel(stats.count)
}

// FormatLabel renders a loop total as a complexity bucket.
func FormatLabel(loops int) string {
	if loops > 0 {
		return fmt.Sprintf("O(n^%d)", loops)
	}
	return ConstantLabel
}

// IsSyntaxError reports whether label is the error form rather than a bucket.
func IsSyntaxError(label string) bool {
	return strings.HasPrefix(label, syntaxErrorPrefix)
}

// Exponent recovers the polynomial exponent from a bucket label.
// O(1) is exponent 0. Error labels and unknown strings return false.
func Exponent(label string) (int, bool) {
	if label == ConstantLabel {
		return 0, true
	}
	rest, ok := strings.CutPrefix(label, "O(n^")
	if !ok {
		return 0, false
	}
	rest, ok = strings.CutSuffix(rest, ")")
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

// ParseLanguage resolves a user supplied language name.
func ParseLanguage(name string) (Language, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "py", "python", "python3":
		return Python, nil
	case "go", "golang":
		return Go, nil
	default:
		return "", fmt.Errorf("unsupported language: %s", name)
	}
}

// ParseAlgorithm resolves a user supplied algorithm name.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "count", "loop-count":
		return LoopCount, nil
	case "depth", "loop-depth":
		return LoopDepth, nil
	default:
		return "", fmt.Errorf("unsupported algorithm: %s", name)
	}
}

// Kind classifies a label as "constant", "polynomial" or "syntax_error".
// Anything else is "unknown".
func Kind(label string) string {
	if IsSyntaxError(label) {
		return "syntax_error"
	}
	n, ok := Exponent(label)
	switch {
	case !ok:
		return "unknown"
	case n == 0:
		return "constant"
	default:
		return "polynomial"
	}
}
