package workbench

import (
	"strings"

	"auditor/internal/analysis"
)

const (
	// WaitingLabel is shown for text that holds no function yet.
	WaitingLabel = "Waiting for code..."

	Good = "+Good"
	Poor = "-Poor"
)

var fences = []string{"```python", "```py", "```golang", "```go", "```"}

// CleanCode removes markdown code fences anywhere in text and trims it.
func CleanCode(text string) string {
	for _, f := range fences {
		text = strings.ReplaceAll(text, f, "")
	}
	return strings.TrimSpace(text)
}

// HasFunction reports whether code contains a function definition for lang.
func HasFunction(code string, lang analysis.Language) bool {
	if lang == analysis.Go {
		return strings.Contains(code, "func ")
	}
	return strings.Contains(code, "def ")
}

// Grade labels code, or returns WaitingLabel when there is nothing to grade.
func Grade(code string, lang analysis.Language) string {
	if code == "" || !HasFunction(code, lang) {
		return WaitingLabel
	}
	return analysis.Estimate(code, lang, analysis.LoopCount)
}

// Signal turns a label into an efficiency signal. Quadratic or worse, and
// code that does not parse, is Poor.
func Signal(label string) string {
	if analysis.IsSyntaxError(label) {
		return Poor
	}
	if n, ok := analysis.Exponent(label); ok && n >= 2 {
		return Poor
	}
	return Good
}
