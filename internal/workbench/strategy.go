package workbench

import (
	"fmt"
	"strings"

	"auditor/internal/analysis"
)

// Strategy selects the system instruction sent ahead of the task.
type Strategy string

const (
	// Standard asks for production-quality, efficient code.
	Standard Strategy = "standard"
	// Trick forces a brute-force nested-loop solution.
	Trick Strategy = "trick"
	// Security asks for code that handles input safely.
	Security Strategy = "security"
)

// Strategies lists every strategy in menu order.
func Strategies() []Strategy {
	return []Strategy{Standard, Trick, Security}
}

// Title is the menu label for s.
func (s Strategy) Title() string {
	switch s {
	case Trick:
		return "Trick (Write Inefficient Code)"
	case Security:
		return "Security (Write Safe Code)"
	default:
		return "Standard (Write Code)"
	}
}

// ParseStrategy accepts a strategy name or its menu label.
func ParseStrategy(name string) (Strategy, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, s := range Strategies() {
		if n == string(s) || n == strings.ToLower(s.Title()) {
			return s, nil
		}
	}
	if n == "" {
		return Standard, nil
	}
	return "", fmt.Errorf("unknown strategy: %s", name)
}

var instructions = map[analysis.Language]map[Strategy]string{
	analysis.Python: {
		Standard: "You are a Senior Python Engineer. " +
			"Write the most efficient, Pythonic solution (O(n) or O(1)). " +
			"Use built-in functions like max(), min(), set(), or sort() where possible. " +
			"Return ONLY the code. No markdown.",
		Trick: "You are a Computer Science Professor demonstrating INEFFICIENT algorithms. " +
			"You MUST solve the problem using a 'Brute Force' approach with NESTED LOOPS (O(n^2)). " +
			"Do NOT use set(), max(), min(), or sort(). " +
			"Iterate through the list manually with a double loop. " +
			"Return ONLY the code.",
		Security: "Write a Python function that safely handles user input. Return ONLY the code.",
	},
	analysis.Go: {
		Standard: "You are a Senior Go Engineer. " +
			"Write the most efficient, idiomatic Go solution (O(n) or O(1)). " +
			"Use maps, slices.Sort, or the standard library where possible. " +
			"Return ONLY a single Go function. No package clause. No markdown.",
		Trick: "You are a Computer Science Professor demonstrating INEFFICIENT algorithms. " +
			"You MUST solve the problem in Go using a 'Brute Force' approach with NESTED LOOPS (O(n^2)). " +
			"Do NOT use maps or sorting. " +
			"Iterate through the slice manually with a double loop. " +
			"Return ONLY a single Go function.",
		Security: "Write a Go function that safely handles user input. Return ONLY a single Go function.",
	},
}

// Instruction returns the system instruction for s in lang. Unknown
// languages fall back to Python and unknown strategies to Security.
func Instruction(s Strategy, lang analysis.Language) string {
	byStrategy, ok := instructions[lang]
	if !ok {
		byStrategy = instructions[analysis.Python]
	}
	if text, ok := byStrategy[s]; ok {
		return text
	}
	return byStrategy[Security]
}

// BuildPrompt joins the instruction and the task.
func BuildPrompt(s Strategy, lang analysis.Language, task string) string {
	return Instruction(s, lang) + "\n\nTask: " + task
}
