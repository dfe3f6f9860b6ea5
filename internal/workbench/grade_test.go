package workbench

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"auditor/internal/analysis"
)

func TestCleanCode(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"PythonFence", "```python\ndef f(n):\n    return n\n```", "def f(n):\n    return n"},
		{"GoFence", "```go\nfunc f() {}\n```\n", "func f() {}"},
		{"BareFence", "```\nx = 1\n```", "x = 1"},
		{"NoFence", "  def f():\n    pass  \n", "def f():\n    pass"},
		{"TextAroundFence", "Here you go:\n```python\ndef f(): pass\n```", "Here you go:\n\ndef f(): pass"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanCode(tt.in))
		})
	}
}

func TestGrade(t *testing.T) {
	assert.Equal(t, WaitingLabel, Grade("", analysis.Python))
	assert.Equal(t, WaitingLabel, Grade("x = 1", analysis.Python))
	assert.Equal(t, WaitingLabel, Grade("def f(): pass", analysis.Go))
	assert.Equal(t, "O(1)", Grade("def f(x):\n    return x", analysis.Python))
	assert.Equal(t, "O(n^2)", Grade("def f(n):\n    for i in range(n):\n        for j in range(n):\n            pass", analysis.Python))
	assert.Equal(t, "O(n^1)", Grade("func f(xs []int) {\n\tfor range xs {\n\t}\n}", analysis.Go))
	assert.True(t, analysis.IsSyntaxError(Grade("def f(:\n    pass", analysis.Python)))
}

func TestSignal(t *testing.T) {
	tests := []struct {
		label string
		want  string
	}{
		{"O(1)", Good},
		{"O(n^1)", Good},
		{"O(n^2)", Poor},
		{"O(n^3)", Poor},
		{"O(n^12)", Poor},
		{"Syntax Error: invalid syntax (line 1, column 7)", Poor},
		{WaitingLabel, Good},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Signal(tt.label), tt.label)
	}
}
