package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeCmd_Code(t *testing.T) {
	isolate(t)

	out, err := executeCommand(rootCmd, "analyze", "--code", "def f(n):\n    for i in range(n):\n        for j in range(n):\n            pass")
	require.NoError(t, err)
	assert.Contains(t, out, "O(n^2)")
}

func TestAnalyzeCmd_File(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "algo.py")
	require.NoError(t, os.WriteFile(path, []byte("def f(n):\n    while n:\n        n -= 1\n"), 0644))

	out, err := executeCommand(rootCmd, "analyze", path)
	require.NoError(t, err)
	assert.Contains(t, out, "O(n^1)")
	assert.Contains(t, out, "algo.py")
}

func TestAnalyzeCmd_MissingFile(t *testing.T) {
	isolate(t)
	_, err := executeCommand(rootCmd, "analyze", "nope.py")
	assert.Error(t, err)
}

func TestAnalyzeCmd_JSONSyntaxError(t *testing.T) {
	isolate(t)

	out, err := executeCommand(rootCmd, "analyze", "--json", "--code", "def f(:\n    pass")
	require.NoError(t, err)

	var res analyzeResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "syntax_error", res.Kind)
	assert.Equal(t, "python", res.Language)
	assert.Equal(t, "count", res.Algorithm)
}

func TestAnalyzeCmd_GoDepth(t *testing.T) {
	isolate(t)

	code := "func f(n int) {\n\tfor i := 0; i < n; i++ {\n\t}\n\tfor j := 0; j < n; j++ {\n\t}\n}"
	out, err := executeCommand(rootCmd, "analyze", "--language", "go", "--algorithm", "depth", "--json", "--code", code)
	require.NoError(t, err)

	var res analyzeResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "O(n^1)", res.Label)
	assert.Equal(t, "go", res.Language)
}

func TestAnalyzeCmd_BadAlgorithm(t *testing.T) {
	isolate(t)
	_, err := executeCommand(rootCmd, "analyze", "--algorithm", "halstead", "--code", "x = 1")
	assert.Error(t, err)
}
