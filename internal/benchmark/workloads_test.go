package benchmark

import (
	"testing"

	"auditor/internal/analysis"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkloads(t *testing.T) {
	list := Workloads()
	require.NotEmpty(t, list)
	for i := 1; i < len(list); i++ {
		assert.Less(t, list[i-1].Name, list[i].Name)
	}
}

func TestLookupWorkload(t *testing.T) {
	_, err := LookupWorkload("bogosort")
	assert.ErrorIs(t, err, ErrUnknownWorkload)

	w, err := LookupWorkload("sample")
	require.NoError(t, err)
	v, err := w.Fn(3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 0, 0, 1, 2, 0, 2, 4}, v)
}

func TestWorkloadSourcesEstimate(t *testing.T) {
	want := map[string]string{
		"sample":    "O(1)",
		"quadratic": "O(n^2)",
		"linear":    "O(n^1)",
		"constant":  "O(1)",
	}
	for name, label := range want {
		w, err := LookupWorkload(name)
		require.NoError(t, err)
		assert.Equal(t, label, analysis.AnalyzeComplexity(w.Source), name)
	}
}

func TestWorkloadResults(t *testing.T) {
	linear, _ := LookupWorkload("linear")
	constant, _ := LookupWorkload("constant")

	for _, n := range []int{0, 1, 10, 1000} {
		a, err := linear.Fn(n)
		require.NoError(t, err)
		b, err := constant.Fn(n)
		require.NoError(t, err)
		assert.Equal(t, a, b, "n=%d", n)
	}
}
