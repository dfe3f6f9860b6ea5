package workbench

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedNow(t *testing.T) time.Time {
	t.Helper()
	ts := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)
	prev := now
	now = func() time.Time { return ts }
	t.Cleanup(func() { now = prev })
	return ts
}

func TestNewJudgment(t *testing.T) {
	ts := fixedNow(t)
	pair := Pair{
		Task: "Find the duplicate",
		A:    Candidate{Label: "O(n^1)"},
		B:    Candidate{Label: "O(n^2)"},
	}

	e := NewJudgment(pair, ChoiceModelA, "A is linear")

	_, err := uuid.Parse(e.ID)
	require.NoError(t, err)
	assert.Equal(t, ts.Format(time.RFC3339), e.Timestamp)
	assert.Equal(t, "Find the duplicate", e.Prompt)
	assert.Equal(t, ChoiceModelA, e.Choice)
	assert.Equal(t, "A is linear", e.Reasoning)
	require.NotNil(t, e.Signals)
	assert.Equal(t, "O(n^1)", e.Signals.ModelA)
	assert.Equal(t, "O(n^2)", e.Signals.ModelB)
	assert.Nil(t, e.Metadata)

	assert.NotEqual(t, e.ID, NewJudgment(pair, ChoiceModelA, "").ID)
}

func TestNewRanking(t *testing.T) {
	fixedNow(t)
	e := NewRanking("The capital of France is Paris.", "Paris is the capital and largest city of France.", ChoiceTie, "")

	assert.Empty(t, e.Prompt)
	assert.Nil(t, e.Signals)
	require.NotNil(t, e.Metadata)
	assert.Equal(t, 31, e.Metadata.ModelALen)
	assert.Equal(t, 48, e.Metadata.ModelBLen)
}
