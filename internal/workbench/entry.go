package workbench

import (
	"time"

	"github.com/google/uuid"

	"auditor/internal/db"
)

// Choices offered when judging a generated pair.
const (
	ChoiceModelA = "Model A"
	ChoiceModelB = "Model B"
)

// Choices offered when ranking two fixed responses.
const (
	ChoiceResponseA = "Response A"
	ChoiceResponseB = "Response B"
	ChoiceTie       = "Tie"
)

// now is replaced in tests.
var now = time.Now

// NewJudgment records which candidate of p was picked for production.
func NewJudgment(p Pair, choice, reasoning string) db.Entry {
	return db.Entry{
		ID:        uuid.NewString(),
		Timestamp: now().Format(time.RFC3339),
		Prompt:    p.Task,
		Choice:    choice,
		Reasoning: reasoning,
		Signals: &db.Signals{
			ModelA: p.A.Label,
			ModelB: p.B.Label,
		},
	}
}

// NewRanking records a preference between two fixed responses.
func NewRanking(responseA, responseB, choice, reasoning string) db.Entry {
	return db.Entry{
		ID:        uuid.NewString(),
		Timestamp: now().Format(time.RFC3339),
		Choice:    choice,
		Reasoning: reasoning,
		Metadata: &db.Metadata{
			ModelALen: len([]rune(responseA)),
			ModelBLen: len([]rune(responseB)),
		},
	}
}
