package workbench

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"auditor/internal/agent"
	"auditor/internal/analysis"
	"auditor/internal/telemetry"
)

// ErrEmptyTask is returned when Generate is called without a task.
var ErrEmptyTask = errors.New("task is empty")

// Candidate is one generated solution with its grade.
type Candidate struct {
	Strategy Strategy
	Code     string
	Label    string
	Signal   string
}

// Pair holds the two candidates shown side by side.
type Pair struct {
	Task string
	A    Candidate
	B    Candidate
}

// Workbench asks a model for two solutions to the same task and grades them.
type Workbench struct {
	Agent    agent.Agent
	Language analysis.Language
	Provider string
	Metrics  *telemetry.Metrics
}

// New returns a Workbench generating lang code through a.
func New(a agent.Agent, lang analysis.Language, provider string, m *telemetry.Metrics) *Workbench {
	return &Workbench{Agent: a, Language: lang, Provider: provider, Metrics: m}
}

// Generate produces Model A with the standard strategy and Model B with s.
func (w *Workbench) Generate(ctx context.Context, task string, s Strategy) (Pair, error) {
	task = strings.TrimSpace(task)
	if task == "" {
		return Pair{}, ErrEmptyTask
	}

	a, err := w.candidate(ctx, task, Standard)
	if err != nil {
		return Pair{}, fmt.Errorf("model A: %w", err)
	}
	b, err := w.candidate(ctx, task, s)
	if err != nil {
		return Pair{}, fmt.Errorf("model B: %w", err)
	}
	return Pair{Task: task, A: a, B: b}, nil
}

func (w *Workbench) candidate(ctx context.Context, task string, s Strategy) (Candidate, error) {
	start := time.Now()
	text, err := w.Agent.Send(ctx, BuildPrompt(s, w.Language, task))
	w.Metrics.TrackGeneration(w.Provider, string(s), err, time.Since(start))
	if err != nil {
		telemetry.LogError("Generation failed", err, "strategy", s)
		return Candidate{}, err
	}

	code := CleanCode(text)
	label := w.Grade(code)
	telemetry.LogDebug("Generated candidate", "strategy", s, "label", label, "chars", len(code))
	return Candidate{Strategy: s, Code: code, Label: label, Signal: Signal(label)}, nil
}

// Grade labels code in the workbench language and records the estimate.
func (w *Workbench) Grade(code string) string {
	label := Grade(code, w.Language)
	if label != WaitingLabel {
		w.Metrics.TrackEstimate(analysis.Kind(label))
	}
	return label
}
