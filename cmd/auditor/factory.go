package main

import (
	"context"
	"sync"

	"github.com/AlecAivazis/survey/v2"

	"auditor/internal/agent"
	"auditor/internal/analysis"
	"auditor/internal/config"
	"auditor/internal/db"
	"auditor/internal/telemetry"
)

// agentClientFactory builds the model client for c. An empty model uses the
// configured one. It is a variable so tests can swap in a mock.
var agentClientFactory = func(ctx context.Context, c *config.Config, model string) (agent.Agent, error) {
	if model == "" {
		model = c.Model
	}
	return agent.NewAgent(c.Provider, c.APIKey, model, c.BaseURL)
}

// storeFactory opens the judgment log. Replaced in tests.
var storeFactory = func(sc config.StoreConfig) (db.Store, error) {
	return db.NewStore(db.StoreConfig{Type: sc.Type, Path: sc.Path})
}

// askOneFunc is survey.AskOne, swappable for tests.
var askOneFunc = survey.AskOne

var (
	metricsOnce sync.Once
	metrics     *telemetry.Metrics
)

// appMetrics registers the collectors with the default registry once.
func appMetrics() *telemetry.Metrics {
	metricsOnce.Do(func() {
		metrics = telemetry.NewMetrics(nil)
	})
	return metrics
}

// codeLanguage resolves the --language flag or configured language.
func codeLanguage() (analysis.Language, error) {
	if cfg == nil {
		return analysis.Python, nil
	}
	return analysis.ParseLanguage(cfg.Language)
}
