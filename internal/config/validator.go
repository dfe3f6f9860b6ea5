package config

import (
	"fmt"
	"slices"
	"strings"
)

var (
	validProviders  = []string{"gemini", "openai", "openrouter", "ollama", "mock"}
	validLanguages  = []string{"python", "go"}
	validStrategies = []string{"standard", "trick", "security"}
	validStores     = []string{"jsonl", "sqlite", "postgres"}
)

// Validate checks every field and reports all problems at once.
func (c *Config) Validate() error {
	var errors []string

	if !slices.Contains(validProviders, c.Provider) {
		errors = append(errors, fmt.Sprintf("provider must be one of %s, got: %q", strings.Join(validProviders, ", "), c.Provider))
	}
	if c.Model == "" && c.Provider != "mock" {
		errors = append(errors, "model must not be empty")
	}
	if !slices.Contains(validLanguages, c.Language) {
		errors = append(errors, fmt.Sprintf("language must be one of %s, got: %q", strings.Join(validLanguages, ", "), c.Language))
	}
	if !slices.Contains(validStrategies, c.Strategy) {
		errors = append(errors, fmt.Sprintf("strategy must be one of %s, got: %q", strings.Join(validStrategies, ", "), c.Strategy))
	}
	if !slices.Contains(validStores, c.Store.Type) {
		errors = append(errors, fmt.Sprintf("store.type must be one of %s, got: %q", strings.Join(validStores, ", "), c.Store.Type))
	}
	if c.Store.Type == "postgres" && c.Store.Path == "" {
		errors = append(errors, "store.path must hold a connection string for postgres")
	}
	for _, n := range c.Profile.Sizes {
		if n < 0 {
			errors = append(errors, fmt.Sprintf("profile.sizes must not be negative, got: %d", n))
			break
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n  %s", strings.Join(errors, "\n  "))
	}
	return nil
}
