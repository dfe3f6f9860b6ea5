package agent

import (
	"context"
	"fmt"
	"sync"
)

// MockAgent is a simple mock agent for testing and mock mode
// It returns predefined responses without making actual API calls
type MockAgent struct {
	mu             sync.Mutex
	responsePrefix string
	forcedResponse string
	responder      func(string) (string, error)
	prompts        []string
}

// NewMockAgent creates a new mock agent
func NewMockAgent() *MockAgent {
	return &MockAgent{
		responsePrefix: "Mock agent response",
	}
}

// SetResponse forces a specific response from the agent
func (m *MockAgent) SetResponse(response string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.forcedResponse = response
}

// SetResponder makes the agent answer each prompt with fn.
func (m *MockAgent) SetResponder(fn func(string) (string, error)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responder = fn
}

// Prompts returns every prompt the agent has received, in order.
func (m *MockAgent) Prompts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.prompts...)
}

// Send implements the Agent interface
func (m *MockAgent) Send(ctx context.Context, prompt string) (string, error) {
	m.mu.Lock()
	m.prompts = append(m.prompts, prompt)
	responder, forced := m.responder, m.forcedResponse
	m.mu.Unlock()

	if responder != nil {
		return responder(prompt)
	}
	if forced != "" {
		return forced, nil
	}
	response := fmt.Sprintf("%s:\n\nI received your prompt (%d characters).\n\nPrompt preview: %s...",
		m.responsePrefix, len(prompt), truncateString(prompt, 100))
	return response, nil
}

// ListModels implements ModelLister with a fixed model.
func (m *MockAgent) ListModels(ctx context.Context) ([]string, error) {
	return []string{"models/mock"}, nil
}

// truncateString truncates a string to a maximum length
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen]
}
