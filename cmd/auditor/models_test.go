package main

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"auditor/internal/agent"
	"auditor/internal/config"
)

func TestModelsCmd_List(t *testing.T) {
	isolate(t)
	useAgent(t, agent.NewMockAgent())

	out, err := executeCommand(rootCmd, "models")
	require.NoError(t, err)
	assert.Contains(t, out, "Found: models/mock")
}

func TestModelsCmd_ListUnsupported(t *testing.T) {
	isolate(t)
	useAgent(t, new(MockAgentClient))

	_, err := executeCommand(rootCmd, "models")
	assert.Error(t, err)
}

func TestModelsCmd_Probe(t *testing.T) {
	isolate(t)
	var tried []string
	original := agentClientFactory
	agentClientFactory = func(ctx context.Context, c *config.Config, model string) (agent.Agent, error) {
		tried = append(tried, model)
		m := agent.NewMockAgent()
		m.SetResponder(func(string) (string, error) {
			if model == "gemini-2.5-flash" {
				return "Hello", nil
			}
			return "", errors.New("404")
		})
		return m, nil
	}
	t.Cleanup(func() { agentClientFactory = original })

	out, err := executeCommand(rootCmd, "models", "--probe")
	require.NoError(t, err)
	assert.Contains(t, out, "Set model to: 'gemini-2.5-flash'")
	assert.Equal(t, []string{"gemini-2.0-flash", "gemini-2.0-flash-001", "gemini-2.5-flash"}, tried)
}

func TestModelsCmd_ProbeAllFail(t *testing.T) {
	isolate(t)
	failing := new(MockAgentClient)
	failing.On("Send", mock.Anything, mock.Anything).Return("", errors.New("denied"))
	useAgent(t, failing)

	out, err := executeCommand(rootCmd, "models", "--probe")
	assert.ErrorIs(t, err, agent.ErrNoWorkingModel)
	assert.Contains(t, out, "ALL FAILED")
}

func TestPingCmd(t *testing.T) {
	isolate(t)
	m := new(MockAgentClient)
	m.On("Send", mock.Anything, pingPrompt).Return(`print("Hello World")`, nil)
	useAgent(t, m)

	out, err := executeCommand(rootCmd, "ping")
	require.NoError(t, err)
	assert.Contains(t, out, `print("Hello World")`)
	m.AssertExpectations(t)
}

func TestPingCmd_Failure(t *testing.T) {
	isolate(t)
	m := new(MockAgentClient)
	m.On("Send", mock.Anything, mock.Anything).Return("", errors.New("invalid key"))
	useAgent(t, m)

	out, err := executeCommand(rootCmd, "ping")
	assert.Error(t, err)
	assert.Contains(t, out, "FAILED")
}
