package main

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/mock"

	"auditor/internal/agent"
	"auditor/internal/config"
)

// executeCommand executes a cobra command and returns its output.
func executeCommand(root *cobra.Command, args ...string) (string, error) {
	resetFlags(root)
	// Mock exit
	oldExit := exit
	exit = func(code int) {
		if code != 0 {
			panic(fmt.Sprintf("exit-%d", code))
		}
	}
	defer func() { exit = oldExit }()
	defer func() {
		if r := recover(); r != nil {
			if s, ok := r.(string); ok && strings.HasPrefix(s, "exit-") {
				// This is an expected exit, don't re-panic
				return
			}
			panic(r) // Re-panic actual panics
		}
	}()
	root.SetArgs(args)
	b := new(bytes.Buffer)
	root.SetOut(b)
	root.SetErr(b)
	// Mock Stdin to avoid hanging on interactive prompts
	root.SetIn(bytes.NewBufferString(""))
	err := root.Execute()
	return b.String(), err
}

// resetFlags resets all flags to their default values.
func resetFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Changed {
			f.Value.Set(f.DefValue)
			f.Changed = false
		}
	})
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// isolate runs the test in an empty directory with the mock provider and no
// ambient credentials.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	for _, k := range []string{
		"AUDITOR_MODEL", "AUDITOR_API_KEY", "AUDITOR_BASE_URL", "AUDITOR_LANGUAGE",
		"AUDITOR_STRATEGY", "AUDITOR_STORE_TYPE", "AUDITOR_STORE_PATH",
		"AUDITOR_PROFILE_SIZES", "AUDITOR_METRICS_ADDR", "AUDITOR_LOG_FILE",
		"GEMINI_API_KEY", "OPENAI_API_KEY", "OPENROUTER_API_KEY",
	} {
		t.Setenv(k, "")
	}
	t.Setenv("AUDITOR_PROVIDER", "mock")
	return dir
}

// useAgent makes every command talk to a.
func useAgent(t *testing.T, a agent.Agent) {
	t.Helper()
	original := agentClientFactory
	agentClientFactory = func(ctx context.Context, c *config.Config, model string) (agent.Agent, error) {
		return a, nil
	}
	t.Cleanup(func() { agentClientFactory = original })
}

// answerWith replaces interactive prompts with canned answers keyed by
// prompt message. Confirm prompts always answer yes.
func answerWith(t *testing.T, answers map[string]string) *[]string {
	t.Helper()
	var asked []string
	original := askOneFunc
	askOneFunc = func(p survey.Prompt, response interface{}, opts ...survey.AskOpt) error {
		switch q := p.(type) {
		case *survey.Input:
			asked = append(asked, q.Message)
			*(response.(*string)) = answers[q.Message]
		case *survey.Select:
			asked = append(asked, q.Message)
			*(response.(*string)) = answers[q.Message]
		case *survey.Confirm:
			asked = append(asked, q.Message)
			*(response.(*bool)) = true
		default:
			return fmt.Errorf("unexpected prompt %T", p)
		}
		return nil
	}
	t.Cleanup(func() { askOneFunc = original })
	return &asked
}

// MockAgentClient is a mock implementation of agent.Agent
type MockAgentClient struct {
	mock.Mock
}

func (m *MockAgentClient) Send(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}
