package agent

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestMockAgent(t *testing.T) {
	agent := NewMockAgent()

	prompt := "This is a test prompt that is long enough to be truncated"
	response, err := agent.Send(context.Background(), prompt)

	if err != nil {
		t.Fatalf("Send failed: %v", err)
	}

	if !strings.Contains(response, "Mock agent response") {
		t.Errorf("Response missing prefix, got: %s", response)
	}

	if !strings.Contains(response, "I received your prompt") {
		t.Errorf("Response missing body, got: %s", response)
	}
}

func TestMockAgent_SetResponse(t *testing.T) {
	agent := NewMockAgent()
	agent.SetResponse("def f(n):\n    return n")

	got, err := agent.Send(context.Background(), "anything")
	if err != nil {
		t.Fatalf("Send failed: %v", err)
	}
	if got != "def f(n):\n    return n" {
		t.Errorf("unexpected response: %q", got)
	}
}

func TestMockAgent_Responder(t *testing.T) {
	agent := NewMockAgent()
	boom := errors.New("boom")
	agent.SetResponder(func(p string) (string, error) {
		if strings.Contains(p, "fail") {
			return "", boom
		}
		return "echo: " + p, nil
	})

	got, err := agent.Send(context.Background(), "hi")
	if err != nil || got != "echo: hi" {
		t.Errorf("got %q, %v", got, err)
	}
	if _, err := agent.Send(context.Background(), "please fail"); !errors.Is(err, boom) {
		t.Errorf("expected boom, got %v", err)
	}

	prompts := agent.Prompts()
	if len(prompts) != 2 || prompts[0] != "hi" {
		t.Errorf("unexpected recorded prompts: %v", prompts)
	}
}

func TestTruncateString(t *testing.T) {
	s := "hello world"
	if truncateString(s, 5) != "hello" {
		t.Errorf("Expected 'hello', got '%s'", truncateString(s, 5))
	}
	if truncateString(s, 20) != "hello world" {
		t.Errorf("Expected 'hello world', got '%s'", truncateString(s, 20))
	}
}
