package ui

import (
	"strings"
	"testing"
)

func TestBanner(t *testing.T) {
	banner := Banner("AI Validation & RLHF Workbench")
	if banner == "" {
		t.Error("Banner should not be empty")
	}
	if !strings.Contains(banner, "|") {
		t.Error("Banner should contain ASCII characters")
	}
	if !strings.Contains(banner, "RLHF Workbench") {
		t.Error("Banner should contain the subtitle")
	}

	if Banner("x") != Banner("x") {
		t.Error("Banner should be deterministic")
	}
}
