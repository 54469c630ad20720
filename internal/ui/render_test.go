package ui

import (
	"strings"
	"testing"

	"github.com/zhubert/dirshell/internal/config"
)

func TestRenderer_Plain(t *testing.T) {
	r := NewRenderer(config.Defaults().Prefixes, false)

	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{"success", r.Success("PATH:/"), "SUCC: PATH:/"},
		{"notice", r.Notice("No directories found"), "Something Bad Happened! No directories found"},
		{"error", r.Error("Invalid Path"), "ERR: Invalid Path"},
		{"prompt", r.Prompt("> "), "> "},
		{"farewell", r.Farewell("Have a great day!"), "Have a great day!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("got %q, want %q", tt.got, tt.expected)
			}
		})
	}
}

func TestRenderer_ColorKeepsText(t *testing.T) {
	r := NewRenderer(config.Defaults().Prefixes, true)

	line := r.Error("Invalid Path")
	if !strings.Contains(line, "ERR:") {
		t.Errorf("colored line %q lost its prefix text", line)
	}
	if !strings.HasSuffix(line, "Invalid Path") {
		t.Errorf("colored line %q should end with the unstyled message", line)
	}
}

func TestRenderer_EmptyPrefix(t *testing.T) {
	r := NewRenderer(config.Prefixes{}, true)

	if got := r.Success("Created a"); got != "Created a" {
		t.Errorf("Success() = %q, want %q", got, "Created a")
	}
}
