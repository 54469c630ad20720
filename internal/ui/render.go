package ui

import (
	"charm.land/lipgloss/v2"
	"github.com/zhubert/dirshell/internal/config"
)

// Renderer turns result messages into single output lines.
type Renderer struct {
	prefixes config.Prefixes
	color    bool
}

// NewRenderer returns a Renderer. When color is false every method
// returns plain text.
func NewRenderer(prefixes config.Prefixes, color bool) *Renderer {
	return &Renderer{prefixes: prefixes, color: color}
}

func (r *Renderer) style(s lipgloss.Style, text string) string {
	if !r.color || text == "" {
		return text
	}
	return s.Render(text)
}

// Success renders a success-class line.
func (r *Renderer) Success(msg string) string {
	return r.style(SuccessPrefixStyle, r.prefixes.Success) + msg
}

// Notice renders a line for the informational "nothing found" class.
func (r *Renderer) Notice(msg string) string {
	return r.style(NoticePrefixStyle, r.prefixes.Notice) + msg
}

// Error renders a failure line.
func (r *Renderer) Error(msg string) string {
	return r.style(ErrorPrefixStyle, r.prefixes.Error) + msg
}

// Prompt renders the input prompt.
func (r *Renderer) Prompt(prompt string) string {
	return r.style(PromptStyle, prompt)
}

// Farewell renders the end of input line.
func (r *Renderer) Farewell(msg string) string {
	return r.style(FarewellStyle, msg)
}
