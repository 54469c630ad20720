package ui

import "charm.land/lipgloss/v2"

// Color palette
var (
	ColorMuted   = lipgloss.Color("#6B7280") // Gray
	ColorWarning = lipgloss.Color("#F59E0B") // Amber for notices
	ColorError   = lipgloss.Color("#EF4444") // Red for errors
	ColorSuccess = lipgloss.Color("#10B981") // Green for success
	ColorPrompt  = lipgloss.Color("#7C3AED") // Purple
)

// Result line prefix styles
var (
	SuccessPrefixStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorSuccess)

	NoticePrefixStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorWarning)

	ErrorPrefixStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorError)
)

// Shell chrome styles
var (
	PromptStyle = lipgloss.NewStyle().
			Foreground(ColorPrompt)

	FarewellStyle = lipgloss.NewStyle().
			Italic(true).
			Foreground(ColorMuted)
)
