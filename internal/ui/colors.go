package ui

import "github.com/charmbracelet/lipgloss"

// Color palette for the tool's own chrome (labels, headings, errors),
// distinct from the scheme colors being previewed
var (
	ColorHeading = lipgloss.Color("212") // Pink/magenta for section headings
	ColorLabel   = lipgloss.Color("252") // Light gray for slot labels
	ColorMuted   = lipgloss.Color("241") // Gray for hints and hex values
	ColorError   = lipgloss.Color("196") // Red for errors
)
