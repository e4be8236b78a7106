package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	primaryColor   = lipgloss.Color("#7C3AED")
	secondaryColor = lipgloss.Color("#6B7280")
	successColor   = lipgloss.Color("#10B981")
	chipColor      = lipgloss.Color("#EDE9FE")
	dangerColor    = lipgloss.Color("#EF4444")

	// Status bar
	statusBarStyle = lipgloss.NewStyle().
			Background(primaryColor).
			Foreground(lipgloss.Color("#FFFFFF")).
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true)

	// Chips
	chipStyle = lipgloss.NewStyle().
			Background(chipColor).
			Foreground(lipgloss.Color("#1F2937"))

	chipRemoveStyle = lipgloss.NewStyle().
			Background(chipColor).
			Foreground(dangerColor).
			Bold(true)

	avatarStyle = lipgloss.NewStyle().
			Background(successColor).
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true)

	// Dropdown
	rowStyle = lipgloss.NewStyle()

	highlightRowStyle = lipgloss.NewStyle().
				Foreground(primaryColor).
				Bold(true)

	mailStyle = lipgloss.NewStyle().
			Foreground(secondaryColor)

	emptyStyle = lipgloss.NewStyle().
			Foreground(secondaryColor).
			Italic(true)

	// Input area
	inputPromptStyle = lipgloss.NewStyle().
				Foreground(primaryColor)
)
