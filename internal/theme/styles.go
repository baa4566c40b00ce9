package theme

import "github.com/charmbracelet/lipgloss"

// Console chat styles
var (
	BotStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	ButtonDataStyle = lipgloss.NewStyle().
			Foreground(ColorButton).
			Bold(true)

	ButtonLabelStyle = lipgloss.NewStyle().
				Foreground(ColorSubtle)

	CaptionStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true)

	PhotoStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)

	PinnedStyle = lipgloss.NewStyle().
			Foreground(ColorPinned).
			Bold(true)

	PromptStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true)
)

// Dialog header styles
var (
	AppNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	TaglineStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	VersionStyle = lipgloss.NewStyle().
			Foreground(ColorVersion)
)

// Error style
var ErrorStyle = lipgloss.NewStyle().
	Foreground(ColorError).
	Bold(true)

// StateStyle returns the style for a session state label
func StateStyle(state string) lipgloss.Style {
	switch state {
	case "collecting":
		return lipgloss.NewStyle().Foreground(ColorCollecting)
	case "waiting_for_case":
		return lipgloss.NewStyle().Foreground(ColorWaiting)
	default:
		return lipgloss.NewStyle().Foreground(ColorIdle)
	}
}
