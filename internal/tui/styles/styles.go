package styles

import (
	"swmterm/internal/config"

	"github.com/charmbracelet/lipgloss"
)

// Styles defines the core UI styles
type Styles struct {
	App    lipgloss.Style
	Title  lipgloss.Style
	Prompt lipgloss.Style
	Output lipgloss.Style
	Error  lipgloss.Style
	Muted  lipgloss.Style
	Image  lipgloss.Style
	Help   lipgloss.Style
	Status lipgloss.Style
}

// New builds the styles from a colour theme.
func New(theme config.Theme) Styles {
	return Styles{
		App: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(theme.Border)).
			Padding(0, 1),
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(theme.Primary)).
			MarginBottom(1),
		Prompt: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Success)).
			Bold(true),
		Output: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Info)),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Error)),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Muted)),
		Image: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(theme.Emphasis)).
			Foreground(lipgloss.Color(theme.Emphasis)).
			Padding(0, 2),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Muted)),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Warning)),
	}
}

// Default is New applied to the default theme.
func Default() Styles {
	return New(config.New().Theme)
}
