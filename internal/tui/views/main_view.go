package views

import (
	"strings"

	"swmterm/internal/tui/common"
	"swmterm/internal/tui/styles"
	"swmterm/pkg/types"

	"github.com/charmbracelet/lipgloss"
)

// RenderMainView renders the splash while the terminal is closed and the
// terminal modal otherwise.
func RenderMainView(m common.ModelReader, st styles.Styles) string {
	if m.Mode() == types.Closed {
		return renderSplash(m, st)
	}

	var sb strings.Builder
	sb.WriteString(m.Transcript())
	if m.Mode() == types.Ready {
		sb.WriteString("\n" + m.InputView())
	}

	frame := st.App
	if w := m.Width(); w > 2 {
		frame = frame.Width(w - 2)
	}

	parts := []string{frame.Render(sb.String())}
	if status := m.StatusView(); status != "" {
		parts = append(parts, status)
	}
	parts = append(parts, m.HelpView())
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderSplash(m common.ModelReader, st styles.Styles) string {
	var sb strings.Builder
	sb.WriteString(RenderBanner(st))
	sb.WriteString("\n")
	sb.WriteString(st.Output.Render("Stephen McCullough · Software Engineer"))
	sb.WriteString("\n\n")
	sb.WriteString(st.Help.Render("Press ctrl+t or enter to open the terminal, ctrl+c to quit."))
	if status := m.StatusView(); status != "" {
		sb.WriteString("\n\n" + status)
	}
	return sb.String()
}

// RenderBanner renders the swm.cc logo.
func RenderBanner(st styles.Styles) string {
	return st.Title.Render(`
 ███████╗██╗    ██╗███╗   ███╗    ██████╗ ██████╗
 ██╔════╝██║    ██║████╗ ████║   ██╔════╝██╔════╝
 ███████╗██║ █╗ ██║██╔████╔██║   ██║     ██║
 ╚════██║██║███╗██║██║╚██╔╝██║   ██║     ██║
 ███████║╚███╔███╔╝██║ ╚═╝ ██║██╗╚██████╗╚██████╗
 ╚══════╝ ╚══╝╚══╝ ╚═╝     ╚═╝╚═╝ ╚═════╝ ╚═════╝`)
}
