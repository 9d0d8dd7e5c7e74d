package cli

import (
	"fmt"
	"io"
	"strings"
)

// ColorTheme represents a set of colors for the CLI
type ColorTheme struct {
	Name       string
	Success    string
	Error      string
	Warning    string
	Info       string
	Header     string
	Logo       string
	BoxOutline string
}

// Available themes
var (
	DefaultTheme = ColorTheme{
		Name:       "default",
		Success:    colorGreen,
		Error:      colorRed,
		Warning:    colorYellow,
		Info:       colorBlue,
		Header:     colorCyan + colorBold,
		Logo:       colorGreen,
		BoxOutline: colorCyan,
	}

	// PlainTheme prints no escape codes, for pipes and tests
	PlainTheme = ColorTheme{Name: "plain"}
)

// Current active theme, starts with default
var CurrentTheme = DefaultTheme

// Terminal colors
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorCyan   = "\033[36m"
	colorBold   = "\033[1m"
)

func paint(color, s string) string {
	if color == "" {
		return s
	}
	return color + s + colorReset
}

// PrintSuccess prints a success message
func PrintSuccess(w io.Writer, message string) {
	fmt.Fprintln(w, paint(CurrentTheme.Success, "✓ "+message))
}

// PrintError prints an error message
func PrintError(w io.Writer, message string) {
	fmt.Fprintln(w, paint(CurrentTheme.Error, "✗ "+message))
}

// PrintWarning prints a warning message
func PrintWarning(w io.Writer, message string) {
	fmt.Fprintln(w, paint(CurrentTheme.Warning, "! "+message))
}

// PrintInfo prints an informational message
func PrintInfo(w io.Writer, message string) {
	fmt.Fprintln(w, paint(CurrentTheme.Info, "ℹ "+message))
}

// PrintHeader prints a section header
func PrintHeader(w io.Writer, message string) {
	fmt.Fprintln(w, "\n"+paint(CurrentTheme.Header, message))
	fmt.Fprintln(w, strings.Repeat("─", len([]rune(message))))
}

// DrawBox creates a colored box around content
func DrawBox(content, color string) string {
	lines := strings.Split(content, "\n")
	maxLen := 0
	for _, line := range lines {
		if n := len([]rune(line)); n > maxLen {
			maxLen = n
		}
	}

	var b strings.Builder
	b.WriteString("┌" + strings.Repeat("─", maxLen+2) + "┐\n")
	for _, line := range lines {
		b.WriteString("│ " + line + strings.Repeat(" ", maxLen-len([]rune(line))) + " │\n")
	}
	b.WriteString("└" + strings.Repeat("─", maxLen+2) + "┘")

	return paint(color, b.String())
}

// DrawBoxWithTheme creates a colored box using the current theme
func DrawBoxWithTheme(content string) string {
	return DrawBox(content, CurrentTheme.BoxOutline)
}

// DrawLogo generates the ASCII art logo for swm.cc.
func DrawLogo() string {
	logo := `
 ███████╗██╗    ██╗███╗   ███╗    ██████╗ ██████╗
 ██╔════╝██║    ██║████╗ ████║   ██╔════╝██╔════╝
 ███████╗██║ █╗ ██║██╔████╔██║   ██║     ██║
 ╚════██║██║███╗██║██║╚██╔╝██║   ██║     ██║
 ███████║╚███╔███╔╝██║ ╚═╝ ██║██╗╚██████╗╚██████╗
 ╚══════╝ ╚══╝╚══╝ ╚═╝     ╚═╝╚═╝ ╚═════╝ ╚═════╝`

	return paint(CurrentTheme.Logo, logo)
}
