package console

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ANSI palette indices used by the report.
const (
	colorRed      = lipgloss.Color("1")
	colorGreen    = lipgloss.Color("2")
	colorCyan     = lipgloss.Color("6")
	colorGray     = lipgloss.Color("7")
	colorDarkGray = lipgloss.Color("8")
)

// Styles groups the text styles of the report.
type Styles struct {
	Label   lipgloss.Style
	Success lipgloss.Style
	Bracket lipgloss.Style
	Failure lipgloss.Style
	Detail  lipgloss.Style
}

// NewStyles builds the report styles for output going to w.
// With noColor set every style renders plain text.
func NewStyles(w io.Writer, noColor bool) Styles {
	renderer := lipgloss.NewRenderer(w)
	if noColor {
		renderer.SetColorProfile(termenv.Ascii)
	}

	base := renderer.NewStyle().TabWidth(lipgloss.NoTabConversion)
	return Styles{
		Label:   base.Foreground(colorCyan),
		Success: base.Foreground(colorGreen),
		Bracket: base.Foreground(colorDarkGray),
		Failure: base.Foreground(colorRed),
		Detail:  base.Foreground(colorGray),
	}
}

// paint renders text line by line so multi-line values (PEM blocks, stack traces)
// keep their own line lengths instead of being padded to the widest line.
func paint(style lipgloss.Style, text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = style.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}
