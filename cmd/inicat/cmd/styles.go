package cmd

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	ColorPrimary   = lipgloss.Color("#8B5CF6") // Violet
	ColorSecondary = lipgloss.Color("#06B6D4") // Cyan
	ColorError     = lipgloss.Color("#EF4444") // Red
	ColorMuted     = lipgloss.Color("#6B7280") // Gray
)

// styles renders command output. Colors are only emitted when the output
// is a terminal.
type styles struct {
	section lipgloss.Style
	option  lipgloss.Style
	raw     lipgloss.Style
	failed  lipgloss.Style
}

func newStyles(w io.Writer) styles {
	if noColor {
		plain := lipgloss.NewStyle()
		return styles{section: plain, option: plain, raw: plain, failed: plain}
	}
	r := lipgloss.NewRenderer(w)
	return styles{
		section: r.NewStyle().Foreground(ColorPrimary).Bold(true),
		option:  r.NewStyle().Foreground(ColorSecondary),
		raw:     r.NewStyle().Foreground(ColorMuted).Italic(true),
		failed:  r.NewStyle().Foreground(ColorError),
	}
}
