package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// ── warm palette ──
var (
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
	info    = lipgloss.Color("#8B949E") // soft blue-gray
)

// RenderFatal writes the error that terminated a run as a single line.
func RenderFatal(w io.Writer, err error) {
	r := lipgloss.NewRenderer(w)
	tag := r.NewStyle().Foreground(danger).Bold(true).Render("[FATAL]")
	fmt.Fprintf(w, "%s %v\n", tag, err)
}
