package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const separatorWidth = 72

// LineReporter implements domain.Reporter by writing one tagged line per
// message to w. Colours are only emitted when w is a terminal.
type LineReporter struct {
	w         io.Writer
	infoTag   string
	warnTag   string
	errorTag  string
	separator string
	success   lipgloss.Style
}

// NewLineReporter creates a reporter writing to w.
func NewLineReporter(w io.Writer) *LineReporter {
	r := lipgloss.NewRenderer(w)
	return &LineReporter{
		w:         w,
		infoTag:   r.NewStyle().Foreground(info).Render("[INFO]"),
		warnTag:   r.NewStyle().Foreground(warning).Bold(true).Render("[WARN]"),
		errorTag:  r.NewStyle().Foreground(danger).Bold(true).Render("[ERROR]"),
		separator: r.NewStyle().Foreground(faint).Render(strings.Repeat("-", separatorWidth)),
		success:   r.NewStyle().Foreground(success).Bold(true),
	}
}

func (r *LineReporter) Info(msg string)  { r.line(r.infoTag, msg) }
func (r *LineReporter) Warn(msg string)  { r.line(r.warnTag, msg) }
func (r *LineReporter) Error(msg string) { r.line(r.errorTag, msg) }

func (r *LineReporter) Separator() { r.line(r.infoTag, r.separator) }

// Success writes an info-level line highlighted as a passing result.
func (r *LineReporter) Success(msg string) { r.line(r.infoTag, r.success.Render(msg)) }

func (r *LineReporter) line(tag, msg string) {
	fmt.Fprintf(r.w, "%s %s\n", tag, msg)
}
