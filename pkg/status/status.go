// Package status prints the paired "Checking for ... : result" lines that
// tell an operator what configuration found and where it stopped.
package status

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// lineJust is the column the ':' separator is aligned to.
const lineJust = 40

var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

// Reporter writes start/end status pairs. A Start must be followed by
// exactly one of End, Fail or Warn before the next Start.
type Reporter struct {
	mu      sync.Mutex
	w       io.Writer
	plain   bool
	pending string
}

// New returns a Reporter writing styled lines to w.
func New(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

// NewPlain returns a Reporter that writes without terminal styling.
func NewPlain(w io.Writer) *Reporter {
	return &Reporter{w: w, plain: true}
}

// Discard returns a Reporter that drops everything.
func Discard() *Reporter {
	return &Reporter{w: io.Discard, plain: true}
}

// Start begins a check. A previous check left open is closed as failed.
func (r *Reporter) Start(msg string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.pending != "" {
		r.finish("(interrupted)", failStyle)
	}
	r.pending = msg
	fmt.Fprintf(r.w, "%s: ", pad(msg))
}

// Startf is Start with formatting.
func (r *Reporter) Startf(format string, args ...any) {
	r.Start(fmt.Sprintf(format, args...))
}

// End closes the current check with a successful result.
func (r *Reporter) End(result string) {
	r.close(result, okStyle)
}

// Fail closes the current check with a failure.
func (r *Reporter) Fail(result string) {
	r.close(result, failStyle)
}

// Warn closes the current check with a non-fatal note.
func (r *Reporter) Warn(result string) {
	r.close(result, warnStyle)
}

func (r *Reporter) close(result string, style lipgloss.Style) {
	if r == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.finish(result, style)
}

func (r *Reporter) finish(result string, style lipgloss.Style) {
	if r.pending == "" {
		return
	}
	r.pending = ""
	if !r.plain {
		result = style.Render(result)
	}
	fmt.Fprintln(r.w, result)
}

func pad(msg string) string {
	if len(msg) >= lineJust {
		return msg + " "
	}
	return msg + strings.Repeat(" ", lineJust-len(msg))
}
