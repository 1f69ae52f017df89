// Package notify defines the structured notice collaborator the analytics
// core reports through. The core never renders its own UI; it emits
// (title, description, severity) triples and lets the caller decide how to
// display them.
package notify

import (
	"github.com/fatih/color"
	"github.com/mwiater/evalscope/internal/logging"
)

// Severity classifies a notice.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Notifier receives every user-visible success/warning/error signal.
type Notifier interface {
	Notify(title, description string, severity Severity)
}

// Console prints notices to the terminal, colored by severity, and mirrors
// them into the application log.
type Console struct{}

// NewConsole returns a terminal notifier.
func NewConsole() *Console { return &Console{} }

// Notify implements Notifier.
func (c *Console) Notify(title, description string, severity Severity) {
	logging.LogNotice(string(severity), title, description)

	var paint *color.Color
	switch severity {
	case SeveritySuccess:
		paint = color.New(color.FgGreen)
	case SeverityWarning:
		paint = color.New(color.FgYellow)
	case SeverityError:
		paint = color.New(color.FgRed, color.Bold)
	default:
		paint = color.New(color.FgCyan)
	}

	if description == "" {
		paint.Printf("%s\n", title)
		return
	}
	paint.Printf("%s: ", title)
	color.New(color.Faint).Printf("%s\n", description)
}

// Notice is one captured notification.
type Notice struct {
	Title       string
	Description string
	Severity    Severity
}

// Recorder collects notices in memory. The TUI drains it into its status
// bar; tests assert against it.
type Recorder struct {
	Notices []Notice
}

// NewRecorder returns an empty in-memory notifier.
func NewRecorder() *Recorder { return &Recorder{} }

// Notify implements Notifier.
func (r *Recorder) Notify(title, description string, severity Severity) {
	logging.LogNotice(string(severity), title, description)
	r.Notices = append(r.Notices, Notice{Title: title, Description: description, Severity: severity})
}

// Drain returns all pending notices and clears the recorder.
func (r *Recorder) Drain() []Notice {
	out := r.Notices
	r.Notices = nil
	return out
}
