// SPDX-License-Identifier: MPL-2.0

package notify

import (
	"io"
	"os"

	"github.com/invowk/jarrunner/internal/issue"
	"github.com/invowk/jarrunner/internal/mode"

	"github.com/charmbracelet/log"
)

// Kind selects the severity of a message.
type Kind int

const (
	// KindInfo is a diagnostic or informational message.
	KindInfo Kind = iota
	// KindError reports a failure.
	KindError
)

type (
	// Message is one user-facing report.
	Message struct {
		Kind  Kind
		Title string
		Body  string
		// Issue optionally adds longer guidance from the issue catalog.
		Issue *issue.Issue
	}

	// Notifier delivers messages to the user.
	Notifier interface {
		Notify(msg Message) error
	}
)

// String returns the bracketed tag used in console output.
func (k Kind) String() string {
	if k == KindError {
		return "ERROR"
	}
	return "INFO"
}

// For returns the notifier matching ictx: a ConsoleNotifier on stdout for
// interactive runs, a DialogNotifier otherwise.
func For(ictx mode.InvocationContext, logger *log.Logger) Notifier {
	if ictx.Interactive {
		return NewConsoleNotifier(os.Stdout)
	}
	return NewDialogNotifier(logger)
}

func discardLogger() *log.Logger {
	return log.New(io.Discard)
}
