// SPDX-License-Identifier: MPL-2.0

package notify

import (
	"errors"

	"github.com/invowk/jarrunner/internal/platform"

	"github.com/charmbracelet/log"
)

// DialogNotifier shows messages in a modal message box. Where the host has no
// message box the message goes to the logger instead.
type DialogNotifier struct {
	// Show displays the box; nil means platform.ShowDialog.
	Show   func(title, message string, kind platform.DialogKind) error
	Logger *log.Logger
}

// NewDialogNotifier returns a notifier using the host message box.
func NewDialogNotifier(logger *log.Logger) *DialogNotifier {
	return &DialogNotifier{Show: platform.ShowDialog, Logger: logger}
}

// Notify shows msg and blocks until the user dismisses it.
func (n *DialogNotifier) Notify(msg Message) error {
	text := msg.Body
	if msg.Issue != nil {
		text += "\n\n" + msg.Issue.Text()
	}

	kind := platform.DialogInfo
	if msg.Kind == KindError {
		kind = platform.DialogError
	}

	show := n.Show
	if show == nil {
		show = platform.ShowDialog
	}
	err := show(msg.Title, text, kind)
	if err == nil {
		return nil
	}

	logger := n.Logger
	if logger == nil {
		logger = discardLogger()
	}
	if errors.Is(err, platform.ErrDialogUnavailable) {
		// Print bypasses the level filter so diagnostics survive the default
		// warn level.
		if msg.Kind == KindError {
			logger.Error(msg.Title, "message", msg.Body)
		} else {
			logger.Print(msg.Title, "message", msg.Body)
		}
		return nil
	}
	logger.Error(msg.Title, "message", msg.Body, "dialog_err", err)
	return err
}
