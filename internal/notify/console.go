// SPDX-License-Identifier: MPL-2.0

package notify

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// defaultIssueStyle lets glamour choose a dark or light theme.
const defaultIssueStyle = "auto"

// ConsoleNotifier prints messages to a terminal stream.
type ConsoleNotifier struct {
	out    io.Writer
	styles styles
	// IssueStyle is the glamour style used for issue guidance.
	IssueStyle string
	// HideIssues suppresses issue guidance.
	HideIssues bool
}

// NewConsoleNotifier returns a notifier writing to out. Colors are used only
// when out is a terminal that supports them.
func NewConsoleNotifier(out io.Writer) *ConsoleNotifier {
	return &ConsoleNotifier{
		out:        out,
		styles:     newStyles(lipgloss.NewRenderer(out)),
		IssueStyle: defaultIssueStyle,
	}
}

// Notify prints
//
//	[ERROR] <title>
//	<body>
//
// followed by the rendered issue guidance, if any.
func (n *ConsoleNotifier) Notify(msg Message) error {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(n.styles.header(msg.Kind).Render(fmt.Sprintf("[%s] %s", msg.Kind, msg.Title)))
	b.WriteString("\n")
	// The body is printed verbatim; styling multi-line text would pad it.
	b.WriteString(msg.Body)
	b.WriteString("\n\n")

	if msg.Issue != nil && !n.HideIssues {
		// Guidance is optional; the message itself has already been built.
		if rendered, err := msg.Issue.Render(n.IssueStyle); err == nil {
			b.WriteString(rendered)
		}
	}

	_, err := io.WriteString(n.out, b.String())
	return err
}
