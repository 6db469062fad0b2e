// SPDX-License-Identifier: MPL-2.0

package notify

import "github.com/charmbracelet/lipgloss"

// Color palette shared by console messages.
const (
	// ColorError is red - used for error headers.
	ColorError = lipgloss.Color("#EF4444")

	// ColorInfo is blue - used for informational headers.
	ColorInfo = lipgloss.Color("#3B82F6")
)

// styles are bound to one lipgloss renderer so that color output follows the
// capabilities of the writer they print to.
type styles struct {
	errorHeader lipgloss.Style
	infoHeader  lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		errorHeader: r.NewStyle().Bold(true).Foreground(ColorError),
		infoHeader:  r.NewStyle().Bold(true).Foreground(ColorInfo),
	}
}

func (s styles) header(k Kind) lipgloss.Style {
	if k == KindError {
		return s.errorHeader
	}
	return s.infoHeader
}
