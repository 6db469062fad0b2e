// SPDX-License-Identifier: MPL-2.0

package platform

import "errors"

// DialogKind selects the icon of a modal notification.
type DialogKind int

const (
	// DialogInfo shows an information icon.
	DialogInfo DialogKind = iota
	// DialogError shows an error icon.
	DialogError
)

// ErrDialogUnavailable is returned by ShowDialog on hosts without a native
// modal message box.
var ErrDialogUnavailable = errors.New("modal dialogs are not available on this platform")
