// SPDX-License-Identifier: MPL-2.0

//go:build !windows

package platform

// ShowDialog always returns ErrDialogUnavailable; callers fall back to logging.
func ShowDialog(string, string, DialogKind) error {
	return ErrDialogUnavailable
}
