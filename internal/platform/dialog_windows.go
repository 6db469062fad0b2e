// SPDX-License-Identifier: MPL-2.0

//go:build windows

package platform

import (
	"fmt"

	"golang.org/x/sys/windows"
)

const (
	mbOK              = 0x00000000
	mbIconError       = 0x00000010
	mbIconInformation = 0x00000040
	mbSetForeground   = 0x00010000
)

// ShowDialog displays a blocking MessageBox with the given title and message.
func ShowDialog(title, message string, kind DialogKind) error {
	titlePtr, err := windows.UTF16PtrFromString(title)
	if err != nil {
		return fmt.Errorf("encode dialog title: %w", err)
	}
	messagePtr, err := windows.UTF16PtrFromString(message)
	if err != nil {
		return fmt.Errorf("encode dialog message: %w", err)
	}

	flags := uint32(mbOK | mbSetForeground)
	switch kind {
	case DialogError:
		flags |= mbIconError
	default:
		flags |= mbIconInformation
	}

	if _, err := windows.MessageBox(0, messagePtr, titlePtr, flags); err != nil {
		return fmt.Errorf("MessageBox: %w", err)
	}
	return nil
}
