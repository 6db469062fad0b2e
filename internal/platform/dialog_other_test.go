// SPDX-License-Identifier: MPL-2.0

//go:build !windows

package platform

import (
	"errors"
	"testing"
)

func TestShowDialog_Unavailable(t *testing.T) {
	t.Parallel()

	if err := ShowDialog("title", "message", DialogError); !errors.Is(err, ErrDialogUnavailable) {
		t.Errorf("ShowDialog() error = %v, want ErrDialogUnavailable", err)
	}
}
