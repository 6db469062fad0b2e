// SPDX-License-Identifier: MPL-2.0

//go:build unix

package launcher

import (
	"syscall"

	"github.com/invowk/jarrunner/internal/cmdline"
)

// sysProcAttr starts detached children in their own session so that they
// outlive the launcher's terminal, if any.
func sysProcAttr(_ cmdline.CommandSpec, interactive bool) *syscall.SysProcAttr {
	if interactive {
		return nil
	}
	return &syscall.SysProcAttr{Setsid: true}
}
