// SPDX-License-Identifier: MPL-2.0

//go:build !unix && !windows

package launcher

import (
	"syscall"

	"github.com/invowk/jarrunner/internal/cmdline"
)

func sysProcAttr(cmdline.CommandSpec, bool) *syscall.SysProcAttr {
	return nil
}
