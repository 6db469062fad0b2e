// SPDX-License-Identifier: MPL-2.0

package launcher

import (
	"syscall"

	"github.com/invowk/jarrunner/internal/cmdline"
)

// sysProcAttr hands the assembled command line to CreateProcess verbatim so
// that the forwarded arguments keep their original quoting.
func sysProcAttr(spec cmdline.CommandSpec, _ bool) *syscall.SysProcAttr {
	return &syscall.SysProcAttr{CmdLine: spec.CommandLine()}
}
