// SPDX-License-Identifier: MPL-2.0

package launcher

import (
	"errors"
	"os"
	"os/exec"

	"github.com/invowk/jarrunner/internal/cmdline"
	"github.com/invowk/jarrunner/pkg/types"
)

type (
	// ExecStarter starts children with os/exec.
	ExecStarter struct{}

	execProcess struct {
		cmd *exec.Cmd
	}
)

// Start spawns spec. Interactive children share the launcher's standard
// streams; detached children get none.
func (ExecStarter) Start(spec cmdline.CommandSpec, interactive bool) (Process, error) {
	argv := spec.Argv()
	cmd := &exec.Cmd{
		Path:        spec.ExecutablePath,
		Args:        argv,
		SysProcAttr: sysProcAttr(spec, interactive),
	}
	if interactive {
		cmd.Stdin = os.Stdin
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
	}
	if err := cmd.Start(); err != nil {
		return nil, err
	}
	return &execProcess{cmd: cmd}, nil
}

func (p *execProcess) Wait() (types.ExitCode, error) {
	err := p.cmd.Wait()
	var exitErr *exec.ExitError
	if err == nil || errors.As(err, &exitErr) {
		return types.ExitCode(p.cmd.ProcessState.ExitCode()), nil
	}
	return types.ExitFailure, err
}

func (p *execProcess) Release() error {
	return p.cmd.Process.Release()
}
