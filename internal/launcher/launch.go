// SPDX-License-Identifier: MPL-2.0

package launcher

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/invowk/jarrunner/internal/cmdline"
	"github.com/invowk/jarrunner/internal/mode"
	"github.com/invowk/jarrunner/pkg/types"
)

// ErrLaunchFailed is the sentinel error wrapped by LaunchError.
var ErrLaunchFailed = errors.New("failed to launch java process")

type (
	// ProcessResult is the outcome of one launch.
	ProcessResult struct {
		// ExitCode is the child's exit code in interactive mode and 0 after a
		// successful detached launch.
		ExitCode     types.ExitCode
		LaunchFailed bool
		// OSErrorCode is the host error number of a failed launch; valid when
		// HasOSErrorCode is set.
		OSErrorCode    uint32
		HasOSErrorCode bool
	}

	// Process is a started child.
	Process interface {
		// Wait blocks until the child exits and returns its exit code.
		Wait() (types.ExitCode, error)
		// Release gives up ownership of the child without waiting.
		Release() error
	}

	// Starter spawns the child described by spec. interactive selects
	// inherited standard streams.
	Starter interface {
		Start(spec cmdline.CommandSpec, interactive bool) (Process, error)
	}

	// LaunchError reports that the host refused to create the child process.
	LaunchError struct {
		Executable  string
		CommandLine string
		// Code is the host error number; valid when HasCode is set.
		Code    uint32
		HasCode bool
		Cause   error
	}
)

// Launch starts spec and, for interactive contexts, waits for the child and
// returns its exit code unchanged. Non-interactive launches release the child
// right after it started and report success. There is no timeout and no
// cancellation once the child runs; ctx is only checked before spawning.
func Launch(ctx context.Context, starter Starter, spec cmdline.CommandSpec, ictx mode.InvocationContext) (ProcessResult, error) {
	if err := ctx.Err(); err != nil {
		return ProcessResult{ExitCode: types.ExitFailure, LaunchFailed: true}, err
	}

	proc, err := starter.Start(spec, ictx.Interactive)
	if err != nil {
		launchErr := newLaunchError(spec, err)
		return ProcessResult{
			ExitCode:       types.ExitFailure,
			LaunchFailed:   true,
			OSErrorCode:    launchErr.Code,
			HasOSErrorCode: launchErr.HasCode,
		}, launchErr
	}

	if !ictx.Interactive {
		// The child is already running; failing to drop the handle does not
		// change the outcome of the launch.
		_ = proc.Release()
		return ProcessResult{ExitCode: types.ExitSuccess}, nil
	}

	// Ctrl+C reaches the whole console group; the child decides how to react
	// and the launcher keeps waiting for its exit code.
	stop := ignoreInterrupts()
	defer stop()

	code, err := proc.Wait()
	if err != nil {
		return ProcessResult{ExitCode: types.ExitFailure}, fmt.Errorf("wait for %s: %w", spec.ExecutablePath, err)
	}
	return ProcessResult{ExitCode: code}, nil
}

func ignoreInterrupts() func() {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt)
	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-ch:
			case <-done:
				return
			}
		}
	}()
	return func() {
		signal.Stop(ch)
		close(done)
	}
}

func newLaunchError(spec cmdline.CommandSpec, cause error) *LaunchError {
	e := &LaunchError{
		Executable:  spec.ExecutablePath,
		CommandLine: spec.CommandLine(),
		Cause:       cause,
	}
	var errno syscall.Errno
	if errors.As(cause, &errno) {
		e.Code = uint32(errno)
		e.HasCode = true
	}
	return e
}

// Error implements the error interface.
func (e *LaunchError) Error() string {
	if e.HasCode {
		return fmt.Sprintf("failed to launch %s (error code %d): %v", e.Executable, e.Code, e.Cause)
	}
	return fmt.Sprintf("failed to launch %s: %v", e.Executable, e.Cause)
}

// Unwrap returns ErrLaunchFailed and the cause for errors.Is() compatibility.
func (e *LaunchError) Unwrap() []error { return []error{ErrLaunchFailed, e.Cause} }
