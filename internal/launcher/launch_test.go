// SPDX-License-Identifier: MPL-2.0

package launcher

import (
	"context"
	"errors"
	"strings"
	"syscall"
	"testing"

	"github.com/invowk/jarrunner/internal/cmdline"
	"github.com/invowk/jarrunner/internal/mode"
	"github.com/invowk/jarrunner/pkg/types"
)

func testSpec(t *testing.T) cmdline.CommandSpec {
	t.Helper()
	inv, err := cmdline.Parse(`jarrunner app.jar --flag "a b"`)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	return cmdline.Builder{OmitTiming: true}.Build("/jdk/bin/java", cmdline.Stamps{}, nil, inv)
}

func TestLaunch_InteractiveReturnsChildCode(t *testing.T) {
	t.Parallel()

	proc := &fakeProcess{code: 42}
	starter := &fakeStarter{proc: proc}

	result, err := Launch(context.Background(), starter, testSpec(t), mode.InvocationContext{Interactive: true})
	if err != nil {
		t.Fatalf("Launch() error = %v", err)
	}
	if result.ExitCode != 42 || result.LaunchFailed {
		t.Errorf("Launch() = %+v, want exit code 42", result)
	}
	if !proc.waited || proc.released {
		t.Errorf("waited=%v released=%v, want waited only", proc.waited, proc.released)
	}
	if len(starter.calls) != 1 || !starter.calls[0].interactive {
		t.Errorf("Start() calls = %+v, want one interactive call", starter.calls)
	}
}

func TestLaunch_DetachedReleasesChild(t *testing.T) {
	t.Parallel()

	proc := &fakeProcess{code: 42}
	starter := &fakeStarter{proc: proc}

	result, err := Launch(context.Background(), starter, testSpec(t), mode.InvocationContext{})
	if err != nil {
		t.Fatalf("Launch() error = %v", err)
	}
	if result.ExitCode != types.ExitSuccess {
		t.Errorf("ExitCode = %d, want 0", result.ExitCode)
	}
	if proc.waited || !proc.released {
		t.Errorf("waited=%v released=%v, want released only", proc.waited, proc.released)
	}
}

func TestLaunch_WaitFailure(t *testing.T) {
	t.Parallel()

	waitErr := errors.New("wait: no child")
	starter := &fakeStarter{proc: &fakeProcess{waitErr: waitErr}}

	result, err := Launch(context.Background(), starter, testSpec(t), mode.InvocationContext{Interactive: true})
	if !errors.Is(err, waitErr) {
		t.Fatalf("Launch() error = %v, want %v", err, waitErr)
	}
	if result.ExitCode != types.ExitFailure {
		t.Errorf("ExitCode = %d, want 1", result.ExitCode)
	}
}

func TestLaunch_StartFailure(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		cause    error
		wantCode uint32
		hasCode  bool
	}{
		{name: "errno", cause: syscall.Errno(2), wantCode: 2, hasCode: true},
		{name: "wrapped errno", cause: &wrapErr{syscall.Errno(5)}, wantCode: 5, hasCode: true},
		{name: "no errno", cause: errors.New("boom")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			spec := testSpec(t)
			starter := &fakeStarter{err: tt.cause}
			result, err := Launch(context.Background(), starter, spec, mode.InvocationContext{Interactive: true})

			var launchErr *LaunchError
			if !errors.As(err, &launchErr) {
				t.Fatalf("Launch() error = %v, want *LaunchError", err)
			}
			if !errors.Is(err, ErrLaunchFailed) || !errors.Is(err, tt.cause) {
				t.Errorf("error %v does not wrap ErrLaunchFailed and the cause", err)
			}
			if launchErr.HasCode != tt.hasCode || launchErr.Code != tt.wantCode {
				t.Errorf("code = (%d, %v), want (%d, %v)", launchErr.Code, launchErr.HasCode, tt.wantCode, tt.hasCode)
			}
			if launchErr.CommandLine != spec.CommandLine() {
				t.Errorf("CommandLine = %q, want %q", launchErr.CommandLine, spec.CommandLine())
			}
			if !result.LaunchFailed || result.ExitCode != types.ExitFailure {
				t.Errorf("result = %+v, want failed launch with exit code 1", result)
			}
			if result.HasOSErrorCode != tt.hasCode || result.OSErrorCode != tt.wantCode {
				t.Errorf("result OS code = (%d, %v), want (%d, %v)", result.OSErrorCode, result.HasOSErrorCode, tt.wantCode, tt.hasCode)
			}
		})
	}
}

func TestLaunch_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	starter := &fakeStarter{proc: &fakeProcess{}}

	if _, err := Launch(ctx, starter, testSpec(t), mode.InvocationContext{Interactive: true}); !errors.Is(err, context.Canceled) {
		t.Fatalf("Launch() error = %v, want context.Canceled", err)
	}
	if len(starter.calls) != 0 {
		t.Errorf("Start() called %d times after cancellation", len(starter.calls))
	}
}

func TestLaunchError_Error(t *testing.T) {
	t.Parallel()

	withCode := &LaunchError{Executable: "/jdk/bin/java", Code: 2, HasCode: true, Cause: errors.New("no such file")}
	if got := withCode.Error(); !strings.Contains(got, "error code 2") || !strings.Contains(got, "/jdk/bin/java") {
		t.Errorf("Error() = %q", got)
	}
	withoutCode := &LaunchError{Executable: "java", Cause: errors.New("boom")}
	if got := withoutCode.Error(); strings.Contains(got, "error code") {
		t.Errorf("Error() = %q, want no error code", got)
	}
}

type wrapErr struct{ err error }

func (e *wrapErr) Error() string { return "start: " + e.err.Error() }
func (e *wrapErr) Unwrap() error { return e.err }
