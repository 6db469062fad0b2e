// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"strings"
	"testing"
)

func TestActionableError_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      *ActionableError
		expected string
	}{
		{
			name:     "operation only",
			err:      &ActionableError{Operation: "load configuration"},
			expected: "failed to load configuration",
		},
		{
			name:     "operation with resource",
			err:      &ActionableError{Operation: "load configuration", Resource: "jarrunner.cue"},
			expected: "failed to load configuration: jarrunner.cue",
		},
		{
			name: "full context",
			err: &ActionableError{
				Operation: "launch java",
				Resource:  "/opt/jdk/bin/java",
				Cause:     errors.New("permission denied"),
			},
			expected: "failed to launch java: /opt/jdk/bin/java: permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestActionableError_ErrorsIs(t *testing.T) {
	t.Parallel()

	cause := errors.New("specific error")
	wrapped := &ActionableError{Operation: "test", Cause: cause}
	if !errors.Is(wrapped, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}
	if (&ActionableError{Operation: "test"}).Unwrap() != nil {
		t.Error("Unwrap() should return nil when no cause")
	}
}

func TestActionableError_Format(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      *ActionableError
		verbose  bool
		contains []string
		excludes []string
	}{
		{
			name: "suggestions",
			err: &ActionableError{
				Operation:   "load configuration",
				Resource:    "jarrunner.cue",
				Suggestions: []string{"Check the CUE syntax", "Remove unknown fields"},
			},
			contains: []string{"jarrunner.cue", "• Check the CUE syntax", "• Remove unknown fields"},
		},
		{
			name: "no error chain in non-verbose",
			err: &ActionableError{
				Operation: "load configuration",
				Cause:     errors.New("syntax error"),
			},
			contains: []string{"failed to load configuration: syntax error"},
			excludes: []string{"Error chain:"},
		},
		{
			name: "nested error chain verbose",
			err: &ActionableError{
				Operation: "load configuration",
				Cause: &ActionableError{
					Operation: "read file",
					Cause:     errors.New("file not found"),
				},
			},
			verbose: true,
			contains: []string{
				"Error chain:",
				"1. failed to read file: file not found",
				"2. file not found",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := tt.err.Format(tt.verbose)
			for _, s := range tt.contains {
				if !strings.Contains(got, s) {
					t.Errorf("Format() missing %q\ngot:\n%s", s, got)
				}
			}
			for _, s := range tt.excludes {
				if strings.Contains(got, s) {
					t.Errorf("Format() should not contain %q\ngot:\n%s", s, got)
				}
			}
		})
	}
}

func TestErrorContext_Build(t *testing.T) {
	t.Parallel()

	if NewErrorContext().WithResource("some/path").Build() != nil {
		t.Error("Build() without operation should return nil")
	}
	if NewErrorContext().BuildError() != nil {
		t.Error("BuildError() without operation should return nil")
	}

	err := NewErrorContext().
		WithOperation("load configuration").
		WithResource("/etc/jarrunner/config.cue").
		WithIssue(ConfigLoadFailedId).
		WithSuggestion("Check syntax").
		WithSuggestion("Verify permissions").
		Wrap(errors.New("parse error")).
		Build()
	if err == nil {
		t.Fatal("Build() returned nil")
	}
	if err.Operation != "load configuration" || err.Resource != "/etc/jarrunner/config.cue" {
		t.Errorf("Build() = %+v", err)
	}
	if err.Issue != ConfigLoadFailedId {
		t.Errorf("Issue = %d, want %d", err.Issue, ConfigLoadFailedId)
	}
	if !err.HasSuggestions() || len(err.Suggestions) != 2 {
		t.Errorf("Suggestions = %q, want 2", err.Suggestions)
	}
	if err.Cause == nil || err.Cause.Error() != "parse error" {
		t.Errorf("Cause = %v", err.Cause)
	}
}

func TestErrorContext_Reuse(t *testing.T) {
	t.Parallel()

	ctx := NewErrorContext().WithOperation("launch java").WithSuggestion("Check the JDK")

	err1 := ctx.Wrap(errors.New("error 1")).Build()
	err2 := ctx.Wrap(errors.New("error 2")).WithSuggestion("Retry").Build()

	if err1.Cause.Error() == err2.Cause.Error() {
		t.Error("reused context should allow different causes")
	}
	if len(err1.Suggestions) != 1 {
		t.Errorf("earlier build should not see later suggestions, got %q", err1.Suggestions)
	}
}

func TestWrapWithContext(t *testing.T) {
	t.Parallel()

	cause := errors.New("original error")
	err := WrapWithContext(cause, "read file", "/path/to/file")
	if err.Operation != "read file" || err.Resource != "/path/to/file" || !errors.Is(err, cause) {
		t.Errorf("WrapWithContext() = %+v", err)
	}
	if WrapWithContext(nil, "test", "resource") != nil {
		t.Error("WrapWithContext(nil) should return nil")
	}
}

func TestIssueOf(t *testing.T) {
	t.Parallel()

	linked := NewErrorContext().WithOperation("resolve java").WithIssue(RuntimeNotFoundId).BuildError()
	if got := IssueOf(linked); got == nil || got.Id() != RuntimeNotFoundId {
		t.Errorf("IssueOf(linked) = %v", got)
	}
	if IssueOf(NewErrorContext().WithOperation("x").BuildError()) != nil {
		t.Error("IssueOf() without issue should be nil")
	}
	if IssueOf(errors.New("plain")) != nil {
		t.Error("IssueOf(plain error) should be nil")
	}
}
