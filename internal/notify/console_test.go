// SPDX-License-Identifier: MPL-2.0

package notify

import (
	"bytes"
	"strings"
	"testing"

	"github.com/invowk/jarrunner/internal/issue"
)

func TestConsoleNotifier_Format(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		msg  Message
		want string
	}{
		{
			name: "error",
			msg:  Message{Kind: KindError, Title: "Java Not Found", Body: "java not found in PATH (looking for java)"},
			want: "\n[ERROR] Java Not Found\njava not found in PATH (looking for java)\n\n",
		},
		{
			name: "info",
			msg:  Message{Kind: KindInfo, Title: "Diagnostic Info", Body: "Execution Context: Console (terminal)"},
			want: "\n[INFO] Diagnostic Info\nExecution Context: Console (terminal)\n\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer
			if err := NewConsoleNotifier(&out).Notify(tt.msg); err != nil {
				t.Fatalf("Notify() error: %v", err)
			}
			if out.String() != tt.want {
				t.Errorf("Notify() wrote %q, want %q", out.String(), tt.want)
			}
		})
	}
}

func TestConsoleNotifier_RendersIssue(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	n := NewConsoleNotifier(&out)
	n.IssueStyle = "notty"

	msg := Message{Kind: KindError, Title: "Java Not Found", Body: "body", Issue: issue.Get(issue.RuntimeNotFoundId)}
	if err := n.Notify(msg); err != nil {
		t.Fatalf("Notify() error: %v", err)
	}
	if !strings.Contains(out.String(), "Java runtime not found") {
		t.Errorf("output should contain the issue guidance, got:\n%s", out.String())
	}

	out.Reset()
	n.HideIssues = true
	if err := n.Notify(msg); err != nil {
		t.Fatalf("Notify() error: %v", err)
	}
	if strings.Contains(out.String(), "Java runtime not found") {
		t.Errorf("HideIssues should suppress guidance, got:\n%s", out.String())
	}
}

func TestKind_String(t *testing.T) {
	t.Parallel()

	if KindError.String() != "ERROR" || KindInfo.String() != "INFO" {
		t.Errorf("Kind strings = %q, %q", KindError, KindInfo)
	}
}
