// SPDX-License-Identifier: MPL-2.0

package cmdline

import (
	"slices"
	"testing"
)

func values(tokens []Token) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = t.Value
	}
	return out
}

func TestTokenize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
		want []string
	}{
		{"empty", "", nil},
		{"blank", "  \t ", nil},
		{"simple", "a b  c", []string{"a", "b", "c"}},
		{"quoted with space", `run "C:\Program Files\app.jar" x`, []string{"run", `C:\Program Files\app.jar`, "x"}},
		{"quote inside token", `--cache-home="C:\jdk 21" app.jar`, []string{`--cache-home=C:\jdk 21`, "app.jar"}},
		{"empty quotes", `a "" b`, []string{"a", "", "b"}},
		{"unterminated quote", `a "b c`, []string{"a", "b c"}},
		{"backslashes literal", `C:\jdk\bin\java.exe`, []string{`C:\jdk\bin\java.exe`}},
		{"tabs", "a\tb", []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := values(Tokenize(tt.line))
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("Tokenize(%q) = %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}

func TestTokenize_Offsets(t *testing.T) {
	t.Parallel()

	line := `prog  "a b"  c`
	for _, tok := range Tokenize(line) {
		if line[tok.Start:tok.End] != tok.Raw {
			t.Errorf("line[%d:%d] = %q, want Raw %q", tok.Start, tok.End, line[tok.Start:tok.End], tok.Raw)
		}
	}
}

func TestJoin(t *testing.T) {
	t.Parallel()

	args := []string{"/usr/bin/jarrunner", "--cache-home=/opt/jdk 21", "my app.jar", "", "plain"}
	line, tokens := Join(args)

	want := `/usr/bin/jarrunner --cache-home="/opt/jdk 21" "my app.jar" "" plain`
	if line != want {
		t.Errorf("Join() line = %q, want %q", line, want)
	}
	if got := values(tokens); !slices.Equal(got, args) {
		t.Errorf("Join() values = %q, want %q", got, args)
	}
	for _, tok := range tokens {
		if line[tok.Start:tok.End] != tok.Raw {
			t.Errorf("token %q has offsets %d:%d not matching line", tok.Raw, tok.Start, tok.End)
		}
	}

	// Tokenizing the rendered line yields the same values when no argument
	// contains a double quote.
	if got := values(Tokenize(line)); !slices.Equal(got, args) {
		t.Errorf("Tokenize(Join()) = %q, want %q", got, args)
	}
}
