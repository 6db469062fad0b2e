// SPDX-License-Identifier: MPL-2.0

package cmdline

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// FlagDisableCache turns off AOT cache handling.
	FlagDisableCache = "--disable-cache"
	// FlagCacheHome names the Java home directory to run from.
	FlagCacheHome = "--cache-home"

	// flagTerminator ends launcher flag recognition.
	flagTerminator = "--"
)

var (
	// disableCacheFlags are the accepted spellings of FlagDisableCache.
	disableCacheFlags = []string{FlagDisableCache, "--disable-aot"}
	// homeFlags are the accepted spellings of FlagCacheHome.
	homeFlags = []string{FlagCacheHome, "--java-home"}
)

// ErrUsage is the sentinel error wrapped by UsageError.
var ErrUsage = errors.New("usage error")

type (
	// Invocation is the parsed launcher command line.
	Invocation struct {
		// DisableCache is set by --disable-cache.
		DisableCache bool
		// Home is the value of --cache-home; valid when HasHome is true.
		Home    string
		HasHome bool
		// Remainder is everything after the artifact token, byte for byte,
		// minus launcher flags and without leading whitespace.
		Remainder string

		artifact  *Token
		forwarded string
		args      []Token
	}

	// UsageError reports a command line that cannot be run.
	UsageError struct {
		Reason string
	}
)

// Parse tokenizes line and parses it. The first token is the launcher itself.
func Parse(line string) (*Invocation, error) {
	return ParseTokens(line, Tokenize(line))
}

// ParseTokens parses a command line that has already been tokenized; tokens
// must carry offsets into line.
//
// Launcher flags are recognized anywhere as whole, unquoted tokens. A bare
// "--" stops flag recognition: it is dropped when it precedes the artifact
// and forwarded otherwise. The first remaining token is the artifact.
func ParseTokens(line string, tokens []Token) (*Invocation, error) {
	inv := &Invocation{}
	if len(tokens) > 0 {
		tokens = tokens[1:]
	}

	var removed []span
	flagsDone := false
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]

		if !flagsDone && tok.Raw == flagTerminator {
			flagsDone = true
			if inv.artifact == nil {
				removed = append(removed, spanOf(line, tok))
				continue
			}
		}

		if !flagsDone {
			n, err := inv.matchFlag(tokens[i:])
			if err != nil {
				return nil, err
			}
			if n > 0 {
				for _, t := range tokens[i : i+n] {
					removed = append(removed, spanOf(line, t))
				}
				i += n - 1
				continue
			}
		}

		if inv.artifact == nil {
			inv.artifact = &tokens[i]
		}
		inv.args = append(inv.args, tok)
	}

	if inv.artifact != nil {
		inv.forwarded = cut(line, inv.artifact.Start, removed)
		inv.Remainder = strings.TrimLeft(inv.forwarded[len(inv.artifact.Raw):], " \t")
	}
	return inv, nil
}

// matchFlag reports how many tokens at the head of toks form a launcher flag.
func (inv *Invocation) matchFlag(toks []Token) (int, error) {
	tok := toks[0]
	for _, name := range disableCacheFlags {
		if tok.Raw == name {
			inv.DisableCache = true
			return 1, nil
		}
	}

	for _, name := range homeFlags {
		switch {
		case strings.HasPrefix(tok.Raw, name+"="):
			inv.setHome(strings.TrimPrefix(tok.Value, name+"="))
			return 1, nil
		case tok.Raw == name:
			if len(toks) < 2 {
				return 0, &UsageError{Reason: fmt.Sprintf("%s requires a directory argument", name)}
			}
			inv.setHome(toks[1].Value)
			return 2, nil
		}
	}
	return 0, nil
}

// setHome records the first home directory given; later ones are still
// removed from the command line but ignored.
func (inv *Invocation) setHome(value string) {
	if inv.HasHome {
		return
	}
	inv.Home = value
	inv.HasHome = true
}

// HasArtifact reports whether an artifact token was found.
func (inv *Invocation) HasArtifact() bool {
	return inv.artifact != nil
}

// ArtifactPath returns the artifact path with quotes removed.
func (inv *Invocation) ArtifactPath() string {
	if inv.artifact == nil {
		return ""
	}
	return inv.artifact.Value
}

// Forwarded returns the artifact token followed by the remainder, exactly as
// it appeared in the original line (launcher flags removed).
func (inv *Invocation) Forwarded() string {
	return inv.forwarded
}

// ForwardedArgs returns the artifact and the following arguments as an
// argument vector.
func (inv *Invocation) ForwardedArgs() []string {
	values := make([]string, len(inv.args))
	for i, t := range inv.args {
		values[i] = t.Value
	}
	return values
}

// Error implements the error interface.
func (e *UsageError) Error() string {
	return "usage error: " + e.Reason
}

// Unwrap returns ErrUsage for errors.Is() compatibility.
func (e *UsageError) Unwrap() error { return ErrUsage }

// span is a byte range [start, end) of the line to drop.
type span struct {
	start, end int
}

// spanOf covers tok plus exactly one trailing separator.
func spanOf(line string, tok Token) span {
	end := tok.End
	if end < len(line) && isSpace(line[end]) {
		end++
	}
	return span{start: tok.Start, end: end}
}

// cut returns line[from:] with the removed spans left out. When a removed
// span ends the line, the separators it leaves behind are dropped too.
func cut(line string, from int, removed []span) string {
	var b strings.Builder
	pos := from
	for _, s := range removed {
		if s.end <= pos {
			continue
		}
		b.WriteString(line[pos:s.start])
		pos = s.end
	}
	if pos < len(line) {
		b.WriteString(line[pos:])
		return b.String()
	}
	out := b.String()
	for len(out) > 0 && isSpace(out[len(out)-1]) {
		out = out[:len(out)-1]
	}
	return out
}
