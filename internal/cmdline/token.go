// SPDX-License-Identifier: MPL-2.0

package cmdline

import "strings"

// Token is one whitespace-separated word of a command line.
type Token struct {
	// Raw is the exact source text, quote characters included.
	Raw string
	// Value is Raw with the quote characters removed.
	Value string
	// Start and End are byte offsets of Raw in the line (End exclusive).
	Start int
	End   int
}

// Tokenize splits line on spaces and tabs. A double quote toggles quoting;
// whitespace inside quotes belongs to the token. Backslashes have no special
// meaning, so Windows paths such as C:\jdk\bin survive unchanged. An
// unterminated quote extends to the end of the line.
func Tokenize(line string) []Token {
	var tokens []Token
	i := 0
	for i < len(line) {
		for i < len(line) && isSpace(line[i]) {
			i++
		}
		if i >= len(line) {
			break
		}

		start := i
		inQuote := false
		var value strings.Builder
		for i < len(line) {
			c := line[i]
			if c == '"' {
				inQuote = !inQuote
				i++
				continue
			}
			if !inQuote && isSpace(c) {
				break
			}
			value.WriteByte(c)
			i++
		}
		tokens = append(tokens, Token{Raw: line[start:i], Value: value.String(), Start: start, End: i})
	}
	return tokens
}

// Join renders args as a single command line and returns the matching tokens.
// Token values equal the arguments exactly, even where the rendered text
// cannot represent them (an embedded double quote).
func Join(args []string) (string, []Token) {
	var line strings.Builder
	tokens := make([]Token, 0, len(args))
	for i, arg := range args {
		if i > 0 {
			line.WriteByte(' ')
		}
		raw := quoteArg(arg)
		start := line.Len()
		line.WriteString(raw)
		tokens = append(tokens, Token{Raw: raw, Value: arg, Start: start, End: line.Len()})
	}
	return line.String(), tokens
}

// quoteArg quotes arg when it is empty or contains whitespace or quotes. For
// --name=value arguments only the value is quoted so the flag stays
// recognizable.
func quoteArg(arg string) string {
	if arg != "" && !strings.ContainsAny(arg, " \t\"") {
		return arg
	}
	if name, value, ok := strings.Cut(arg, "="); ok && strings.HasPrefix(name, "--") && !strings.ContainsAny(name, " \t\"") {
		return name + `="` + value + `"`
	}
	return `"` + arg + `"`
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t'
}
