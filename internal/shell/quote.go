package shell

import (
	"regexp"
	"strings"
)

var unsafeRe = regexp.MustCompile(`[^\w@%+=:,./-]`)

// Quote returns a token that a POSIX shell parses back to exactly s.
// Strings made only of safe characters are returned unchanged.
func Quote(s string) string {
	if s == "" {
		return "''"
	}
	if !unsafeRe.MatchString(s) {
		return s
	}
	return QuoteAlways(s)
}

// QuoteAlways wraps s in single quotes even when it is already safe.
// Embedded single quotes are closed, emitted inside double quotes, and reopened.
func QuoteAlways(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'"'"'`) + "'"
}

// Comment flattens s onto a single line so it can follow a '#'.
func Comment(s string) string {
	return strings.Join(strings.FieldsFunc(s, func(r rune) bool {
		return r == '\n' || r == '\r'
	}), " ")
}
