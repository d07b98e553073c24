package cmd

import (
	"strings"
	"unicode"
)

// Parse extracts the command label and arguments from message content.
// ok is false when content does not start with prefix. The label is the
// first whitespace-delimited token with every leading copy of prefix
// removed; it may be empty. Args are the remaining whitespace-separated
// tokens.
func Parse(content, prefix string) (label string, args []string, ok bool) {
	if !strings.HasPrefix(content, prefix) {
		return "", nil, false
	}
	first, rest := splitFirst(content)
	if fields := strings.Fields(rest); len(fields) > 0 {
		args = fields
	}
	return trimPrefixes(first, prefix), args, true
}

// trimPrefixes removes prefix from the start of s as many times as it
// repeats, so "!!ping" and "!ping" name the same command.
func trimPrefixes(s, prefix string) string {
	for prefix != "" && strings.HasPrefix(s, prefix) {
		s = s[len(prefix):]
	}
	return s
}

// splitFirst splits s at its first whitespace rune.
func splitFirst(s string) (first, rest string) {
	i := strings.IndexFunc(s, unicode.IsSpace)
	if i < 0 {
		return s, ""
	}
	return s[:i], s[i:]
}
