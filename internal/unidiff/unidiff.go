// Package unidiff provides line-level helpers for unified diff text.
package unidiff

import "strings"

// IsChangedLine reports whether a unified diff line represents a change,
// i.e. it starts with "+" or "-". Note this also matches the "+++" and
// "---" file header lines.
func IsChangedLine(line string) bool {
	return strings.HasPrefix(line, "+") || strings.HasPrefix(line, "-")
}

// ChangedOnly filters a diff down to its changed lines, dropping context
// lines and hunk headers. File header lines are kept, since IsChangedLine
// matches them.
func ChangedOnly(diff string) string {
	if diff == "" {
		return ""
	}

	lines := strings.Split(diff, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if IsChangedLine(line) {
			kept = append(kept, line)
		}
	}

	return strings.Join(kept, "\n")
}

// NormalizeEscapes replaces literal backslash-n escape sequences with real
// newlines. Diff text that passed through intermediate tooling sometimes
// arrives with its line breaks escaped.
func NormalizeEscapes(diff string) string {
	return strings.ReplaceAll(diff, `\n`, "\n")
}
