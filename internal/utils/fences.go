package utils

import "strings"

// StripFences removes an optional markdown code fence wrapping (with or
// without a language tag) and trims surrounding whitespace.
func StripFences(s string) string {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}

	lines := strings.Split(trimmed, "\n")
	if len(lines) < 2 {
		return trimmed
	}

	// drop the opening fence line (``` or ```json)
	lines = lines[1:]
	// drop the closing fence if present
	if strings.TrimSpace(lines[len(lines)-1]) == "```" {
		lines = lines[:len(lines)-1]
	}

	return strings.TrimSpace(strings.Join(lines, "\n"))
}
