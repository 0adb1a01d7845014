package utils

import (
	"strings"
)

// SanitizeFilename strips path components and unsafe characters from an
// uploaded filename so it can be stored and echoed back safely.
// Returns an empty string when nothing usable remains.
func SanitizeFilename(name string) string {
	// Windows clients send backslash-separated paths.
	if idx := strings.LastIndexAny(name, `/\`); idx >= 0 {
		name = name[idx+1:]
	}

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		case r == ' ':
			b.WriteByte('_')
		}
	}

	cleaned := strings.Trim(b.String(), "._-")
	return cleaned
}
