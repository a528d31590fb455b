package ansiwrap

import "strings"

// StripColor removes SGR and EL sequences from s. Every other character,
// including other control characters, is left untouched.
func StripColor(s string) string {
	if !strings.Contains(s, "\x1b[") {
		return s
	}
	return escapePattern.ReplaceAllLiteralString(s, "")
}
