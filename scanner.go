package ansiwrap

import "regexp"

const (
	// ResetCode turns every SGR attribute off.
	ResetCode = "\x1b[0m"

	// eraseLineBody is the body of the EL (erase to end of line) sequence.
	eraseLineBody = "K"
)

// escapePattern matches SGR sequences (ESC [ ... m, non-greedy so adjacent
// sequences stay separate) and the EL sequence ESC [ K.
var escapePattern = regexp.MustCompile("\x1b\\[(K|.*?m)")

// EscapeMatch is one escape sequence located in a string.
// Start and End are byte offsets into the scanned string.
type EscapeMatch struct {
	Start int
	End   int
	Text  string
}

// Len returns the byte length of the matched sequence.
func (m EscapeMatch) Len() int {
	return m.End - m.Start
}

// Code returns the body of the sequence: the parameters between "ESC[" and
// the final "m" for SGR, or "K" for EL.
func (m EscapeMatch) Code() string {
	body := m.Text[2:]
	if body == eraseLineBody {
		return body
	}
	return body[:len(body)-1]
}

// IsEraseLine reports whether the match is the EL sequence, which carries no style.
func (m EscapeMatch) IsEraseLine() bool {
	return m.Text == "\x1b["+eraseLineBody
}

// Scan returns every escape sequence in s, left to right, non-overlapping.
// Bodies are not validated.
func Scan(s string) []EscapeMatch {
	locs := escapePattern.FindAllStringIndex(s, -1)
	if len(locs) == 0 {
		return nil
	}

	matches := make([]EscapeMatch, len(locs))
	for i, loc := range locs {
		matches[i] = EscapeMatch{
			Start: loc[0],
			End:   loc[1],
			Text:  s[loc[0]:loc[1]],
		}
	}
	return matches
}

// scanCodes returns only the bodies of the sequences found in s.
func scanCodes(s string) []string {
	found := escapePattern.FindAllString(s, -1)
	if len(found) == 0 {
		return nil
	}

	codes := make([]string, len(found))
	for i, seq := range found {
		codes[i] = EscapeMatch{Text: seq}.Code()
	}
	return codes
}
