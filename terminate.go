package ansiwrap

// TerminateLines makes every line styling-complete. A style still active
// at the end of a line is closed with ResetCode, and the same style is
// reopened at the start of the next line. The result has the same length
// and order as lines.
func TerminateLines(lines []string) []string {
	state := NewStyleState()
	out := make([]string, len(lines))

	resume := ""
	for i, line := range lines {
		for _, code := range scanCodes(line) {
			state.Consume(code)
		}
		if resume != "" {
			line = resume + line
		}
		resume = state.Code()
		if resume != "" {
			line += ResetCode
		}
		out[i] = line
	}
	return out
}
