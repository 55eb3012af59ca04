package capture

import "strings"

// Collect splits span into lines and concatenates, in original order, every
// line that consists solely of hex digits after trimming line endings.
// Everything else between the markers (metadata tokens, interleaved log
// noise, blank lines) is discarded.
//
// Returns the concatenated hex text and the number of lines retained, or
// ErrNoPayload (wrapped) if zero lines qualify.
func Collect(span string) (string, int, error) {
	var b strings.Builder
	lines := 0

	for _, line := range strings.Split(span, "\n") {
		line = strings.TrimRight(line, "\r")
		if isHexLine(line) {
			b.WriteString(line)
			lines++
		}
	}

	if lines == 0 {
		return "", 0, newExtractError(StageCollect, ErrNoPayload,
			"zero hex-only lines between markers")
	}
	return b.String(), lines, nil
}

// isHexLine reports whether line is non-empty and every character is a hex
// digit. Pure predicate over the trimmed line.
func isHexLine(line string) bool {
	if line == "" {
		return false
	}
	for i := 0; i < len(line); i++ {
		if !isHexDigit(line[i]) {
			return false
		}
	}
	return true
}

func isHexDigit(c byte) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c >= 'a' && c <= 'f':
		return true
	case c >= 'A' && c <= 'F':
		return true
	default:
		return false
	}
}
