package capture

import "strings"

// Sentinel strings the device firmware prints around a frame dump.
// Matching is exact and case-sensitive; the markers are substrings, so
// surrounding log prefixes on the same line do not defeat them.
const (
	StartMarker = "========== SCREENSHOT START =========="
	EndMarker   = "========== SCREENSHOT END =========="
)

// Locate returns the span of text strictly between the end of the first
// start marker and the start of the first end marker that follows it.
// The end marker is searched only after the start marker, so an end marker
// appearing earlier in the capture is ignored.
//
// Returns ErrMissingMarker (wrapped) if either marker cannot be found.
func Locate(text, start, end string) (string, error) {
	i := strings.Index(text, start)
	if i < 0 {
		return "", newExtractError(StageLocate, ErrMissingMarker,
			"start marker %q not found in capture", start)
	}

	after := text[i+len(start):]
	j := strings.Index(after, end)
	if j < 0 {
		return "", newExtractError(StageLocate, ErrMissingMarker,
			"end marker %q not found after start marker", end)
	}

	return after[:j], nil
}

// LocateAll returns every complete marker-delimited span in capture order.
// A capture produced by several button presses contains several dumps;
// each complete pair yields one span.
//
// A trailing start marker with no matching end marker is a truncated dump
// and is skipped; the skipped count is returned so callers can warn.
// Returns ErrMissingMarker (wrapped) if no complete pair exists.
func LocateAll(text, start, end string) (spans []string, truncated int, err error) {
	rest := text
	for {
		i := strings.Index(rest, start)
		if i < 0 {
			break
		}
		rest = rest[i+len(start):]

		j := strings.Index(rest, end)
		if j < 0 {
			truncated++
			break
		}
		spans = append(spans, rest[:j])
		rest = rest[j+len(end):]
	}

	if len(spans) == 0 {
		return nil, truncated, newExtractError(StageLocate, ErrMissingMarker,
			"no complete %q/%q pair found in capture", start, end)
	}
	return spans, truncated, nil
}
