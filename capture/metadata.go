package capture

import (
	"regexp"
	"strconv"

	"github.com/tessellate-io/framelift/types"
)

// Metadata token patterns. The device prints ad-hoc KEY:VALUE tokens
// rather than a structured header; each token is optional and is looked
// up independently so any subset may be absent.
var (
	formatPattern = regexp.MustCompile(`FORMAT:(\w+)`)
	widthPattern  = regexp.MustCompile(`WIDTH:(\d+)`)
	heightPattern = regexp.MustCompile(`HEIGHT:(\d+)`)
)

// ExtractMeta scans span for FORMAT:/WIDTH:/HEIGHT: tokens (first match of
// each, in any order) and fills gaps from defWidth/defHeight. A token that
// is present but does not parse to a positive integer is treated as absent,
// matching the best-effort philosophy of the pipeline.
func ExtractMeta(span string, defWidth, defHeight int) types.FrameMeta {
	meta := types.FrameMeta{
		Width:  defWidth,
		Height: defHeight,
	}

	if m := formatPattern.FindStringSubmatch(span); m != nil {
		meta.Format = m[1]
	}
	if w, ok := findDimension(widthPattern, span); ok {
		meta.Width = w
		meta.DeclaredWidth = true
	}
	if h, ok := findDimension(heightPattern, span); ok {
		meta.Height = h
		meta.DeclaredHeight = true
	}
	return meta
}

// findDimension returns the first positive base-10 match of re in span.
// Unparsable or non-positive values report ok=false.
func findDimension(re *regexp.Regexp, span string) (int, bool) {
	m := re.FindStringSubmatch(span)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
