package capture

import "github.com/tessellate-io/framelift/types"

// Frame is one extracted payload: its declared metadata and the decoded
// raw pixel bytes, plus collection stats for reporting.
type Frame struct {
	Meta types.FrameMeta
	// Raw is the decoded byte sequence, big-endian RGB565 samples.
	Raw []byte
	// HexLines is the number of payload lines retained by the collector.
	HexLines int
}

// Extractor runs the text-side pipeline: locate the marker-delimited span,
// extract metadata, collect hex lines, decode. It holds no state across
// calls; one capture is one independent unit of work.
type Extractor struct {
	// StartMarker and EndMarker bound the payload inside the capture.
	StartMarker string
	EndMarker   string
	// DefaultWidth and DefaultHeight apply when the capture carries no
	// WIDTH:/HEIGHT: tokens.
	DefaultWidth  int
	DefaultHeight int
}

// NewExtractor returns an extractor with the stock firmware markers and
// the native display geometry.
func NewExtractor() *Extractor {
	return &Extractor{
		StartMarker:   StartMarker,
		EndMarker:     EndMarker,
		DefaultWidth:  types.DefaultWidth,
		DefaultHeight: types.DefaultHeight,
	}
}

// ExtractFrame runs metadata extraction, hex collection, and hex decoding
// over one already-located span.
func (e *Extractor) ExtractFrame(span string) (*Frame, error) {
	meta := ExtractMeta(span, e.DefaultWidth, e.DefaultHeight)

	hexText, lines, err := Collect(span)
	if err != nil {
		return nil, err
	}

	raw, err := Decode(hexText)
	if err != nil {
		return nil, err
	}

	return &Frame{Meta: meta, Raw: raw, HexLines: lines}, nil
}

// Extract recovers the first frame embedded in text.
func (e *Extractor) Extract(text string) (*Frame, error) {
	span, err := Locate(text, e.StartMarker, e.EndMarker)
	if err != nil {
		return nil, err
	}
	return e.ExtractFrame(span)
}

// ExtractAll recovers every complete frame embedded in text, in capture
// order. truncated counts trailing dumps that had a start marker but no
// end marker; callers surface it as a warning.
func (e *Extractor) ExtractAll(text string) (frames []*Frame, truncated int, err error) {
	spans, truncated, err := LocateAll(text, e.StartMarker, e.EndMarker)
	if err != nil {
		return nil, truncated, err
	}

	for _, span := range spans {
		f, err := e.ExtractFrame(span)
		if err != nil {
			return nil, truncated, err
		}
		frames = append(frames, f)
	}
	return frames, truncated, nil
}
