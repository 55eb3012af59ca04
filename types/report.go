package types

// ProbeReport is the read-only summary produced by `framelift probe`.
type ProbeReport struct {
	// Input is the capture path as given on the command line.
	Input string `json:"input"`
	// FrameCount is the number of complete marker pairs found.
	FrameCount int `json:"frame_count"`
	// Frames holds one probe per located frame, in capture order.
	Frames []FrameProbe `json:"frames"`
}

// FrameProbe summarizes one located frame without decoding pixels.
type FrameProbe struct {
	// Index is the zero-based position of the frame in the capture.
	Index int `json:"index"`
	// Meta is the extracted (or defaulted) frame metadata.
	Format string `json:"format"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	// HexLines is the number of hex-only payload lines retained.
	HexLines int `json:"hex_lines"`
	// DecodedBytes is the byte count after hex decoding.
	DecodedBytes int `json:"decoded_bytes"`
	// ExpectedBytes is width*height*2 for RGB565.
	ExpectedBytes int `json:"expected_bytes"`
	// SizeMatch reports whether decoded and expected byte counts agree.
	SizeMatch bool `json:"size_match"`
	// Error describes a payload problem (no hex lines, invalid hex) for
	// this frame, if any.
	Error string `json:"error,omitempty"`
}
