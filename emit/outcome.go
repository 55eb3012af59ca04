package emit

// OutcomeKind discriminates the two success shapes of an emit.
type OutcomeKind string

const (
	// OutcomeImage means a container-format image file was written.
	OutcomeImage OutcomeKind = "image"
	// OutcomeRaw means the encoder was unavailable or failed, and the raw
	// pixel bytes were persisted with a manual conversion recipe instead.
	// This is still a success: degrade, not fail.
	OutcomeRaw OutcomeKind = "raw"
)

// Outcome is the tagged result of emitting one frame. Both kinds are
// successes; only storage failures surface as errors.
type Outcome struct {
	Kind OutcomeKind
	// Path is the written artifact: the image file for OutcomeImage, the
	// raw byte file for OutcomeRaw.
	Path string
	// RawPath is the raw byte file kept alongside an image, if any.
	RawPath string
	// Recipe is the human-readable manual conversion recipe. Set only for
	// OutcomeRaw.
	Recipe string
	// Warnings carries non-blocking diagnostics (size mismatch, cleanup
	// failures). Never empty strings.
	Warnings []string
}
