// Package capture recovers raster frame payloads embedded as hex dumps
// inside free-form diagnostic text.
//
// A capture is the raw text of a device's serial console. Somewhere inside
// it, bounded by sentinel marker lines, the device dumps a frame as hex
// lines interleaved with ordinary log output. This package locates the
// payload, extracts its metadata, filters the hex lines, and decodes them
// to raw pixel bytes.
package capture

import (
	"errors"
	"fmt"
)

// Sentinel errors for extraction failure classification.
// Use errors.Is(err, ErrXxx) for typed assertions.
var (
	// ErrMissingMarker indicates a start or end sentinel was not found.
	// Nothing useful can be recovered without payload boundaries.
	ErrMissingMarker = errors.New("screenshot marker not found")

	// ErrNoPayload indicates the markers were found but zero hex-only
	// lines exist between them.
	ErrNoPayload = errors.New("no hex payload between markers")

	// ErrInvalidHex indicates the collected hex text contains a non-hex
	// character or has odd length. The data is untrustworthy; failing
	// loudly beats decoding garbage.
	ErrInvalidHex = errors.New("invalid hex data")
)

// Stage identifies the pipeline stage that produced an error.
type Stage string

// Pipeline stages, in execution order.
const (
	StageLocate  Stage = "locate"
	StageCollect Stage = "collect"
	StageDecode  Stage = "decode"
)

// ExtractError wraps a sentinel error with the stage that failed and a
// human-readable detail (which marker was missing, the offending offset).
// It preserves the sentinel in the chain for errors.Is.
type ExtractError struct {
	// Stage is the pipeline stage that failed.
	Stage Stage
	// Detail describes the specific failure.
	Detail string
	// Err is the classification sentinel (ErrMissingMarker, ...).
	Err error
}

func (e *ExtractError) Error() string {
	return fmt.Sprintf("%s: %s", e.Stage, e.Detail)
}

// Unwrap returns the sentinel for errors.Is chain traversal.
func (e *ExtractError) Unwrap() error {
	return e.Err
}

func newExtractError(stage Stage, err error, format string, args ...any) *ExtractError {
	return &ExtractError{
		Stage:  stage,
		Detail: fmt.Sprintf(format, args...),
		Err:    err,
	}
}
