// Package reader opens capture inputs for the framelift CLI.
//
// Serial captures are routinely archived compressed; .gz and .zst inputs
// are decompressed transparently by extension. The whole text is
// materialized in memory: the pipeline is a single-pass batch over one
// capture, not a stream decoder.
package reader

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// ReadCapture returns the full text of the capture at path.
// "-" reads stdin.
func ReadCapture(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open capture: %w", err)
	}
	defer func() { _ = f.Close() }()

	data, err := decompress(path, f)
	if err != nil {
		return "", fmt.Errorf("read capture %s: %w", path, err)
	}
	return string(data), nil
}

// decompress reads all of r, unwrapping gzip or zstd by file extension.
func decompress(path string, r io.Reader) ([]byte, error) {
	switch {
	case strings.HasSuffix(path, ".gz"):
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("gzip: %w", err)
		}
		defer func() { _ = zr.Close() }()
		return io.ReadAll(zr)

	case strings.HasSuffix(path, ".zst"):
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("zstd: %w", err)
		}
		defer zr.Close()
		return io.ReadAll(zr)

	default:
		return io.ReadAll(r)
	}
}
