package emit

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileWriter persists emitted artifacts. The emitter talks to storage only
// through this interface so tests can record writes instead of touching
// the filesystem.
type FileWriter interface {
	// WriteFile persists data at path, creating parent directories.
	WriteFile(path string, data []byte) error
	// Remove deletes the file at path.
	Remove(path string) error
}

// OSWriter writes artifacts to the local filesystem. Writes go to a
// temporary file in the target directory followed by a rename, so a
// crashed invocation never leaves a half-written artifact under the
// final name.
type OSWriter struct{}

// Verify OSWriter implements FileWriter.
var _ FileWriter = (*OSWriter)(nil)

// WriteFile implements FileWriter with a temp-file-and-rename write.
func (OSWriter) WriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir %q: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file in %q: %w", dir, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("write %q: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close %q: %w", path, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("rename %q: %w", path, err)
	}
	return nil
}

// Remove implements FileWriter.
func (OSWriter) Remove(path string) error {
	return os.Remove(path)
}

// StubWriter records writes and removals for testing.
type StubWriter struct {
	mu      sync.Mutex
	Files   map[string][]byte
	Removed []string
	// FailWrites, when set, makes every WriteFile return the error.
	FailWrites error
}

// NewStubWriter creates an empty stub writer.
func NewStubWriter() *StubWriter {
	return &StubWriter{Files: map[string][]byte{}}
}

// WriteFile implements FileWriter by recording the payload.
func (w *StubWriter) WriteFile(path string, data []byte) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.FailWrites != nil {
		return w.FailWrites
	}
	buf := make([]byte, len(data))
	copy(buf, data)
	w.Files[path] = buf
	return nil
}

// Remove implements FileWriter by recording the path.
func (w *StubWriter) Remove(path string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.Files, path)
	w.Removed = append(w.Removed, path)
	return nil
}

// Verify StubWriter implements FileWriter.
var _ FileWriter = (*StubWriter)(nil)
