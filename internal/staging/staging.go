// Package staging writes uploaded payloads to uniquely named scratch files so
// converters that dispatch on path or extension can be handed a real file.
package staging

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Stager stages payloads under a single scratch directory. Staged files are
// owned by one request each: created on entry, discarded before the handler
// returns, on every exit path.
type Stager struct {
	dir string
}

// NewStager creates a Stager rooted at dir, creating the directory if needed.
func NewStager(dir string) (*Stager, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating scratch directory: %w", err)
	}
	return &Stager{dir: dir}, nil
}

// Stage writes data to a new file named <uuid><suffix> and returns its path.
// The suffix is advisory, carried over from the upload's filename for
// converters that sniff format by extension. O_EXCL guarantees concurrent
// requests can never share a staged file.
func (s *Stager) Stage(suffix string, data []byte) (string, error) {
	path := filepath.Join(s.dir, uuid.New().String()+suffix)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return "", fmt.Errorf("creating staged file: %w", err)
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(path)
		return "", fmt.Errorf("writing staged file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("closing staged file: %w", err)
	}

	return path, nil
}

// Discard removes a staged file. Best effort: the file may already be gone
// and nothing useful can be done about a failed removal mid-response.
func (s *Stager) Discard(path string) {
	_ = os.Remove(path)
}
