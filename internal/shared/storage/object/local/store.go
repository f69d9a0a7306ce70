package local

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"assessment-backend/internal/shared/util"
)

// Store implements object.Store on the local filesystem. Generated PDFs land
// as plain files directly under baseDir.
type Store struct {
	baseDir string
}

// New creates a local store rooted at baseDir.
func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

// Save writes the reader to disk under the given file name.
func (s *Store) Save(ctx context.Context, fileName string, r io.Reader) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	sanitized, err := util.SanitizeFileName(fileName)
	if err != nil {
		return 0, fmt.Errorf("sanitize file name: %w", err)
	}

	if err := os.MkdirAll(s.baseDir, 0o755); err != nil {
		return 0, fmt.Errorf("mkdir: %w", err)
	}

	fullPath := filepath.Join(s.baseDir, sanitized)
	f, err := os.OpenFile(fullPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return 0, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	written, err := io.Copy(f, r)
	if err != nil {
		return 0, fmt.Errorf("write body: %w", err)
	}
	return written, nil
}

// Open opens a stored artifact for reading.
func (s *Store) Open(ctx context.Context, fileName string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sanitized, err := util.SanitizeFileName(fileName)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(filepath.Join(s.baseDir, sanitized))
	if err != nil {
		return nil, err
	}
	return f, nil
}
