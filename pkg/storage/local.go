package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sdejongh/dirdiff/pkg/models"
)

// Local is a filesystem-based storage backend
type Local struct{}

// NewLocal creates a new local filesystem backend
func NewLocal() *Local {
	return &Local{}
}

// ListDir returns the direct children of a directory
func (l *Local) ListDir(ctx context.Context, path string, exclude ExcludeSet) ([]models.Entry, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	dirEntries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	entries := make([]models.Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		name := de.Name()
		if exclude.Contains(name) {
			continue
		}

		var size int64
		if !de.IsDir() {
			info, err := de.Info()
			if err != nil {
				return nil, fmt.Errorf("failed to stat %s: %w", name, err)
			}
			size = info.Size()
		}

		entries = append(entries, models.Entry{
			Name:  name,
			Path:  filepath.Join(path, name),
			IsDir: de.IsDir(),
			Size:  size,
		})
	}

	return entries, nil
}

// Open opens a file for reading
func (l *Local) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return file, nil
}

// Stat returns metadata for a single path
func (l *Local) Stat(ctx context.Context, path string) (*models.Entry, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	return &models.Entry{
		Name:  filepath.Base(path),
		Path:  path,
		IsDir: info.IsDir(),
		Size:  info.Size(),
	}, nil
}

// Close releases resources (no-op for local filesystem)
func (l *Local) Close() error {
	return nil
}
