package storage

import (
	"context"
	"io"

	"github.com/sdejongh/dirdiff/pkg/models"
)

// ExcludeSet holds entry names that are skipped at every directory level on
// both sides. It is built once per run and never mutated afterwards, so it is
// safe to share by reference across workers.
type ExcludeSet map[string]struct{}

// NewExcludeSet builds an exclude set from a list of names
func NewExcludeSet(names []string) ExcludeSet {
	set := make(ExcludeSet, len(names))
	for _, name := range names {
		if name == "" {
			continue
		}
		set[name] = struct{}{}
	}
	return set
}

// Contains reports whether name is excluded
func (s ExcludeSet) Contains(name string) bool {
	_, ok := s[name]
	return ok
}

// Backend defines the filesystem operations the diff engine depends on.
// Implementations include the local filesystem; tests inject instrumented
// or failing backends through this interface.
type Backend interface {
	// ListDir returns the direct children of the directory, skipping names
	// present in the exclude set. Order is unspecified.
	ListDir(ctx context.Context, path string, exclude ExcludeSet) ([]models.Entry, error)

	// Open opens a file for reading
	Open(ctx context.Context, path string) (io.ReadCloser, error)

	// Stat returns metadata for a single path
	Stat(ctx context.Context, path string) (*models.Entry, error)

	// Close releases any resources held by the backend
	Close() error
}
