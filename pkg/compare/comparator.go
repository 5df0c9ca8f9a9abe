package compare

import (
	"context"

	"github.com/sdejongh/dirdiff/pkg/storage"
)

// Result represents the outcome of comparing two files
type Result string

const (
	// Same indicates files have identical content
	Same Result = "same"
	// Different indicates file content differs
	Different Result = "different"
)

// Comparison holds the result of comparing two files
type Comparison struct {
	LeftPath  string
	RightPath string
	Result    Result
	Reason    string
}

// Comparator defines the interface for file content comparison strategies.
// Callers only invoke Compare for two regular files already known to have
// equal, nonzero length; the size short-circuit happens during the merge.
type Comparator interface {
	// Compare compares the content of two files and returns the result.
	// An I/O failure on either file is returned as an error carrying the
	// underlying cause; the caller converts it into an error classification.
	Compare(ctx context.Context, backend storage.Backend, leftPath, rightPath string, length int64) (*Comparison, error)

	// Name returns the name of the comparison method
	Name() string
}
