package output

import (
	"path/filepath"
	"strings"

	"github.com/sdejongh/dirdiff/pkg/models"
)

// Sink receives one classification event per resolved entry. The engine
// serializes calls to Accept, so implementations are free of locking.
type Sink interface {
	Accept(c models.Classification) error
}

// pathReducer strips the tree roots from classification paths for display
// and marks directories with a trailing separator.
type pathReducer struct {
	leftRoot  string
	rightRoot string
}

// reduce returns the display path for a classification: right-relative for
// entries that exist on the right, left-relative otherwise.
func (r pathReducer) reduce(c models.Classification) string {
	var reduced string
	if c.RightPath != "" {
		reduced = r.rel(r.rightRoot, c.RightPath)
	} else {
		reduced = r.rel(r.leftRoot, c.LeftPath)
	}
	if c.IsDir {
		reduced += "/"
	}
	return reduced
}

// reduceLeft returns the left-side display path
func (r pathReducer) reduceLeft(c models.Classification) string {
	return r.rel(r.leftRoot, c.LeftPath)
}

// reduceRight returns the right-side display path
func (r pathReducer) reduceRight(c models.Classification) string {
	return r.rel(r.rightRoot, c.RightPath)
}

func (r pathReducer) rel(root, path string) string {
	if root == "" || path == "" {
		return path
	}
	rel, err := filepath.Rel(root, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}
