package models

// Kind is the verdict for one compared name or pair of names
type Kind string

const (
	// KindAdded indicates the entry exists only in the right tree
	KindAdded Kind = "added"
	// KindDeleted indicates the entry exists only in the left tree
	KindDeleted Kind = "deleted"
	// KindModified indicates both files exist but their content differs
	KindModified Kind = "modified"
	// KindUnchanged indicates both files exist with identical content
	KindUnchanged Kind = "unchanged"
	// KindTypeMismatch indicates the same name is a directory on one side
	// and a regular file on the other
	KindTypeMismatch Kind = "type_mismatch"
	// KindError indicates a listing or comparison failed for this entry
	KindError Kind = "error"
)

// Classification is the final verdict for one entry observed in either tree.
// It is immutable once created and consumed exactly once by the output sink.
type Classification struct {
	// Kind is the verdict tag
	Kind Kind

	// LeftPath is the full path in the left tree (empty for Added)
	LeftPath string

	// RightPath is the full path in the right tree (empty for Deleted)
	RightPath string

	// IsDir indicates the entry is a directory, recorded at listing time
	// so renderers need no extra stat call
	IsDir bool

	// Detail carries the underlying cause for KindError
	Detail string
}

// Path returns the path most relevant for display: the right-side path when
// it exists, otherwise the left-side one.
func (c Classification) Path() string {
	if c.RightPath != "" {
		return c.RightPath
	}
	return c.LeftPath
}

// IsDifference reports whether this classification counts as a difference
// for exit-code purposes. Unchanged is the only kind that does not.
func (c Classification) IsDifference() bool {
	return c.Kind != KindUnchanged
}

// Added builds a classification for an entry present only on the right.
func Added(path string, isDir bool) Classification {
	return Classification{Kind: KindAdded, RightPath: path, IsDir: isDir}
}

// Deleted builds a classification for an entry present only on the left.
func Deleted(path string, isDir bool) Classification {
	return Classification{Kind: KindDeleted, LeftPath: path, IsDir: isDir}
}

// Modified builds a classification for a file pair with differing content.
func Modified(leftPath, rightPath string) Classification {
	return Classification{Kind: KindModified, LeftPath: leftPath, RightPath: rightPath}
}

// Unchanged builds a classification for a file pair with identical content.
func Unchanged(leftPath, rightPath string) Classification {
	return Classification{Kind: KindUnchanged, LeftPath: leftPath, RightPath: rightPath}
}

// TypeMismatch builds a classification for a name that is a directory on one
// side and a file on the other.
func TypeMismatch(leftPath, rightPath string) Classification {
	return Classification{Kind: KindTypeMismatch, LeftPath: leftPath, RightPath: rightPath}
}

// ComparisonError builds a classification for a failed listing or comparison.
func ComparisonError(leftPath, rightPath string, err error) Classification {
	c := Classification{Kind: KindError, LeftPath: leftPath, RightPath: rightPath}
	if err != nil {
		c.Detail = err.Error()
	}
	return c
}
