package models

// Entry represents one listed child of a directory
type Entry struct {
	// Name is the base name of the entry within its parent directory
	Name string

	// Path is the full path on the filesystem
	Path string

	// IsDir indicates if this is a directory
	IsDir bool

	// Size in bytes (zero for directories)
	Size int64
}
