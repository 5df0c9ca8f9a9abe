package diff

import (
	"sort"

	"github.com/sdejongh/dirdiff/pkg/models"
)

// FilePair is a pending content comparison for two regular files of equal,
// nonzero length.
type FilePair struct {
	Left  models.Entry
	Right models.Entry
}

// DirPair is a pending recursion into two directories with the same name.
type DirPair struct {
	Left  models.Entry
	Right models.Entry
}

// MergeResult is the outcome of merging two directory listings.
// All three slices are ordered by entry name.
type MergeResult struct {
	// Resolved holds classifications that needed no further I/O:
	// Added, Deleted, TypeMismatch, Modified by size, Unchanged by zero size.
	Resolved []models.Classification

	// Files holds file pairs that still need a content comparison.
	Files []FilePair

	// Dirs holds directory pairs that still need recursion.
	Dirs []DirPair
}

// Merge aligns two directory listings by name and classifies every entry.
// Both listings are sorted byte-wise by name and walked with two cursors;
// names unique within a listing guarantee the walk needs no tie-break.
func Merge(left, right []models.Entry) MergeResult {
	sortByName(left)
	sortByName(right)

	var result MergeResult
	i, j := 0, 0

	for i < len(left) || j < len(right) {
		switch {
		case j >= len(right) || (i < len(left) && left[i].Name < right[j].Name):
			result.Resolved = append(result.Resolved, models.Deleted(left[i].Path, left[i].IsDir))
			i++
		case i >= len(left) || left[i].Name > right[j].Name:
			result.Resolved = append(result.Resolved, models.Added(right[j].Path, right[j].IsDir))
			j++
		default:
			result.resolvePair(left[i], right[j])
			i++
			j++
		}
	}

	return result
}

// resolvePair classifies a name present on both sides
func (r *MergeResult) resolvePair(left, right models.Entry) {
	switch {
	case left.IsDir != right.IsDir:
		r.Resolved = append(r.Resolved, models.TypeMismatch(left.Path, right.Path))
	case left.IsDir:
		r.Dirs = append(r.Dirs, DirPair{Left: left, Right: right})
	case left.Size != right.Size:
		// Conclusive without reading content
		r.Resolved = append(r.Resolved, models.Modified(left.Path, right.Path))
	case left.Size == 0:
		// Two empty files are trivially identical
		r.Resolved = append(r.Resolved, models.Unchanged(left.Path, right.Path))
	default:
		r.Files = append(r.Files, FilePair{Left: left, Right: right})
	}
}

func sortByName(entries []models.Entry) {
	sort.Slice(entries, func(a, b int) bool {
		return entries[a].Name < entries[b].Name
	})
}
