package diff

import (
	"testing"

	"github.com/sdejongh/dirdiff/pkg/models"
)

func fileAt(root, name string, size int64) models.Entry {
	return models.Entry{Name: name, Path: root + "/" + name, Size: size}
}

func dirAt(root, name string) models.Entry {
	return models.Entry{Name: name, Path: root + "/" + name, IsDir: true}
}

func TestMerge_LeftOnly(t *testing.T) {
	result := Merge(
		[]models.Entry{fileAt("/left", "only.txt", 3)},
		nil,
	)

	if len(result.Resolved) != 1 {
		t.Fatalf("Resolved len = %d, want 1", len(result.Resolved))
	}
	c := result.Resolved[0]
	if c.Kind != models.KindDeleted {
		t.Errorf("Kind = %s, want %s", c.Kind, models.KindDeleted)
	}
	if c.LeftPath != "/left/only.txt" {
		t.Errorf("LeftPath = %s, want /left/only.txt", c.LeftPath)
	}
	if c.RightPath != "" {
		t.Errorf("RightPath = %s, want empty", c.RightPath)
	}
}

func TestMerge_RightOnly(t *testing.T) {
	result := Merge(
		nil,
		[]models.Entry{fileAt("/right", "new.txt", 3)},
	)

	if len(result.Resolved) != 1 {
		t.Fatalf("Resolved len = %d, want 1", len(result.Resolved))
	}
	if result.Resolved[0].Kind != models.KindAdded {
		t.Errorf("Kind = %s, want %s", result.Resolved[0].Kind, models.KindAdded)
	}
}

func TestMerge_TypeMismatch(t *testing.T) {
	result := Merge(
		[]models.Entry{dirAt("/left", "node")},
		[]models.Entry{fileAt("/right", "node", 10)},
	)

	if len(result.Resolved) != 1 {
		t.Fatalf("Resolved len = %d, want 1", len(result.Resolved))
	}
	c := result.Resolved[0]
	if c.Kind != models.KindTypeMismatch {
		t.Errorf("Kind = %s, want %s", c.Kind, models.KindTypeMismatch)
	}
	if c.LeftPath != "/left/node" || c.RightPath != "/right/node" {
		t.Errorf("paths = %s, %s, want both sides populated", c.LeftPath, c.RightPath)
	}
	if len(result.Dirs) != 0 {
		t.Errorf("Dirs len = %d, want 0: mismatched pair must not recurse", len(result.Dirs))
	}
}

func TestMerge_SizeShortCircuit(t *testing.T) {
	result := Merge(
		[]models.Entry{fileAt("/left", "f.txt", 5)},
		[]models.Entry{fileAt("/right", "f.txt", 9)},
	)

	if len(result.Resolved) != 1 {
		t.Fatalf("Resolved len = %d, want 1", len(result.Resolved))
	}
	if result.Resolved[0].Kind != models.KindModified {
		t.Errorf("Kind = %s, want %s without any content read", result.Resolved[0].Kind, models.KindModified)
	}
	if len(result.Files) != 0 {
		t.Errorf("Files len = %d, want 0", len(result.Files))
	}
}

func TestMerge_ZeroLengthPair(t *testing.T) {
	result := Merge(
		[]models.Entry{fileAt("/left", "empty", 0)},
		[]models.Entry{fileAt("/right", "empty", 0)},
	)

	if len(result.Resolved) != 1 {
		t.Fatalf("Resolved len = %d, want 1", len(result.Resolved))
	}
	if result.Resolved[0].Kind != models.KindUnchanged {
		t.Errorf("Kind = %s, want %s", result.Resolved[0].Kind, models.KindUnchanged)
	}
	if len(result.Files) != 0 {
		t.Errorf("Files len = %d, want 0: empty files need no content read", len(result.Files))
	}
}

func TestMerge_EqualSizePairBecomesJob(t *testing.T) {
	result := Merge(
		[]models.Entry{fileAt("/left", "f.txt", 7)},
		[]models.Entry{fileAt("/right", "f.txt", 7)},
	)

	if len(result.Resolved) != 0 {
		t.Fatalf("Resolved len = %d, want 0", len(result.Resolved))
	}
	if len(result.Files) != 1 {
		t.Fatalf("Files len = %d, want 1", len(result.Files))
	}
	pair := result.Files[0]
	if pair.Left.Path != "/left/f.txt" || pair.Right.Path != "/right/f.txt" {
		t.Errorf("pair paths = %s, %s", pair.Left.Path, pair.Right.Path)
	}
}

func TestMerge_DirPair(t *testing.T) {
	result := Merge(
		[]models.Entry{dirAt("/left", "sub")},
		[]models.Entry{dirAt("/right", "sub")},
	)

	if len(result.Dirs) != 1 {
		t.Fatalf("Dirs len = %d, want 1", len(result.Dirs))
	}
	if len(result.Resolved) != 0 {
		t.Errorf("Resolved len = %d, want 0", len(result.Resolved))
	}
}

func TestMerge_NameOrder(t *testing.T) {
	// Listings arrive unordered; the merge must emit in byte-wise name order
	left := []models.Entry{
		fileAt("/left", "zebra", 1),
		fileAt("/left", "alpha", 1),
		fileAt("/left", "Mango", 1),
	}
	right := []models.Entry{
		fileAt("/right", "beta", 1),
	}

	result := Merge(left, right)

	if len(result.Resolved) != 4 {
		t.Fatalf("Resolved len = %d, want 4", len(result.Resolved))
	}

	// Byte-wise order puts uppercase before lowercase
	wantOrder := []struct {
		kind models.Kind
		name string
	}{
		{models.KindDeleted, "Mango"},
		{models.KindDeleted, "alpha"},
		{models.KindAdded, "beta"},
		{models.KindDeleted, "zebra"},
	}

	for i, want := range wantOrder {
		got := result.Resolved[i]
		if got.Kind != want.kind {
			t.Errorf("Resolved[%d].Kind = %s, want %s", i, got.Kind, want.kind)
		}
		gotPath := got.Path()
		if gotPath[len(gotPath)-len(want.name):] != want.name {
			t.Errorf("Resolved[%d] path = %s, want suffix %s", i, gotPath, want.name)
		}
	}
}

func TestMerge_MixedLevel(t *testing.T) {
	left := []models.Entry{
		fileAt("/left", "common.txt", 4),
		dirAt("/left", "docs"),
		fileAt("/left", "gone.txt", 2),
	}
	right := []models.Entry{
		fileAt("/right", "common.txt", 4),
		dirAt("/right", "docs"),
		fileAt("/right", "fresh.txt", 2),
	}

	result := Merge(left, right)

	if len(result.Files) != 1 {
		t.Errorf("Files len = %d, want 1", len(result.Files))
	}
	if len(result.Dirs) != 1 {
		t.Errorf("Dirs len = %d, want 1", len(result.Dirs))
	}
	if len(result.Resolved) != 2 {
		t.Fatalf("Resolved len = %d, want 2", len(result.Resolved))
	}
	if result.Resolved[0].Kind != models.KindAdded {
		t.Errorf("Resolved[0].Kind = %s, want %s (fresh.txt)", result.Resolved[0].Kind, models.KindAdded)
	}
	if result.Resolved[1].Kind != models.KindDeleted {
		t.Errorf("Resolved[1].Kind = %s, want %s (gone.txt)", result.Resolved[1].Kind, models.KindDeleted)
	}
}
