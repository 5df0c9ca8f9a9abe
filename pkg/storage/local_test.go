package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path string, content []byte) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
}

func TestLocal_ListDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.txt"), []byte("aaa"))
	writeFile(t, filepath.Join(dir, "b.txt"), []byte("bb"))
	if err := os.MkdirAll(filepath.Join(dir, "sub"), 0o755); err != nil {
		t.Fatalf("failed to mkdir: %v", err)
	}

	backend := NewLocal()
	defer backend.Close()

	entries, err := backend.ListDir(context.Background(), dir, nil)
	if err != nil {
		t.Fatalf("ListDir() error = %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}

	byName := make(map[string]int)
	for i, e := range entries {
		byName[e.Name] = i
		if e.Path != filepath.Join(dir, e.Name) {
			t.Errorf("Path = %s, want %s", e.Path, filepath.Join(dir, e.Name))
		}
	}

	a := entries[byName["a.txt"]]
	if a.IsDir || a.Size != 3 {
		t.Errorf("a.txt: IsDir=%v Size=%d, want file of 3 bytes", a.IsDir, a.Size)
	}
	sub := entries[byName["sub"]]
	if !sub.IsDir {
		t.Error("sub: IsDir = false, want true")
	}
	if sub.Size != 0 {
		t.Errorf("sub: Size = %d, want 0 for directories", sub.Size)
	}
}

func TestLocal_ListDirExcludes(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "keep.txt"), []byte("k"))
	writeFile(t, filepath.Join(dir, ".git"), []byte("skip me"))
	writeFile(t, filepath.Join(dir, "node_modules"), []byte("skip me too"))

	backend := NewLocal()
	exclude := NewExcludeSet([]string{".git", "node_modules"})

	entries, err := backend.ListDir(context.Background(), dir, exclude)
	if err != nil {
		t.Fatalf("ListDir() error = %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1: %v", len(entries), entries)
	}
	if entries[0].Name != "keep.txt" {
		t.Errorf("Name = %s, want keep.txt", entries[0].Name)
	}
}

func TestLocal_ListDirMissing(t *testing.T) {
	backend := NewLocal()
	_, err := backend.ListDir(context.Background(), filepath.Join(t.TempDir(), "nope"), nil)
	if err == nil {
		t.Fatal("ListDir() error = nil, want failure for missing directory")
	}
}

func TestLocal_Open(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "f.txt")
	writeFile(t, path, []byte("content"))

	backend := NewLocal()
	rc, err := backend.Open(context.Background(), path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if string(data) != "content" {
		t.Errorf("read %q, want %q", data, "content")
	}
}

func TestLocal_Stat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "f.txt")
	writeFile(t, path, []byte("12345"))

	backend := NewLocal()
	entry, err := backend.Stat(context.Background(), path)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if entry.Name != "f.txt" || entry.Size != 5 || entry.IsDir {
		t.Errorf("entry = %+v, want f.txt, 5 bytes, not a dir", entry)
	}
}

func TestExcludeSet(t *testing.T) {
	set := NewExcludeSet([]string{".git", "", "target"})

	if !set.Contains(".git") {
		t.Error("Contains(.git) = false, want true")
	}
	if !set.Contains("target") {
		t.Error("Contains(target) = false, want true")
	}
	if set.Contains("") {
		t.Error("Contains(\"\") = true, empty names must be dropped")
	}
	if set.Contains("src") {
		t.Error("Contains(src) = true, want false")
	}
}
