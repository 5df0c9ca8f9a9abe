package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestValidateRoots(t *testing.T) {
	dir := t.TempDir()
	left := filepath.Join(dir, "left")
	right := filepath.Join(dir, "right")
	for _, d := range []string{left, right} {
		if err := os.MkdirAll(d, 0o755); err != nil {
			t.Fatalf("failed to mkdir: %v", err)
		}
	}
	file := filepath.Join(dir, "plain.txt")
	if err := os.WriteFile(file, []byte("not a directory"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	t.Run("both_directories", func(t *testing.T) {
		if err := validateRoots(left, right); err != nil {
			t.Errorf("validateRoots() error = %v, want nil", err)
		}
	})

	t.Run("missing_root", func(t *testing.T) {
		if err := validateRoots(filepath.Join(dir, "nope"), right); err == nil {
			t.Error("validateRoots() error = nil, want failure for missing directory")
		}
	})

	t.Run("file_instead_of_directory", func(t *testing.T) {
		if err := validateRoots(left, file); err == nil {
			t.Error("validateRoots() error = nil, want failure for regular file")
		}
	})

	t.Run("empty_path", func(t *testing.T) {
		if err := validateRoots("", right); err == nil {
			t.Error("validateRoots() error = nil, want failure for empty path")
		}
	})
}
