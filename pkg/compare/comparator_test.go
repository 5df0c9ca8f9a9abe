package compare

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/sdejongh/dirdiff/pkg/models"
	"github.com/sdejongh/dirdiff/pkg/storage"
)

// TestHelper provides utilities for comparator tests
type TestHelper struct {
	t       *testing.T
	tempDir string
	backend *storage.Local
}

// NewTestHelper creates a new test helper with a temporary directory
func NewTestHelper(t *testing.T) *TestHelper {
	t.Helper()
	return &TestHelper{
		t:       t,
		tempDir: t.TempDir(),
		backend: storage.NewLocal(),
	}
}

// CreateFile creates a file and returns its full path
func (h *TestHelper) CreateFile(name string, content []byte) string {
	h.t.Helper()
	path := filepath.Join(h.tempDir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		h.t.Fatalf("failed to create parent dir: %v", err)
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		h.t.Fatalf("failed to create file: %v", err)
	}
	return path
}

// countingBackend tracks bytes read through every opened file
type countingBackend struct {
	inner     storage.Backend
	bytesRead atomic.Int64
}

func (b *countingBackend) ListDir(ctx context.Context, path string, exclude storage.ExcludeSet) ([]models.Entry, error) {
	return b.inner.ListDir(ctx, path, exclude)
}

func (b *countingBackend) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	rc, err := b.inner.Open(ctx, path)
	if err != nil {
		return nil, err
	}
	return &countingReader{inner: rc, counter: &b.bytesRead}, nil
}

func (b *countingBackend) Stat(ctx context.Context, path string) (*models.Entry, error) {
	return b.inner.Stat(ctx, path)
}

func (b *countingBackend) Close() error { return b.inner.Close() }

type countingReader struct {
	inner   io.ReadCloser
	counter *atomic.Int64
}

func (r *countingReader) Read(p []byte) (int, error) {
	n, err := r.inner.Read(p)
	r.counter.Add(int64(n))
	return n, err
}

func (r *countingReader) Close() error { return r.inner.Close() }

func testComparators(bufferSize int) []Comparator {
	return []Comparator{
		NewStreamComparator(bufferSize),
		NewDigestComparator(bufferSize),
	}
}

func TestComparators_IdenticalFiles(t *testing.T) {
	h := NewTestHelper(t)
	content := bytes.Repeat([]byte("identical chunk "), 1024)
	left := h.CreateFile("left.bin", content)
	right := h.CreateFile("right.bin", content)

	for _, comparator := range testComparators(0) {
		t.Run(comparator.Name(), func(t *testing.T) {
			cmp, err := comparator.Compare(context.Background(), h.backend, left, right, int64(len(content)))
			if err != nil {
				t.Fatalf("Compare() error = %v", err)
			}
			if cmp.Result != Same {
				t.Errorf("Result = %s, want %s (%s)", cmp.Result, Same, cmp.Reason)
			}
		})
	}
}

func TestComparators_SameLengthDifferentContent(t *testing.T) {
	h := NewTestHelper(t)
	left := h.CreateFile("left.txt", []byte("x"))
	right := h.CreateFile("right.txt", []byte("y"))

	for _, comparator := range testComparators(0) {
		t.Run(comparator.Name(), func(t *testing.T) {
			cmp, err := comparator.Compare(context.Background(), h.backend, left, right, 1)
			if err != nil {
				t.Fatalf("Compare() error = %v", err)
			}
			if cmp.Result != Different {
				t.Errorf("Result = %s, want %s", cmp.Result, Different)
			}
		})
	}
}

func TestComparators_DifferenceInLastChunk(t *testing.T) {
	h := NewTestHelper(t)
	// Multiple chunks at the 4 KiB minimum buffer size
	content := bytes.Repeat([]byte{0xAB}, 20*1024)
	altered := append([]byte(nil), content...)
	altered[len(altered)-1] = 0xCD

	left := h.CreateFile("left.bin", content)
	right := h.CreateFile("right.bin", altered)

	for _, comparator := range testComparators(4096) {
		t.Run(comparator.Name(), func(t *testing.T) {
			cmp, err := comparator.Compare(context.Background(), h.backend, left, right, int64(len(content)))
			if err != nil {
				t.Fatalf("Compare() error = %v", err)
			}
			if cmp.Result != Different {
				t.Errorf("Result = %s, want %s", cmp.Result, Different)
			}
		})
	}
}

func TestStreamComparator_StopsAtFirstDivergence(t *testing.T) {
	h := NewTestHelper(t)
	// Files diverge in the very first chunk; the streaming compare must not
	// read the remaining chunks of either file.
	left := h.CreateFile("left.bin", bytes.Repeat([]byte{0x01}, 64*1024))
	right := h.CreateFile("right.bin", bytes.Repeat([]byte{0x02}, 64*1024))

	backend := &countingBackend{inner: storage.NewLocal()}
	comparator := NewStreamComparator(4096)

	cmp, err := comparator.Compare(context.Background(), backend, left, right, 64*1024)
	if err != nil {
		t.Fatalf("Compare() error = %v", err)
	}
	if cmp.Result != Different {
		t.Fatalf("Result = %s, want %s", cmp.Result, Different)
	}

	// One chunk per side at most
	if got := backend.bytesRead.Load(); got > 2*4096 {
		t.Errorf("read %d bytes, want at most %d after early divergence", got, 2*4096)
	}
}

func TestComparators_MissingFileIsError(t *testing.T) {
	h := NewTestHelper(t)
	left := h.CreateFile("present.txt", []byte("data"))
	missing := filepath.Join(h.tempDir, "missing.txt")

	for _, comparator := range testComparators(0) {
		t.Run(comparator.Name(), func(t *testing.T) {
			_, err := comparator.Compare(context.Background(), h.backend, left, missing, 4)
			if err == nil {
				t.Fatal("Compare() error = nil, want open failure")
			}
		})
	}
}

func TestComparators_Names(t *testing.T) {
	if name := NewStreamComparator(0).Name(); name != "stream" {
		t.Errorf("Name() = %s, want stream", name)
	}
	if name := NewDigestComparator(0).Name(); name != "digest" {
		t.Errorf("Name() = %s, want digest", name)
	}
}
