package compare

import (
	"context"
	"crypto/sha256"
	"fmt"
	"io"
	"sync"

	"github.com/sdejongh/dirdiff/pkg/storage"
)

// DefaultDigestBufferSize is the chunk size for digest computation
const DefaultDigestBufferSize = 8 * 1024

// DigestComparator compares files by their SHA-256 digests. Each comparison
// job owns its own digest state and scratch buffers, so jobs can run
// concurrently on a worker pool without sharing mutable state.
type DigestComparator struct {
	bufferSize int
	bufferPool *sync.Pool
}

// NewDigestComparator creates a new digest-based comparator
func NewDigestComparator(bufferSize int) *DigestComparator {
	if bufferSize < 4096 {
		bufferSize = DefaultDigestBufferSize
	}
	return &DigestComparator{
		bufferSize: bufferSize,
		bufferPool: &sync.Pool{
			New: func() interface{} {
				buf := make([]byte, bufferSize)
				return &buf
			},
		},
	}
}

// Compare hashes both files and compares the final digests. The two sides
// are hashed in parallel since they are independent streams.
func (c *DigestComparator) Compare(ctx context.Context, backend storage.Backend, leftPath, rightPath string, length int64) (*Comparison, error) {
	var leftDigest, rightDigest string
	var leftErr, rightErr error
	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		leftDigest, leftErr = c.computeDigest(ctx, backend, leftPath)
	}()
	go func() {
		defer wg.Done()
		rightDigest, rightErr = c.computeDigest(ctx, backend, rightPath)
	}()
	wg.Wait()

	if leftErr != nil {
		return nil, leftErr
	}
	if rightErr != nil {
		return nil, rightErr
	}

	if leftDigest != rightDigest {
		return &Comparison{
			LeftPath:  leftPath,
			RightPath: rightPath,
			Result:    Different,
			Reason:    "digests differ",
		}, nil
	}

	return &Comparison{
		LeftPath:  leftPath,
		RightPath: rightPath,
		Result:    Same,
		Reason:    "digests match",
	}, nil
}

// computeDigest streams a file through SHA-256
func (c *DigestComparator) computeDigest(ctx context.Context, backend storage.Backend, path string) (string, error) {
	reader, err := backend.Open(ctx, path)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer reader.Close()

	hasher := sha256.New()

	bufPtr := c.bufferPool.Get().(*[]byte)
	defer c.bufferPool.Put(bufPtr)
	buffer := *bufPtr

	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
		}

		n, err := reader.Read(buffer)
		if n > 0 {
			hasher.Write(buffer[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", path, err)
		}
	}

	return fmt.Sprintf("%x", hasher.Sum(nil)), nil
}

// Name returns the comparator name
func (c *DigestComparator) Name() string {
	return "digest"
}
