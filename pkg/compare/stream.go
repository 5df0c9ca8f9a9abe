package compare

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/sdejongh/dirdiff/pkg/storage"
)

// DefaultStreamBufferSize is the chunk size for streaming comparison
const DefaultStreamBufferSize = 128 * 1024

// StreamComparator compares files chunk-by-chunk with early exit on the
// first differing chunk. It never reads past the first divergence, which
// minimizes I/O when files differ early.
type StreamComparator struct {
	bufferSize int
	bufferPool *sync.Pool
}

// NewStreamComparator creates a new streaming comparator
func NewStreamComparator(bufferSize int) *StreamComparator {
	if bufferSize < 4096 {
		bufferSize = DefaultStreamBufferSize
	}
	return &StreamComparator{
		bufferSize: bufferSize,
		bufferPool: &sync.Pool{
			New: func() interface{} {
				buf := make([]byte, bufferSize)
				return &buf
			},
		},
	}
}

// Compare reads both files in lock-step and compares each chunk
func (c *StreamComparator) Compare(ctx context.Context, backend storage.Backend, leftPath, rightPath string, length int64) (*Comparison, error) {
	leftReader, err := backend.Open(ctx, leftPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", leftPath, err)
	}
	defer leftReader.Close()

	rightReader, err := backend.Open(ctx, rightPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", rightPath, err)
	}
	defer rightReader.Close()

	leftBufPtr := c.bufferPool.Get().(*[]byte)
	defer c.bufferPool.Put(leftBufPtr)
	leftBuf := *leftBufPtr

	rightBufPtr := c.bufferPool.Get().(*[]byte)
	defer c.bufferPool.Put(rightBufPtr)
	rightBuf := *rightBufPtr

	var offset int64

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		leftN, leftErr := io.ReadFull(leftReader, leftBuf)
		rightN, rightErr := io.ReadFull(rightReader, rightBuf)

		if leftErr != nil && leftErr != io.EOF && leftErr != io.ErrUnexpectedEOF {
			return nil, fmt.Errorf("failed to read %s: %w", leftPath, leftErr)
		}
		if rightErr != nil && rightErr != io.EOF && rightErr != io.ErrUnexpectedEOF {
			return nil, fmt.Errorf("failed to read %s: %w", rightPath, rightErr)
		}

		// Lengths were equal at listing time; a mid-stream length change
		// still counts as a content difference, not an error.
		if leftN != rightN {
			return &Comparison{
				LeftPath:  leftPath,
				RightPath: rightPath,
				Result:    Different,
				Reason:    fmt.Sprintf("length diverged at offset %d", offset),
			}, nil
		}

		if leftN > 0 && !bytes.Equal(leftBuf[:leftN], rightBuf[:rightN]) {
			return &Comparison{
				LeftPath:  leftPath,
				RightPath: rightPath,
				Result:    Different,
				Reason:    fmt.Sprintf("content differs within chunk at offset %d", offset),
			}, nil
		}

		offset += int64(leftN)

		if leftErr == io.EOF || leftErr == io.ErrUnexpectedEOF {
			break
		}
	}

	return &Comparison{
		LeftPath:  leftPath,
		RightPath: rightPath,
		Result:    Same,
		Reason:    fmt.Sprintf("content matches (%d bytes)", offset),
	}, nil
}

// Name returns the comparator name
func (c *StreamComparator) Name() string {
	return "stream"
}
