package output

import (
	"fmt"
	"io"

	"github.com/sdejongh/dirdiff/pkg/models"
)

// PlainRenderer writes one uncolored line per classification. Differences go
// to the primary writer, errors to the error writer.
type PlainRenderer struct {
	out     io.Writer
	errOut  io.Writer
	reducer pathReducer
}

// NewPlainRenderer creates a plain-text renderer for the given tree roots
func NewPlainRenderer(out, errOut io.Writer, leftRoot, rightRoot string) *PlainRenderer {
	return &PlainRenderer{
		out:     out,
		errOut:  errOut,
		reducer: pathReducer{leftRoot: leftRoot, rightRoot: rightRoot},
	}
}

// Accept renders one classification
func (r *PlainRenderer) Accept(c models.Classification) error {
	switch c.Kind {
	case models.KindModified:
		_, err := fmt.Fprintf(r.out, "M: %s\n", r.reducer.reduce(c))
		return err
	case models.KindAdded:
		_, err := fmt.Fprintf(r.out, "A: %s\n", r.reducer.reduce(c))
		return err
	case models.KindDeleted:
		_, err := fmt.Fprintf(r.out, "D: %s\n", r.reducer.reduce(c))
		return err
	case models.KindUnchanged:
		_, err := fmt.Fprintf(r.out, "-: %s\n", r.reducer.reduce(c))
		return err
	case models.KindTypeMismatch:
		_, err := fmt.Fprintf(r.out, "X: %s <-> %s\n", r.reducer.reduceLeft(c), r.reducer.reduceRight(c))
		return err
	case models.KindError:
		_, err := fmt.Fprintf(r.errOut, "Error: %s\n", errorLine(c))
		return err
	}
	return nil
}

// errorLine formats the cause of an error classification with both paths
func errorLine(c models.Classification) string {
	switch {
	case c.LeftPath != "" && c.RightPath != "":
		return fmt.Sprintf("failed to compare '%s' and '%s': %s", c.LeftPath, c.RightPath, c.Detail)
	case c.LeftPath != "":
		return fmt.Sprintf("'%s': %s", c.LeftPath, c.Detail)
	default:
		return fmt.Sprintf("'%s': %s", c.RightPath, c.Detail)
	}
}
