package output

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/sdejongh/dirdiff/pkg/models"
)

// ColorRenderer writes one colorized line per classification, with a small
// gutter showing which side of the pair each entry occupies:
//
//	M │▮▮│ path    both sides, content differs (blue)
//	A │ ▮│ path    right side only (green)
//	D │▮ │ path    left side only (red)
//	- │▮▮│ path    both sides, identical
//	X │▮▮│ path    both sides, different kinds (yellow)
type ColorRenderer struct {
	out     io.Writer
	errOut  io.Writer
	reducer pathReducer

	blue   *color.Color
	green  *color.Color
	red    *color.Color
	yellow *color.Color
	errRed *color.Color
}

// NewColorRenderer creates a colorized renderer for the given tree roots
func NewColorRenderer(out, errOut io.Writer, leftRoot, rightRoot string) *ColorRenderer {
	return &ColorRenderer{
		out:     out,
		errOut:  errOut,
		reducer: pathReducer{leftRoot: leftRoot, rightRoot: rightRoot},
		blue:    color.New(color.FgBlue),
		green:   color.New(color.FgGreen),
		red:     color.New(color.FgRed),
		yellow:  color.New(color.FgYellow),
		errRed:  color.New(color.FgHiRed),
	}
}

// Accept renders one classification
func (r *ColorRenderer) Accept(c models.Classification) error {
	switch c.Kind {
	case models.KindModified:
		return r.line("M", r.blue.Sprint("▮▮"), r.blue.Sprint(r.reducer.reduce(c)))
	case models.KindAdded:
		return r.line("A", " "+r.green.Sprint("▮"), r.green.Sprint(r.reducer.reduce(c)))
	case models.KindDeleted:
		return r.line("D", r.red.Sprint("▮")+" ", r.red.Sprint(r.reducer.reduce(c)))
	case models.KindUnchanged:
		return r.line("-", "▮▮", r.reducer.reduce(c))
	case models.KindTypeMismatch:
		pair := fmt.Sprintf("%s <-> %s", r.reducer.reduceLeft(c), r.reducer.reduceRight(c))
		return r.line("X", r.yellow.Sprint("▮▮"), r.yellow.Sprint(pair))
	case models.KindError:
		_, err := fmt.Fprintln(r.errOut, r.errRed.Sprintf("Error: %s", errorLine(c)))
		return err
	}
	return nil
}

func (r *ColorRenderer) line(tag, gutter, path string) error {
	_, err := fmt.Fprintf(r.out, "%s │%s│ %s\n", tag, gutter, path)
	return err
}
