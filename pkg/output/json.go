package output

import (
	"encoding/json"
	"io"

	"github.com/sdejongh/dirdiff/pkg/models"
)

// jsonEvent is the wire shape of one classification
type jsonEvent struct {
	Kind   string `json:"kind"`
	Path   string `json:"path"`
	Left   string `json:"left,omitempty"`
	Right  string `json:"right,omitempty"`
	IsDir  bool   `json:"is_dir,omitempty"`
	Detail string `json:"detail,omitempty"`
}

// JSONRenderer writes one JSON object per classification, one per line,
// suitable for piping into other tooling.
type JSONRenderer struct {
	encoder *json.Encoder
	reducer pathReducer
}

// NewJSONRenderer creates a JSON-lines renderer for the given tree roots
func NewJSONRenderer(out io.Writer, leftRoot, rightRoot string) *JSONRenderer {
	return &JSONRenderer{
		encoder: json.NewEncoder(out),
		reducer: pathReducer{leftRoot: leftRoot, rightRoot: rightRoot},
	}
}

// Accept renders one classification
func (r *JSONRenderer) Accept(c models.Classification) error {
	event := jsonEvent{
		Kind:   string(c.Kind),
		Path:   r.reducer.reduce(c),
		Left:   c.LeftPath,
		Right:  c.RightPath,
		IsDir:  c.IsDir,
		Detail: c.Detail,
	}
	return r.encoder.Encode(event)
}
