package output

import (
	"sync"

	"github.com/sdejongh/dirdiff/pkg/models"
)

// Recorder is a sink that collects every classification it receives.
// Used by tests and by callers that post-process a full run.
type Recorder struct {
	mu      sync.Mutex
	results []models.Classification
}

// NewRecorder creates an empty recorder
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Accept stores one classification
func (r *Recorder) Accept(c models.Classification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.results = append(r.results, c)
	return nil
}

// Results returns the collected classifications in arrival order
func (r *Recorder) Results() []models.Classification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Classification, len(r.results))
	copy(out, r.results)
	return out
}
