package recorder

import (
	"encoding/json"
	"io"
	"os"
	"sync"
)

// Recorder captures dashboard interactions for later replay.
// Thread-safe for concurrent use.
type Recorder struct {
	mu      sync.Mutex
	records []Interaction
	writer  io.Writer
}

// New creates a new Recorder. If w is non-nil, interactions are also
// written to w as newline-delimited JSON as they arrive.
func New(w io.Writer) *Recorder {
	return &Recorder{writer: w}
}

// Record captures a single interaction.
func (r *Recorder) Record(in Interaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records = append(r.records, in)
	if r.writer != nil {
		return json.NewEncoder(r.writer).Encode(in)
	}
	return nil
}

// Records returns a copy of everything recorded so far.
func (r *Recorder) Records() []Interaction {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Interaction, len(r.records))
	copy(out, r.records)
	return out
}

// Len returns the number of recorded interactions.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.records)
}

// ExportJSON writes all interactions to w as an indented JSON array.
func (r *Recorder) ExportJSON(w io.Writer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	records := r.records
	if records == nil {
		records = []Interaction{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}

// ExportFile writes all interactions to path as a JSON array.
func (r *Recorder) ExportFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := r.ExportJSON(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// LoadJSON reads interactions from a JSON array.
func LoadJSON(r io.Reader) ([]Interaction, error) {
	var records []Interaction
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, err
	}
	return records, nil
}
