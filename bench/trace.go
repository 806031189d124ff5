package bench

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const traceFileMode = 0o644

// TraceEntry is one document of a trace file.
type TraceEntry struct {
	At      time.Time `yaml:"at"`
	Summary `yaml:",inline"`
}

// TraceWriter appends run summaries to a YAML file, one document per run.
type TraceWriter struct {
	path string
}

// NewTraceWriter returns a writer for path. The file is created on the
// first Append.
func NewTraceWriter(path string) *TraceWriter {
	return &TraceWriter{path: path}
}

// Path returns the trace file path.
func (t *TraceWriter) Path() string { return t.path }

// Append writes s as a new document stamped with at.
func (t *TraceWriter) Append(at time.Time, s Summary) error {
	f, err := os.OpenFile(t.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, traceFileMode)
	if err != nil {
		return fmt.Errorf("open trace: %w", err)
	}

	if err = writeEntry(f, TraceEntry{At: at, Summary: s}); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

func writeEntry(w io.Writer, e TraceEntry) error {
	if _, err := io.WriteString(w, "---\n"); err != nil {
		return fmt.Errorf("write trace: %w", err)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(e); err != nil {
		return fmt.Errorf("encode trace: %w", err)
	}

	return enc.Close()
}

// ReadTrace decodes every document of a trace stream.
func ReadTrace(r io.Reader) ([]TraceEntry, error) {
	dec := yaml.NewDecoder(r)

	var entries []TraceEntry
	for {
		var e TraceEntry
		err := dec.Decode(&e)
		if errors.Is(err, io.EOF) {
			return entries, nil
		}
		if err != nil {
			return nil, fmt.Errorf("decode trace: %w", err)
		}
		entries = append(entries, e)
	}
}
