// Package telemetry writes a per-tick CSV decision trace, grounded on the
// teacher's telemetry/output.go: an *os.File opened once, gocsv.Marshal on
// the first record (to emit headers) and gocsv.MarshalWithoutHeaders after.
package telemetry

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"
)

// DecisionRecord is one entity's outcome for one tick.
type DecisionRecord struct {
	Tick     int     `csv:"tick"`
	Entity   uint64  `csv:"entity"`
	X        int     `csv:"x"`
	Y        int     `csv:"y"`
	Action   string  `csv:"action"`
	MapValue float64 `csv:"map_value"`
}

// TraceWriter appends DecisionRecords to a CSV file, writing the header row
// only once.
type TraceWriter struct {
	file          *os.File
	headerWritten bool
}

// NewTraceWriter creates (or truncates) path and returns a writer over it.
func NewTraceWriter(path string) (*TraceWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating trace file: %w", err)
	}
	return &TraceWriter{file: f}, nil
}

// Write appends one record, writing the CSV header first if this is the
// writer's first call.
func (w *TraceWriter) Write(rec DecisionRecord) error {
	records := []DecisionRecord{rec}
	if !w.headerWritten {
		if err := gocsv.Marshal(records, w.file); err != nil {
			return fmt.Errorf("writing trace record: %w", err)
		}
		w.headerWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, w.file); err != nil {
		return fmt.Errorf("writing trace record: %w", err)
	}
	return nil
}

// Close closes the underlying file.
func (w *TraceWriter) Close() error {
	return w.file.Close()
}
