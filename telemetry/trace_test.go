package telemetry_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/471VE/ai-roguelike/telemetry"
)

func TestTraceWriterWritesHeaderOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.csv")
	w, err := telemetry.NewTraceWriter(path)
	if err != nil {
		t.Fatalf("NewTraceWriter error = %v", err)
	}

	if err := w.Write(telemetry.DecisionRecord{Tick: 0, Entity: 1, X: 2, Y: 3, Action: "MoveRight", MapValue: 1.5}); err != nil {
		t.Fatalf("Write error = %v", err)
	}
	if err := w.Write(telemetry.DecisionRecord{Tick: 1, Entity: 1, X: 3, Y: 3, Action: "MoveRight", MapValue: 0.5}); err != nil {
		t.Fatalf("Write error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile error = %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3 (header + 2 records): %q", len(lines), string(data))
	}
	if !strings.Contains(lines[0], "tick") {
		t.Errorf("header line = %q, want it to contain \"tick\"", lines[0])
	}
}
