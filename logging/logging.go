// Package logging provides the shared structured logger used across the
// ai, dijkstra, and cmd/dmapdebug packages, grounded on zerolog's own
// idiomatic console-writer setup (the teacher's game/logging.go is a
// hand-rolled fmt.Fprintln-to-io.Writer logger that this replaces — see
// DESIGN.md).
package logging

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger is the process-wide logger. Callers that want a different
// destination or level can reassign it before the first log call.
var Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
	With().
	Timestamp().
	Logger().
	Level(zerolog.InfoLevel)

// SetLevel adjusts the minimum level Logger emits.
func SetLevel(level zerolog.Level) {
	Logger = Logger.Level(level)
}
