// Package cli implements the pixelextrude command-line interface.
//
// The CLI is built using cobra and logs through charmbracelet/log. Status
// lines for the user go to stdout; log records go to the writer passed to
// New (stderr in main).
//
// # Commands
//
//   - extrude: Add the back layer to one or more SVG files
//   - serve: Run the HTTP extrusion API
//   - cache: Manage the artifact cache
//   - completion: Generate shell completion scripts
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which also
// turns on per-event pipeline, cache and request logging.
package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// batchProgress times a batch and logs its outcome once it finishes.
type batchProgress struct {
	logger *log.Logger
	start  time.Time
	total  int
}

func newBatchProgress(l *log.Logger, total int) *batchProgress {
	return &batchProgress{logger: l, start: time.Now(), total: total}
}

// done logs how many of the batch's files succeeded and how long the batch
// took, rounded to the millisecond:
//
//	Extruded 3 of 4 files (12ms) failed=1
//
// Any failure raises the record to warn level.
func (p *batchProgress) done(failed int) {
	msg := fmt.Sprintf("Extruded %d of %d files (%s)",
		p.total-failed, p.total, time.Since(p.start).Round(time.Millisecond))
	if failed > 0 {
		p.logger.Warn(msg, "failed", failed)
		return
	}
	p.logger.Info(msg)
}

type ctxKey int

// loggerKey is the context key for storing a logger.
const loggerKey ctxKey = 0

// withLogger attaches l to ctx so that observability hooks, which only see
// a context, log through the CLI's logger.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, falling back to
// log.Default(). Hook events raised outside a command (tests, library use)
// land there.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
