package polyraster

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// silentHandler drops every record. Enabled reports false so Render never
// builds its per-polygon attributes unless a real logger is installed.
type silentHandler struct{}

func (silentHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (silentHandler) Handle(context.Context, slog.Record) error { return nil }
func (h silentHandler) WithAttrs([]slog.Attr) slog.Handler      { return h }
func (h silentHandler) WithGroup(string) slog.Handler           { return h }

var silent = slog.New(silentHandler{})

// activeLogger is read by every Render call and may be swapped while renders
// run on other goroutines.
var activeLogger atomic.Pointer[slog.Logger]

func init() {
	activeLogger.Store(silent)
}

// SetLogger routes polyraster diagnostics to l. A nil l silences them again,
// which is also the initial state.
//
// Render emits at [slog.LevelDebug] only:
//   - "polyraster: polygon rendered" with index, vertices, fill, scanlines, spans
//   - "polyraster: degenerate polygon" for polygons with fewer than 2 vertices
//   - "polyraster: render pass done" with the canvas size and totals
//
// The polyraster command logs its own per-file summaries at [slog.LevelInfo].
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	activeLogger.Store(l)
}

// Logger returns the logger polyraster currently writes to.
func Logger() *slog.Logger {
	return activeLogger.Load()
}
