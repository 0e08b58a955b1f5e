package lockpattern

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler drops every record. Enabled reports false for all levels,
// so a silent widget pays nothing for attribute formatting.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func silentLogger() *slog.Logger { return slog.New(nopHandler{}) }

// current is swapped atomically: the windowed app may enable logging
// from its flag handling while input callbacks already log.
var current atomic.Pointer[slog.Logger]

func init() {
	current.Store(silentLogger())
}

// SetLogger routes the log output of the grid, the widget, the host loop
// and the input adapters to l. Nothing is logged until it is
// called; SetLogger(nil) silences the package again.
//
// Levels:
//   - [slog.LevelDebug]: every dispatched event, dots appended per event
//   - [slog.LevelInfo]: a pattern starts or completes
//   - [slog.LevelWarn]: input dropped, loop stopped by an error
//
// The commands wire -v to:
//
//	lockpattern.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silentLogger()
	}
	current.Store(l)
}

// Logger returns the logger set by SetLogger, or a silent one.
func Logger() *slog.Logger {
	return current.Load()
}
