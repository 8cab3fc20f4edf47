package texter

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/texter/surface"
	"github.com/gogpu/texter/text"
)

// nopHandler is a slog.Handler that silently discards all log records.
// The Enabled method returns false so the caller skips message formatting
// entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for texter and all its sub-packages.
// By default, texter produces no log output.
//
// SetLogger is safe for concurrent use. Pass nil to restore silence.
//
// Log levels used by texter:
//   - [slog.LevelDebug]: per-glyph decisions, scratch sizes
//   - [slog.LevelInfo]: font loaded, canvas or window created
//   - [slog.LevelWarn]: backend fallback, resource release errors
//
// Example:
//
//	texter.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)

	// Sub-packages keep their own pointer; backends read surface.Logger.
	text.SetLogger(l)
	surface.SetLogger(l)
}

// Logger returns the current logger used by texter.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
