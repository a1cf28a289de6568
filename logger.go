package pulseicon

import (
	"log/slog"
	"sync/atomic"
)

// discard drops every record; its Enabled reports false, so Render pays
// nothing for the per-layer debug calls when no logger is set.
var discard = slog.New(slog.DiscardHandler)

var logger atomic.Pointer[slog.Logger]

// SetLogger routes the composer's progress records to l. A nil l turns
// logging off again, which is the initial state.
//
// Render emits one Debug record per layer (step name and elapsed time)
// and one after masking. WriteFile adds an Info record with the output
// path, the dimensions and the pixel digest.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = discard
	}
	logger.Store(l)
}

// Logger returns the logger set with SetLogger, or a discarding one.
func Logger() *slog.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	return discard
}
