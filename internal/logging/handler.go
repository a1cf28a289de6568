// Package logging bridges log/slog records to a zerolog.Logger.
//
// The pulseicon package logs through slog; the command wires that to
// zerolog so console output matches the rest of the tooling.
package logging

import (
	"context"
	"log/slog"
	"slices"

	"github.com/rs/zerolog"
)

// Handler is a slog.Handler that writes through a zerolog.Logger.
// Group names become dotted key prefixes.
type Handler struct {
	log    zerolog.Logger
	level  slog.Leveler
	prefix string
	attrs  []prefixedAttr
}

type prefixedAttr struct {
	prefix string
	attr   slog.Attr
}

// NewHandler returns a handler that emits records at or above level to l.
// A nil level means slog.LevelInfo.
func NewHandler(l zerolog.Logger, level slog.Leveler) *Handler {
	if level == nil {
		level = slog.LevelInfo
	}
	return &Handler{log: l, level: level}
}

// Enabled implements slog.Handler.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle implements slog.Handler.
func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	e := h.log.WithLevel(zerologLevel(r.Level))
	if e == nil {
		return nil
	}
	for _, pa := range h.attrs {
		appendAttr(e, pa.prefix, pa.attr)
	}
	r.Attrs(func(a slog.Attr) bool {
		appendAttr(e, h.prefix, a)
		return true
	})
	e.Msg(r.Message)
	return nil
}

// WithAttrs implements slog.Handler.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	h2 := *h
	h2.attrs = slices.Clip(h.attrs)
	for _, a := range attrs {
		h2.attrs = append(h2.attrs, prefixedAttr{prefix: h.prefix, attr: a})
	}
	return &h2
}

// WithGroup implements slog.Handler.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	h2 := *h
	h2.prefix = h.prefix + name + "."
	return &h2
}

func zerologLevel(l slog.Level) zerolog.Level {
	switch {
	case l < slog.LevelInfo:
		return zerolog.DebugLevel
	case l < slog.LevelWarn:
		return zerolog.InfoLevel
	case l < slog.LevelError:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}

func appendAttr(e *zerolog.Event, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	key := prefix + a.Key
	v := a.Value

	switch v.Kind() {
	case slog.KindGroup:
		attrs := v.Group()
		if len(attrs) == 0 {
			return
		}
		// An inline group (empty key) keeps the current prefix.
		p := prefix
		if a.Key != "" {
			p = key + "."
		}
		for _, ga := range attrs {
			appendAttr(e, p, ga)
		}
	case slog.KindString:
		e.Str(key, v.String())
	case slog.KindInt64:
		e.Int64(key, v.Int64())
	case slog.KindUint64:
		e.Uint64(key, v.Uint64())
	case slog.KindFloat64:
		e.Float64(key, v.Float64())
	case slog.KindBool:
		e.Bool(key, v.Bool())
	case slog.KindDuration:
		e.Dur(key, v.Duration())
	case slog.KindTime:
		e.Time(key, v.Time())
	default:
		if err, ok := v.Any().(error); ok {
			e.AnErr(key, err)
			return
		}
		e.Interface(key, v.Any())
	}
}
