package logger

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

const (
	LevelDebug string = "DEBUG"
	LevelInfo  string = "INFO"
	LevelWarn  string = "WARN"
	LevelError string = "ERROR"
)

type ctxKey struct{}

// ParseLevel maps a level name to a slog level. Unknown names fall back to WARN
// so diagnostics never interleave with the report unless asked for.
func ParseLevel(name string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// New builds a text logger writing to w. Session attributes stored with
// WithSession are added to every record logged with that context.
func New(w io.Writer, level string) *slog.Logger {
	handler := &contextHandler{
		handler: slog.NewTextHandler(w, &slog.HandlerOptions{
			Level: ParseLevel(level),
		}),
	}
	return slog.New(handler).With(slog.String("service", "bikeshare"))
}

// WithSession returns a context carrying the session iteration ID
func WithSession(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, ctxKey{}, sessionID)
}

// SessionID returns the session iteration ID stored in ctx, if any
func SessionID(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

// contextHandler injects values from context
type contextHandler struct {
	handler slog.Handler
}

func (h *contextHandler) Enabled(ctx context.Context, lvl slog.Level) bool {
	return h.handler.Enabled(ctx, lvl)
}

func (h *contextHandler) Handle(ctx context.Context, r slog.Record) error {
	if id := SessionID(ctx); id != "" {
		r.AddAttrs(slog.String("session_id", id))
	}
	return h.handler.Handle(ctx, r)
}

func (h *contextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &contextHandler{handler: h.handler.WithAttrs(attrs)}
}

func (h *contextHandler) WithGroup(name string) slog.Handler {
	return &contextHandler{handler: h.handler.WithGroup(name)}
}
