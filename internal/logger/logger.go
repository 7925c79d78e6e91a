// Package logger carries a slog logger on a context so that the pipeline
// logs through whatever handler the command installed.
package logger

import (
	"context"
	"io"

	"golang.org/x/exp/slog"
)

type ctxKey struct{}

// FromContext returns the logger attached by NewContext. A context without
// one yields slog.Default(), so library code can always log.
func FromContext(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok {
		return l
	}
	return slog.Default()
}

// NewContext returns a child of ctx that carries l for FromContext.
func NewContext(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// New returns a text logger writing records at or above level to w.
func New(w io.Writer, level slog.Leveler) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
