package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// FromContext returns the logger stored in ctx. Code running without one
// (tests, a card built outside the CLI) gets zerolog's disabled logger.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WithContext stores logger in ctx for FromContext.
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// WithComponent tags every line logged through the returned context with
// component=name, e.g. "card".
func WithComponent(ctx context.Context, name string) context.Context {
	tagged := FromContext(ctx).With().Str("component", name).Logger()
	return WithContext(ctx, tagged)
}
