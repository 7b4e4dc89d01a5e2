package logger

import (
	"context"
	"io"
	"time"

	"github.com/rs/zerolog"
)

// Logger is a wrapper around zerolog.Logger for convenience.
type Logger = zerolog.Logger

// New creates a JSON logger writing to w at the given level.
func New(level string, w io.Writer) (Logger, error) {
	zerologLevel, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), err
	}

	zerolog.TimestampFunc = func() time.Time {
		return time.Now().UTC()
	}

	return zerolog.New(w).
		Level(zerologLevel).
		With().
		Timestamp().
		Str("app", "aws-ri-doctor").
		Logger(), nil
}

// WithContext attaches l to ctx so that zerolog.Ctx finds it downstream.
func WithContext(ctx context.Context, l Logger) context.Context {
	return l.WithContext(ctx)
}
