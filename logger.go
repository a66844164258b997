package wildcard

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with the field names used by this package.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger with the given handler.
// If handler is nil, uses a text handler to stderr at info level.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that writes human-readable text to stderr.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewJSONLogger creates a Logger that writes JSON to stderr.
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

var discardLogger = NoopLogger()

// NoopLogger creates a Logger that discards everything.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// LogCompile logs a newly built Matcher.
func (l *Logger) LogCompile(ctx context.Context, pattern string, graphemes, stars int, memo MemoStrategy, preprocess bool) {
	l.DebugContext(ctx, "matcher compiled",
		"pattern", pattern,
		"graphemes", graphemes,
		"stars", stars,
		"memo", memo.String(),
		"preprocess", preprocess,
	)
}

// LogFilter logs the outcome of a batch filter.
func (l *Logger) LogFilter(ctx context.Context, texts, workers, kept int, err error) {
	if err != nil {
		l.WarnContext(ctx, "filter aborted",
			"texts", texts,
			"workers", workers,
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "filter completed",
		"texts", texts,
		"workers", workers,
		"kept", kept,
	)
}
