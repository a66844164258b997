package wildcard

import (
	"fmt"
	"log/slog"
	"runtime"
)

// MemoStrategy selects how the match grid is memoized.
type MemoStrategy int

const (
	// MemoAuto uses a dense table up to the dense cell limit and a sparse
	// map beyond it.
	MemoAuto MemoStrategy = iota
	// MemoDense always allocates the full (P+2)x(T+2) grid.
	MemoDense
	// MemoSparse only stores the cells the search visits.
	MemoSparse
)

func (s MemoStrategy) String() string {
	switch s {
	case MemoAuto:
		return "auto"
	case MemoDense:
		return "dense"
	case MemoSparse:
		return "sparse"
	default:
		return fmt.Sprintf("MemoStrategy(%d)", int(s))
	}
}

type options struct {
	preprocess     bool
	memo           MemoStrategy
	denseCellLimit int
	workers        int
	logger         *Logger
}

func defaultOptions() options {
	return options{
		memo:           MemoAuto,
		denseCellLimit: DefaultDenseCellLimit,
		logger:         discardLogger,
	}
}

// Option configures a Matcher.
type Option func(*options)

// WithPreprocess enables the star-collapsing and affix-stripping pass
// (see Preprocess) before each match. It is off by default.
func WithPreprocess(enabled bool) Option {
	return func(o *options) {
		o.preprocess = enabled
	}
}

// WithMemo sets the memo table strategy. Defaults to MemoAuto.
func WithMemo(strategy MemoStrategy) Option {
	return func(o *options) {
		o.memo = strategy
	}
}

// WithDenseCellLimit sets the grid size, in cells, above which MemoAuto
// switches to a sparse table.
func WithDenseCellLimit(cells int) Option {
	return func(o *options) {
		o.denseCellLimit = cells
	}
}

// WithWorkers bounds the number of goroutines FilterParallel uses.
// Zero means runtime.NumCPU().
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithLogger sets the logger for matcher diagnostics.
//
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithSlog is like WithLogger but wraps an existing *slog.Logger.
func WithSlog(l *slog.Logger) Option {
	return func(o *options) {
		if l == nil {
			o.logger = NoopLogger()
			return
		}
		o.logger = &Logger{Logger: l}
	}
}

func (o *options) validate() error {
	switch o.memo {
	case MemoAuto, MemoDense, MemoSparse:
	default:
		return fmt.Errorf("wildcard: unknown memo strategy %v: %w", o.memo, ErrInvalidOption)
	}
	if o.denseCellLimit <= 0 {
		return fmt.Errorf("wildcard: dense cell limit must be positive, got %d: %w", o.denseCellLimit, ErrInvalidOption)
	}
	if o.workers < 0 {
		return fmt.Errorf("wildcard: workers must not be negative, got %d: %w", o.workers, ErrInvalidOption)
	}
	return nil
}

// parallelism returns the worker count FilterParallel should use for n
// texts.
func (o *options) parallelism(n int) int {
	workers := o.workers
	if workers == 0 {
		workers = runtime.NumCPU()
	}
	if workers < 1 {
		workers = 1
	}
	if workers > n {
		workers = n
	}
	return workers
}
