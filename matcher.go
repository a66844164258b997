package wildcard

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// cancelCheckInterval is how many texts a FilterParallel worker matches
// between context checks.
const cancelCheckInterval = 256

// Matcher holds a pattern that has already been split into graphemes,
// together with its matching options. It is immutable after NewMatcher
// returns and safe for concurrent use by multiple goroutines.
type Matcher struct {
	pattern   string
	graphemes []string
	opts      options
}

// NewMatcher segments pattern once so it can be matched against many texts.
//
// Pattern syntax:
//   - "*" matches any sequence of graphemes, including none
//   - "?" matches exactly one grapheme
//   - every other grapheme matches itself
//
// An error is returned only when an Option is invalid; it wraps
// ErrInvalidOption.
func NewMatcher(pattern string, opts ...Option) (*Matcher, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}

	graphemes := Segment(pattern)
	if o.preprocess {
		graphemes = CollapseStars(graphemes)
	}

	stars := 0
	for _, g := range graphemes {
		if g == star {
			stars++
		}
	}
	o.logger.LogCompile(context.Background(), pattern, len(graphemes), stars, o.memo, o.preprocess)

	return &Matcher{
		pattern:   pattern,
		graphemes: graphemes,
		opts:      o,
	}, nil
}

// MustMatcher is like NewMatcher but panics if an Option is invalid.
func MustMatcher(pattern string, opts ...Option) *Matcher {
	m, err := NewMatcher(pattern, opts...)
	if err != nil {
		panic(err)
	}
	return m
}

// Pattern returns the source pattern.
func (m *Matcher) Pattern() string {
	return m.pattern
}

// Graphemes returns a copy of the pattern's graphemes. With preprocessing
// enabled, star runs are already collapsed.
func (m *Matcher) Graphemes() []string {
	out := make([]string, len(m.graphemes))
	copy(out, m.graphemes)
	return out
}

func (m *Matcher) String() string {
	return m.pattern
}

// Match reports whether the pattern matches all of text.
func (m *Matcher) Match(text string) bool {
	return m.MatchGraphemes(Segment(text))
}

// MatchGraphemes is like Match for a text that is already segmented.
func (m *Matcher) MatchGraphemes(text []string) bool {
	pattern := m.graphemes
	if m.opts.preprocess {
		pattern, text = TrimAffixes(pattern, text)
	}
	return evaluate(pattern, text, &m.opts)
}

// Filter returns the texts that match the pattern, in input order.
// It returns nil when nothing matches.
func (m *Matcher) Filter(texts []string) []string {
	var kept []string
	for _, t := range texts {
		if m.Match(t) {
			kept = append(kept, t)
		}
	}
	return kept
}

// FilterParallel is like Filter but splits texts into contiguous chunks
// and matches them on up to WithWorkers goroutines. Results are merged in
// input order.
//
// For small inputs the goroutine overhead may exceed the savings. Use
// Filter for those.
func (m *Matcher) FilterParallel(texts []string) []string {
	kept, _ := m.FilterParallelContext(context.Background(), texts)
	return kept
}

// FilterParallelContext is like FilterParallel but stops early when ctx
// is cancelled, returning ctx's error and no results.
func (m *Matcher) FilterParallelContext(ctx context.Context, texts []string) ([]string, error) {
	if len(texts) == 0 {
		return nil, ctx.Err()
	}

	numWorkers := m.opts.parallelism(len(texts))
	chunkSize := (len(texts) + numWorkers - 1) / numWorkers

	type chunk struct {
		texts []string
		index int
	}
	chunks := make([]chunk, 0, numWorkers)
	for i := 0; i < len(texts); i += chunkSize {
		end := min(i+chunkSize, len(texts))
		chunks = append(chunks, chunk{texts: texts[i:end], index: len(chunks)})
	}

	results := make([][]string, len(chunks))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(numWorkers)

	for _, c := range chunks {
		g.Go(func() error {
			var kept []string
			for i, t := range c.texts {
				if i%cancelCheckInterval == 0 {
					if err := gctx.Err(); err != nil {
						return err
					}
				}
				if m.Match(t) {
					kept = append(kept, t)
				}
			}
			results[c.index] = kept
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		m.opts.logger.LogFilter(ctx, len(texts), numWorkers, 0, err)
		return nil, err
	}

	total := 0
	for _, r := range results {
		total += len(r)
	}
	if total == 0 {
		m.opts.logger.LogFilter(ctx, len(texts), numWorkers, 0, nil)
		return nil, nil
	}
	merged := make([]string, 0, total)
	for _, r := range results {
		merged = append(merged, r...)
	}
	m.opts.logger.LogFilter(ctx, len(texts), numWorkers, total, nil)
	return merged, nil
}
