// Package wildcard matches whole strings against "*" and "?" wildcard
// patterns, one user-perceived character at a time.
//
// Both the pattern and the text are split into extended grapheme clusters
// before matching, so "?" consumes exactly one visible character even when
// it is made of several code points (a letter with a combining accent, a
// flag, a family emoji).
//
// # Quick Start
//
//	wildcard.Match("alyib", "a?y*b")         // true
//	wildcard.Match("testingmore", "testing") // false: the whole text must match
//	wildcard.Match("e\u0301", "?")           // true: one grapheme, two code points
//
// For one pattern and many texts, build a Matcher so the pattern is
// segmented once:
//
//	m, err := wildcard.NewMatcher("*.log")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(m.Match("debug.log"))                 // true
//	fmt.Println(m.Filter([]string{"a.log", "a.txt"})) // [a.log]
//
// # Pattern Syntax
//
//   - "*" matches any sequence of graphemes, including the empty one
//   - "?" matches exactly one grapheme
//   - any other grapheme matches only an identical grapheme
//
// There are no character classes and no escapes. A "*" in the text is an
// ordinary character. Comparison is exact: no case folding and no Unicode
// normalization.
//
// # Algorithm
//
// Matching is a memoized depth-first search over the (pattern, text)
// position grid, driven by an explicit stack instead of recursion. It runs
// in O(P*T) time and space in the worst case and visits far fewer cells
// when branches fail early.
//
// # Concurrency
//
// Match, MatchGraphemes and every Matcher method are safe for concurrent
// use. Each call owns its memo table. For large text lists, FilterParallel
// spreads the work over several goroutines.
package wildcard

// Match reports whether pattern matches the entire text.
func Match(text, pattern string) bool {
	return MatchGraphemes(Segment(pattern), Segment(text))
}

// MatchGraphemes is like Match for inputs already split with Segment.
func MatchGraphemes(pattern, text []string) bool {
	o := defaultOptions()
	return evaluate(pattern, text, &o)
}
