package wildcard

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func FuzzMatch(f *testing.F) {
	seeds := [][2]string{
		{"alyib", "a?y*b"},
		{"abcd", "a*b?"},
		{"daaadabadmanda", "da*da*da"},
		{"xx", "*?"},
		{"a*", "*"},
		{"", ""},
		{"", "***"},
		{"cafe\u0301", "caf?"},
		{"漢字", "?*"},
	}
	for _, s := range seeds {
		f.Add(s[0], s[1])
	}

	f.Fuzz(func(t *testing.T, text, pattern string) {
		if !utf8.ValidString(text) || !utf8.ValidString(pattern) {
			t.Skip()
		}
		if len(text) > 256 || len(pattern) > 64 {
			t.Skip()
		}

		p, s := Segment(pattern), Segment(text)
		want := naiveMatch(p, s)

		if got := Match(text, pattern); got != want {
			t.Fatalf("Match(%q, %q) = %v, oracle says %v", text, pattern, got, want)
		}
		for _, strategy := range []MemoStrategy{MemoDense, MemoSparse} {
			if got := evaluate(p, s, optionsWith(strategy)); got != want {
				t.Fatalf("%s: evaluate(%q, %q) = %v, want %v", strategy, text, pattern, got, want)
			}
		}

		pp, ps := Preprocess(p, s)
		if got := MatchGraphemes(pp, ps); got != want {
			t.Fatalf("preprocessed (%q, %q) = %v, want %v", text, pattern, got, want)
		}

		var doubled []string
		for _, g := range p {
			doubled = append(doubled, g)
			if g == "*" {
				doubled = append(doubled, g)
			}
		}
		if got := MatchGraphemes(doubled, s); got != want {
			t.Fatalf("doubled stars %q vs %q = %v, want %v", doubled, text, got, want)
		}

		if !Match(text, "*") {
			t.Fatalf("Match(%q, \"*\") = false", text)
		}
		if !Match(text, text) {
			t.Fatalf("Match(%q, itself) = false", text)
		}
	})
}

func FuzzSegment(f *testing.F) {
	f.Add("")
	f.Add("abc")
	f.Add("e\u0301\U0001F1E9\U0001F1EA\r\n")
	f.Add("\xff\xfe")

	f.Fuzz(func(t *testing.T, in string) {
		got := Segment(in)
		if joined := strings.Join(got, ""); joined != in {
			t.Fatalf("Segment(%q) joined to %q", in, joined)
		}
		for i, g := range got {
			if g == "" {
				t.Fatalf("Segment(%q)[%d] is empty", in, i)
			}
		}
		if len(got) > 0 && !Match(in, strings.Repeat("?", len(got))) {
			t.Fatalf("Match(%q, %d question marks) = false", in, len(got))
		}
	})
}
