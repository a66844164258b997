package wildcard

// Preprocess shrinks a pattern/text pair before matching: star runs are
// collapsed, then the literal prefix and suffix shared by both sides are
// stripped. The result matches if and only if the input does.
//
// Neither input slice is modified.
func Preprocess(pattern, text []string) ([]string, []string) {
	return TrimAffixes(CollapseStars(pattern), text)
}

// CollapseStars replaces every run of consecutive "*" graphemes with a
// single "*". Adjacent stars match the same texts as one star.
func CollapseStars(pattern []string) []string {
	out := make([]string, 0, len(pattern))
	for i, g := range pattern {
		if g == star && i > 0 && pattern[i-1] == star {
			continue
		}
		out = append(out, g)
	}
	return out
}

// TrimAffixes strips the prefix and then the suffix that pattern and text
// agree on position by position. A pattern grapheme agrees with a text
// grapheme when it is "?" or an identical non-"*" literal. Stripping stops
// at the first disagreement, at a "*" in the pattern, or when either side
// runs out. The suffix scan never reaches back into the stripped prefix.
//
// The returned slices alias the inputs.
func TrimAffixes(pattern, text []string) ([]string, []string) {
	start := 0
	for start < len(pattern) && start < len(text) && agrees(pattern[start], text[start]) {
		start++
	}

	pEnd, tEnd := len(pattern), len(text)
	for pEnd > start && tEnd > start && agrees(pattern[pEnd-1], text[tEnd-1]) {
		pEnd--
		tEnd--
	}

	return pattern[start:pEnd], text[start:tEnd]
}

func agrees(p, t string) bool {
	if p == star {
		return false
	}
	return p == anyOne || (p == t && t != star)
}
