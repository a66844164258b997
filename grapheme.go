package wildcard

import "github.com/rivo/uniseg"

// Segment splits s into extended grapheme clusters (Unicode UAX #29).
// Joining the result reproduces s exactly. An empty string yields nil.
func Segment(s string) []string {
	if s == "" {
		return nil
	}

	out := make([]string, 0, len(s))
	state := -1
	for len(s) > 0 {
		var cluster string
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		out = append(out, cluster)
	}
	return out
}
