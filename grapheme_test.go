package wildcard

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegmentEmpty(t *testing.T) {
	assert.Empty(t, Segment(""))
}

func TestSegment(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"ascii", "abc", []string{"a", "b", "c"}},
		{"wildcards", "a*?", []string{"a", "*", "?"}},
		{"combining mark", "cafe\u0301", []string{"c", "a", "f", "e\u0301"}},
		{"stacked marks", "a\u0301\u0302b", []string{"a\u0301\u0302", "b"}},
		{"cjk", "漢字", []string{"漢", "字"}},
		{"flags", "\U0001F1E9\U0001F1EA\U0001F1EB\U0001F1F7", []string{"\U0001F1E9\U0001F1EA", "\U0001F1EB\U0001F1F7"}},
		{"zwj family", "\U0001F468\u200D\U0001F469\u200D\U0001F467!", []string{"\U0001F468\u200D\U0001F469\u200D\U0001F467", "!"}},
		{"crlf", "a\r\nb", []string{"a", "\r\n", "b"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Segment(tc.in))
		})
	}
}

func TestSegmentRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"plain ascii",
		"mixed 漢字 and e\u0301 and \U0001F468\u200D\U0001F469\u200D\U0001F467",
		"\xff\xfe invalid utf-8",
	}
	for _, in := range inputs {
		got := Segment(in)
		require.Equal(t, in, strings.Join(got, ""))
		for _, g := range got {
			assert.NotEmpty(t, g)
		}
	}
}
