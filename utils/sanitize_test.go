package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripMarkup(t *testing.T) {
	s := NewSanitizer()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain text untouched", "hello world", "hello world"},
		{"inline tag stripped", "<b>hi</b>", "hi"},
		{"nested tags stripped", "<div><p>one <em>two</em></p></div>", "one two"},
		{"script removed entirely", "<script>alert(1)</script>safe", "safe"},
		{"attributes gone with the tag", `<a href="http://evil">link</a>`, "link"},
		{"empty input", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.StripMarkup(tt.input))
		})
	}
}

func TestStripMarkupDeterministic(t *testing.T) {
	s := NewSanitizer()
	input := "<h1>Title</h1> and <i>body</i>"
	assert.Equal(t, s.StripMarkup(input), s.StripMarkup(input))
}
