package utils

import (
	"github.com/microcosm-cc/bluemonday"
)

// Sanitizer strips all HTML markup from user-submitted text, keeping inner
// text content only. No allowed-tag exceptions.
type Sanitizer struct {
	policy *bluemonday.Policy
}

func NewSanitizer() *Sanitizer {
	return &Sanitizer{policy: bluemonday.StrictPolicy()}
}

func (s *Sanitizer) StripMarkup(text string) string {
	return s.policy.Sanitize(text)
}
