// Package htmlsanitize strips markup from user-supplied free text before it
// is stored.
package htmlsanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// strict removes every tag. It is safe for concurrent use once built.
var strict = bluemonday.StrictPolicy()

// PlainText removes all HTML tags from s and trims surrounding whitespace.
// Entities that the policy escapes are turned back into plain characters so
// "R&D" stays "R&D".
func PlainText(s string) string {
	if s == "" {
		return ""
	}
	return strings.TrimSpace(html.UnescapeString(strict.Sanitize(s)))
}
