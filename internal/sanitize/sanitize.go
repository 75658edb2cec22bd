// Package sanitize strips markup from free-text input before it is stored.
package sanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var policy = bluemonday.StrictPolicy()

// String removes every HTML element and trims surrounding whitespace.
// Entities produced by the policy are decoded so plain text round-trips unchanged.
func String(s string) string {
	return strings.TrimSpace(html.UnescapeString(policy.Sanitize(s)))
}

// Strings sanitizes each element and drops the ones left empty.
func Strings(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if clean := String(s); clean != "" {
			out = append(out, clean)
		}
	}
	return out
}

// Fields sanitizes every pointed-to string in place.
func Fields(fields ...*string) {
	for _, f := range fields {
		if f != nil {
			*f = String(*f)
		}
	}
}
