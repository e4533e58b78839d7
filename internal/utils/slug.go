// internal/utils/slug.go
package utils

import (
	"regexp"
	"strings"
)

var (
	slugInvalidChars  = regexp.MustCompile(`[^a-z0-9_\s-]`)
	slugWhitespace    = regexp.MustCompile(`\s+`)
	slugRepeatHyphens = regexp.MustCompile(`-+`)
)

// GenerateSlug derives a URL slug from a title: lowercase, special
// characters stripped, whitespace turned into hyphens, repeated hyphens
// collapsed. Idempotent: slugifying an existing slug returns it
// unchanged.
func GenerateSlug(title string) string {
	slug := strings.ToLower(strings.TrimSpace(title))
	slug = slugInvalidChars.ReplaceAllString(slug, "")
	slug = slugWhitespace.ReplaceAllString(slug, "-")
	slug = slugRepeatHyphens.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}
