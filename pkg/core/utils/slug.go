package utils

import (
	"regexp"
	"strings"
)

var (
	slugStrip    = regexp.MustCompile(`[^a-zA-Z0-9\s-]`)
	slugCollapse = regexp.MustCompile(`[\s_-]+`)
)

// Slugify turns free text (usually a street address) into a stable
// URL-safe key, capped at 70 characters. Empty input maps to "memo".
func Slugify(text string) string {
	s := strings.ToLower(strings.TrimSpace(slugStrip.ReplaceAllString(text, "")))
	s = slugCollapse.ReplaceAllString(s, "-")
	if s == "" {
		return "memo"
	}
	if len(s) > 70 {
		s = s[:70]
	}
	return s
}
