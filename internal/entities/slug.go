package entities

import (
	"regexp"
	"strings"
)

var (
	slugStrip = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugSpace = regexp.MustCompile(`\s+`)
)

// Slug lowercases s, drops anything that is not a letter, digit, space or
// hyphen, and joins the remaining words with hyphens: "Hunter's Mark" ->
// "hunters-mark".
func Slug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = slugStrip.ReplaceAllString(s, "")
	return slugSpace.ReplaceAllString(s, "-")
}

// Fold is the case-insensitive lookup key used across catalogs.
func Fold(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
