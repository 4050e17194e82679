// Package validate implements the pre-write normalization pipeline for
// events and bookings. Every function is a pure transform from a raw value
// (or candidate record) to its canonical stored form, or a
// *domain.ValidationError naming the offending field. Nothing here touches
// storage; the referential integrity check lives in the services layer
// because it is the only step that needs I/O.
package validate

import (
	"regexp"
	"strings"
)

// nonSlugRun matches a maximal run of characters outside [a-z0-9].
var nonSlugRun = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a URL-safe identifier from a title: lowercase, trim,
// collapse every run of non-alphanumeric characters to a single dash, and
// strip leading/trailing dashes. Pure and total; a title made entirely of
// punctuation yields "", which the unique slug index turns into a conflict
// on the second such create.
func Slugify(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = nonSlugRun.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
