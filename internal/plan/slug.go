package plan

import (
	"regexp"
	"strings"
)

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify converts a section title into a filename-safe slug: lowercase,
// with every run of non-alphanumeric characters collapsed into a single
// hyphen and edge hyphens stripped. A title with no usable characters
// yields "section". Slugify is idempotent.
func Slugify(value string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	value = nonAlphanumeric.ReplaceAllString(value, "-")
	value = strings.Trim(value, "-")
	if value == "" {
		return "section"
	}
	return value
}

// SectionFilename returns the detail document filename for a section,
// "{id}-{slug}.md".
func SectionFilename(s Section) string {
	return s.ID + "-" + Slugify(s.Title) + ".md"
}
