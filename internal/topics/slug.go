package topics

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	slugInvalidRe  = regexp.MustCompile(`[^\w\s-]`)
	slugSeparateRe = regexp.MustCompile(`[-\s]+`)
)

const maxSlugLen = 50

// Slugify converts text to a lowercase underscore-separated slug suitable
// for topic names and file names.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = slugInvalidRe.ReplaceAllString(s, "")
	s = slugSeparateRe.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > maxSlugLen {
		s = strings.Trim(s[:maxSlugLen], "_")
	}
	return s
}

// uniqueNames rewrites duplicate slugs by appending a numeric suffix to
// every occurrence after the first, keeping downstream attribution and
// rendering deterministic when a provider returns colliding names.
func uniqueNames(names []string) []string {
	seen := make(map[string]int, len(names))
	out := make([]string, len(names))

	for i, name := range names {
		seen[name]++
		if seen[name] == 1 {
			out[i] = name
			continue
		}
		out[i] = fmt.Sprintf("%s_%d", name, seen[name])
	}

	return out
}
