// Package render formats topic documents, index documents, and annotated
// source documents as markdown with YAML frontmatter and wiki-style
// backlinks. It is pure formatting over finalized data and performs no
// I/O of its own.
package render

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// frontmatter marshals v between --- delimiters. v must marshal cleanly;
// the types in this package always do.
func frontmatter(v any) string {
	body, err := yaml.Marshal(v)
	if err != nil {
		// Only reachable with an unmarshalable type, which would be a
		// programming error in this package.
		panic(fmt.Sprintf("render: frontmatter marshal: %v", err))
	}
	return "---\n" + string(body) + "---\n"
}

// stem strips the directory and extension from a source path, leaving
// the bare document name used in wiki links.
func stem(source string) string {
	s := source
	if i := strings.LastIndexByte(s, '/'); i >= 0 {
		s = s[i+1:]
	}
	if i := strings.LastIndexByte(s, '.'); i > 0 {
		s = s[:i]
	}
	return s
}
