package chunkers

import "github.com/leefowlercu/docweave/internal/document"

// MergeSections combines adjacent undersized sections left to right until
// each reaches minWords. The fold is strictly local and greedy: it absorbs
// the next section into the current accumulator whenever the accumulator is
// still under the threshold, so the final section may remain undersized.
// Content is preserved exactly — no line is lost or duplicated.
func MergeSections(sections []Section, minWords int) []Section {
	if len(sections) == 0 {
		return nil
	}

	var merged []Section
	current := cloneSection(sections[0])

	for _, section := range sections[1:] {
		if current.WordCount < minWords {
			current.Lines = append(current.Lines, section.Lines...)
			current.WordCount = document.CountWords(current.Content())
			current.EndLine = section.EndLine
			current.Header += " & " + section.Header
			continue
		}

		merged = append(merged, current)
		current = cloneSection(section)
	}

	return append(merged, current)
}

// cloneSection copies a section so merging never mutates the input slice's
// backing arrays.
func cloneSection(s Section) Section {
	lines := make([]string, len(s.Lines))
	copy(lines, s.Lines)
	s.Lines = lines
	return s
}
