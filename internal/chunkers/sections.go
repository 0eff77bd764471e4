package chunkers

import (
	"strings"

	"github.com/leefowlercu/docweave/internal/document"
)

// IntroductionHeader labels content appearing before the first qualifying
// header, and whole documents that have no headers at all.
const IntroductionHeader = "Introduction"

// splitLevel is the deepest heading level that starts a new section.
// Deeper headings stay inside the current section's content.
const splitLevel = 2

// SplitSections partitions lines into header-delimited sections. Every
// line lands in exactly one section, in original order. The function is
// total: any input, including empty, yields a valid partition.
func SplitSections(lines []string) []Section {
	var sections []Section

	current := Section{
		Header: IntroductionHeader,
		Level:  1,
	}
	inCodeBlock := false

	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			inCodeBlock = !inCodeBlock
		}

		level, text, ok := 0, "", false
		if !inCodeBlock {
			level, text, ok = document.HeaderLine(line)
		}

		if ok && level <= splitLevel {
			if len(current.Lines) > 0 {
				sections = append(sections, finishSection(current, i))
			}
			current = Section{
				Header:    text,
				Level:     level,
				StartLine: i,
				Lines:     []string{line},
			}
			continue
		}

		current.Lines = append(current.Lines, line)
	}

	if len(current.Lines) > 0 {
		sections = append(sections, finishSection(current, len(lines)))
	}

	return sections
}

func finishSection(s Section, endLine int) Section {
	s.EndLine = endLine
	s.WordCount = document.CountWords(s.Content())
	return s
}
