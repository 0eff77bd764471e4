package chunkers

import (
	"strings"
	"testing"

	"github.com/leefowlercu/docweave/internal/document"
)

func docLines(text string) []string {
	return strings.Split(text, "\n")
}

func testDoc(t *testing.T, text string) *document.Document {
	t.Helper()
	return document.New("test.md", text)
}

func TestSplitSectionsPartition(t *testing.T) {
	lines := docLines(`intro line
# First
body one
## Second
body two
### Subsection stays inside
more body
# Third
body three`)

	sections := SplitSections(lines)

	if len(sections) != 4 {
		t.Fatalf("got %d sections, want 4", len(sections))
	}

	// Every line appears exactly once, in order.
	var rejoined []string
	prevEnd := 0
	for _, s := range sections {
		if s.StartLine != prevEnd {
			t.Errorf("section %q starts at %d, want %d", s.Header, s.StartLine, prevEnd)
		}
		prevEnd = s.EndLine
		rejoined = append(rejoined, s.Lines...)
	}
	if prevEnd != len(lines) {
		t.Errorf("last section ends at %d, want %d", prevEnd, len(lines))
	}
	if strings.Join(rejoined, "\n") != strings.Join(lines, "\n") {
		t.Error("sections do not reassemble into the original document")
	}
}

func TestSplitSectionsSyntheticIntroduction(t *testing.T) {
	sections := SplitSections(docLines("leading text\nmore leading\n# Actual Header\nbody"))

	if sections[0].Header != IntroductionHeader {
		t.Errorf("first header = %q, want %q", sections[0].Header, IntroductionHeader)
	}
	if sections[0].StartLine != 0 || sections[0].EndLine != 2 {
		t.Errorf("introduction spans [%d,%d), want [0,2)", sections[0].StartLine, sections[0].EndLine)
	}
}

func TestSplitSectionsNoHeaders(t *testing.T) {
	sections := SplitSections(docLines("just\nplain\ntext"))

	if len(sections) != 1 {
		t.Fatalf("got %d sections, want 1", len(sections))
	}
	if sections[0].Header != IntroductionHeader {
		t.Errorf("header = %q, want %q", sections[0].Header, IntroductionHeader)
	}
}

func TestSplitSectionsDeepHeadersStayInside(t *testing.T) {
	sections := SplitSections(docLines("# Top\nbody\n### Deep\ndeeper body"))

	if len(sections) != 1 {
		t.Fatalf("got %d sections, want 1; level 3+ headers must not split", len(sections))
	}
}

func TestSplitSectionsIgnoresFencedHeaders(t *testing.T) {
	sections := SplitSections(docLines("# Real\n```\n# fenced\n```\nbody"))

	if len(sections) != 1 {
		t.Fatalf("got %d sections, want 1", len(sections))
	}
}

func TestSplitSectionsEmpty(t *testing.T) {
	if sections := SplitSections(nil); len(sections) != 0 {
		t.Errorf("got %d sections for empty input, want 0", len(sections))
	}
}
