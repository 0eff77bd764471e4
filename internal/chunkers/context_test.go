package chunkers

import (
	"strings"
	"testing"
)

func TestSplitWithContextCarriesHeaders(t *testing.T) {
	text := "# Title\n" + strings.Repeat("aaaaaaaaaa\n", 30) + "body after"

	chunks := SplitWithContext(text, 100)

	if len(chunks) < 2 {
		t.Fatalf("got %d chunks, want several", len(chunks))
	}
	for i, c := range chunks {
		if !strings.HasPrefix(c, "# Title") {
			t.Errorf("chunk %d does not carry the heading context", i)
		}
	}
}

func TestSplitWithContextKeepsRecentHeaders(t *testing.T) {
	var b strings.Builder
	for _, h := range []string{"# One", "# Two", "# Three", "# Four"} {
		b.WriteString(h + "\n")
		b.WriteString(strings.Repeat("x", 200) + "\n")
	}

	chunks := SplitWithContext(b.String(), 150)

	last := chunks[len(chunks)-1]
	if strings.Contains(last, "# One") {
		t.Error("oldest header leaked into a late chunk; only recent headers carry")
	}
	if !strings.Contains(last, "# Four") {
		t.Error("latest header missing from final chunk")
	}
}

func TestSplitWithContextDefaultSize(t *testing.T) {
	chunks := SplitWithContext("short text", 0)
	if len(chunks) != 1 {
		t.Fatalf("got %d chunks, want 1", len(chunks))
	}
}

func TestPipelineProcessStats(t *testing.T) {
	text := "# A\n" + strings.Repeat("one two three four five\n", 20) +
		"# B\n" + strings.Repeat("six seven eight\n", 20)
	doc := testDoc(t, text)

	p := NewPipeline(Options{MinSectionWords: 10, MaxSectionWords: 1000, OverlapLines: 2})
	chunks, stats := p.Process(doc)

	if stats.TotalChunks != len(chunks) {
		t.Errorf("stats.TotalChunks = %d, want %d", stats.TotalChunks, len(chunks))
	}
	if stats.TotalWords != doc.WordCount {
		t.Errorf("stats.TotalWords = %d, want %d", stats.TotalWords, doc.WordCount)
	}
	if stats.MaxWords < stats.MinWords {
		t.Errorf("MaxWords %d < MinWords %d", stats.MaxWords, stats.MinWords)
	}
}

func TestNewPipelineBackfillsDefaults(t *testing.T) {
	p := NewPipeline(Options{})

	opts := p.Options()
	def := DefaultOptions()
	if opts.MinSectionWords != def.MinSectionWords ||
		opts.MaxSectionWords != def.MaxSectionWords ||
		opts.OverlapLines != def.OverlapLines {
		t.Errorf("zero options not backfilled: %+v", opts)
	}
}
