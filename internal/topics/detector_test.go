package topics

import (
	"context"
	"testing"

	"github.com/leefowlercu/docweave/internal/document"
	"github.com/leefowlercu/docweave/internal/providers"
)

// fakeSemantic is a canned SemanticProvider for detector and extractor
// tests. Each Complete call returns the next queued response, or err when
// set.
type fakeSemantic struct {
	responses []string
	err       error
	calls     int
}

func (f *fakeSemantic) Name() string { return "fake" }

func (f *fakeSemantic) Type() providers.ProviderType { return providers.ProviderTypeSemantic }

func (f *fakeSemantic) Available() bool { return true }

func (f *fakeSemantic) RateLimit() providers.RateLimitConfig { return providers.RateLimitConfig{} }

func (f *fakeSemantic) ModelName() string { return "fake-model" }

func (f *fakeSemantic) Complete(ctx context.Context, req providers.CompletionRequest) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	if len(f.responses) == 0 {
		return "", nil
	}
	resp := f.responses[0]
	f.responses = f.responses[1:]
	return resp, nil
}

const detectDoc = `intro
# Getting Started
install instructions
# Configuration
config body
more config
# Troubleshooting
fixes`

func TestDetectAttributesRanges(t *testing.T) {
	provider := &fakeSemantic{responses: []string{`[
		{"topic_name": "setup", "description": "Setup", "keywords": ["install"], "related_headers": ["Getting Started"]},
		{"topic_name": "config", "description": "Config", "keywords": ["settings"], "related_headers": ["Configuration"]},
		{"topic_name": "fixes", "description": "Fixes", "keywords": ["errors"], "related_headers": ["Troubleshooting"]}
	]`}}
	d := NewDetector(provider)
	doc := document.New("test.md", detectDoc)

	topics, err := d.Detect(context.Background(), doc)
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	if len(topics) != 3 {
		t.Fatalf("got %d topics, want 3", len(topics))
	}

	if topics[0].ContentStart != 1 || topics[0].ContentEnd != 3 {
		t.Errorf("setup spans [%d,%d), want [1,3)", topics[0].ContentStart, topics[0].ContentEnd)
	}
	if topics[1].ContentStart != 3 || topics[1].ContentEnd != 6 {
		t.Errorf("config spans [%d,%d), want [3,6)", topics[1].ContentStart, topics[1].ContentEnd)
	}
	if topics[2].ContentStart != 6 || topics[2].ContentEnd != doc.LineCount() {
		t.Errorf("fixes spans [%d,%d), want [6,%d)", topics[2].ContentStart, topics[2].ContentEnd, doc.LineCount())
	}
}

func TestDetectHeaderMatchIsCaseInsensitiveSubstring(t *testing.T) {
	provider := &fakeSemantic{responses: []string{`[
		{"topic_name": "a", "related_headers": ["getting"]},
		{"topic_name": "b", "related_headers": ["CONFIGURATION"]},
		{"topic_name": "c", "related_headers": ["troubleshooting"]}
	]`}}
	d := NewDetector(provider)
	doc := document.New("test.md", detectDoc)

	topics, err := d.Detect(context.Background(), doc)
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	if topics[0].ContentStart != 1 {
		t.Errorf("partial lowercase match did not attribute: start = %d", topics[0].ContentStart)
	}
	if topics[1].ContentStart != 3 {
		t.Errorf("uppercase match did not attribute: start = %d", topics[1].ContentStart)
	}
}

func TestDetectUnmatchedTopicSpansDocument(t *testing.T) {
	provider := &fakeSemantic{responses: []string{`[
		{"topic_name": "a", "related_headers": ["Getting Started"]},
		{"topic_name": "b", "related_headers": ["Configuration"]},
		{"topic_name": "ghost", "related_headers": ["No Such Header"]}
	]`}}
	d := NewDetector(provider)
	doc := document.New("test.md", detectDoc)

	topics, err := d.Detect(context.Background(), doc)
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	ghost := topics[2]
	if ghost.ContentStart != 0 || ghost.ContentEnd != doc.LineCount() {
		t.Errorf("unmatched topic spans [%d,%d), want whole document", ghost.ContentStart, ghost.ContentEnd)
	}
}

func TestDetectFallsBackOnProviderError(t *testing.T) {
	provider := &fakeSemantic{err: context.DeadlineExceeded}
	d := NewDetector(provider)
	doc := document.New("test.md", detectDoc)

	topics, err := d.Detect(context.Background(), doc)
	if err != nil {
		t.Fatalf("Detect must not propagate provider errors, got %v", err)
	}
	if len(topics) != 3 {
		t.Fatalf("got %d fallback topics, want 3", len(topics))
	}
	if topics[0].Name != "getting_started" {
		t.Errorf("fallback name = %q, want getting_started", topics[0].Name)
	}
}

func TestDetectFallsBackOnMalformedPayload(t *testing.T) {
	provider := &fakeSemantic{responses: []string{"not json at all"}}
	d := NewDetector(provider)
	doc := document.New("test.md", detectDoc)

	topics, err := d.Detect(context.Background(), doc)
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	if len(topics) != 3 || topics[0].Name != "getting_started" {
		t.Errorf("expected header-derived fallback topics, got %+v", topics)
	}
}

func TestDetectKeepsShortTopicList(t *testing.T) {
	provider := &fakeSemantic{responses: []string{`[
		{"topic_name": "only", "related_headers": ["Getting Started"]}
	]`}}
	d := NewDetector(provider, WithTopicRange(3, 10))
	doc := document.New("test.md", detectDoc)

	// The minimum shapes the prompt; a shorter provider answer is still
	// returned as-is. Only fallback detection collapses below the minimum.
	topics, err := d.Detect(context.Background(), doc)
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	if len(topics) != 1 || topics[0].Name != "only" {
		t.Fatalf("topics = %+v, want the single detected topic", topics)
	}
	if topics[0].ContentStart != 1 {
		t.Errorf("ContentStart = %d, want 1", topics[0].ContentStart)
	}
}

func TestDetectDeduplicatesNames(t *testing.T) {
	provider := &fakeSemantic{responses: []string{`[
		{"topic_name": "notes", "related_headers": ["Getting Started"]},
		{"topic_name": "notes", "related_headers": ["Configuration"]},
		{"topic_name": "notes", "related_headers": ["Troubleshooting"]}
	]`}}
	d := NewDetector(provider)
	doc := document.New("test.md", detectDoc)

	topics, err := d.Detect(context.Background(), doc)
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	names := []string{topics[0].Name, topics[1].Name, topics[2].Name}
	if names[0] != "notes" || names[1] != "notes_2" || names[2] != "notes_3" {
		t.Errorf("names = %v, want [notes notes_2 notes_3]", names)
	}
}

func TestNameCluster(t *testing.T) {
	provider := &fakeSemantic{responses: []string{
		`{"topic_name": "Error Handling", "description": "How errors propagate", "keywords": ["errors"]}`,
	}}
	d := NewDetector(provider)

	topic := d.NameCluster(context.Background(), 0, "sample text")
	if topic.Name != "error_handling" {
		t.Errorf("name = %q, want error_handling", topic.Name)
	}
	if topic.Description != "How errors propagate" {
		t.Errorf("description = %q", topic.Description)
	}
}

func TestNameClusterFallback(t *testing.T) {
	tests := []struct {
		name     string
		provider *fakeSemantic
	}{
		{"provider error", &fakeSemantic{err: context.DeadlineExceeded}},
		{"malformed payload", &fakeSemantic{responses: []string{"garbage"}}},
		{"empty name", &fakeSemantic{responses: []string{`{"topic_name": "???"}`}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDetector(tt.provider)

			topic := d.NameCluster(context.Background(), 4, "sample")
			if topic.Name != "topic_5" {
				t.Errorf("name = %q, want topic_5", topic.Name)
			}
			if topic.Description != "Automatically grouped content" {
				t.Errorf("description = %q", topic.Description)
			}
		})
	}
}
