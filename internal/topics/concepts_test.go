package topics

import (
	"context"
	"testing"

	"github.com/leefowlercu/docweave/internal/providers"
)

func TestExtractConcepts(t *testing.T) {
	provider := &fakeSemantic{responses: []string{`["caching", "eviction", "ttl"]`}}
	e := NewConceptExtractor(provider, nil)

	concepts := e.Extract(context.Background(), "some chunk text")
	if len(concepts) != 3 || concepts[0] != "caching" {
		t.Fatalf("concepts = %v", concepts)
	}
	if e.Tripped() {
		t.Error("breaker tripped after a successful call")
	}
}

func TestExtractConceptsLimit(t *testing.T) {
	provider := &fakeSemantic{responses: []string{
		`["a","b","c","d","e","f","g","h","i","j","k","l"]`,
	}}
	e := NewConceptExtractor(provider, nil)

	concepts := e.Extract(context.Background(), "text")
	if len(concepts) != maxConcepts {
		t.Fatalf("got %d concepts, want %d", len(concepts), maxConcepts)
	}
}

func TestExtractConceptsFatalErrorTripsBreaker(t *testing.T) {
	provider := &fakeSemantic{err: &providers.StatusError{
		Provider:   "fake",
		StatusCode: 404,
		Body:       "model not found",
	}}
	e := NewConceptExtractor(provider, nil)

	if got := e.Extract(context.Background(), "text"); got != nil {
		t.Fatalf("concepts = %v, want nil", got)
	}
	if !e.Tripped() {
		t.Fatal("breaker did not trip on a fatal error")
	}

	// Later calls must not reach the provider again.
	before := provider.calls
	for i := 0; i < 3; i++ {
		if got := e.Extract(context.Background(), "text"); got != nil {
			t.Fatalf("concepts after trip = %v, want nil", got)
		}
	}
	if provider.calls != before {
		t.Errorf("provider called %d more times after breaker tripped", provider.calls-before)
	}
}

func TestExtractConceptsTransientErrorDoesNotTrip(t *testing.T) {
	provider := &fakeSemantic{err: &providers.StatusError{
		Provider:   "fake",
		StatusCode: 500,
		Body:       "overloaded",
	}}
	e := NewConceptExtractor(provider, nil)

	if got := e.Extract(context.Background(), "text"); got != nil {
		t.Fatalf("concepts = %v, want nil", got)
	}
	if e.Tripped() {
		t.Fatal("breaker tripped on a transient error")
	}

	// The provider stays reachable for the next call.
	e.Extract(context.Background(), "text")
	if provider.calls != 2 {
		t.Errorf("provider calls = %d, want 2", provider.calls)
	}
}

func TestExtractConceptsTruncatesSample(t *testing.T) {
	provider := &fakeSemantic{responses: []string{`["x"]`}}
	e := NewConceptExtractor(provider, nil)

	long := make([]byte, conceptSample*2)
	for i := range long {
		long[i] = 'a'
	}
	concepts := e.Extract(context.Background(), string(long))
	if len(concepts) != 1 {
		t.Fatalf("concepts = %v", concepts)
	}
}
