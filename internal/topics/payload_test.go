package topics

import "testing"

func TestParseTopicPayload(t *testing.T) {
	resp := `[
		{"topic_name": "Executive Summary", "description": "d", "keywords": ["a"], "related_headers": ["Summary"]},
		{"topic_name": "risk_factors", "description": "e", "keywords": [], "related_headers": []}
	]`

	payload, err := parseTopicPayload(resp)
	if err != nil {
		t.Fatalf("parseTopicPayload returned error: %v", err)
	}
	if len(payload) != 2 {
		t.Fatalf("got %d descriptors, want 2", len(payload))
	}
	if payload[0].TopicName != "executive_summary" {
		t.Errorf("name = %q; names must be slugified at the boundary", payload[0].TopicName)
	}
}

func TestParseTopicPayloadUnwrapsFence(t *testing.T) {
	resp := "```json\n[{\"topic_name\": \"intro\", \"description\": \"d\"}]\n```"

	payload, err := parseTopicPayload(resp)
	if err != nil {
		t.Fatalf("parseTopicPayload returned error: %v", err)
	}
	if payload[0].TopicName != "intro" {
		t.Errorf("name = %q, want intro", payload[0].TopicName)
	}
}

func TestParseTopicPayloadErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"malformed", "not json"},
		{"empty array", "[]"},
		{"object not array", `{"topic_name": "x"}`},
		{"unnamed topic", `[{"description": "d"}]`},
		{"symbol-only name", `[{"topic_name": "!!!"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parseTopicPayload(tt.in); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestParseClusterPayload(t *testing.T) {
	resp := "```\n{\"topic_name\": \"billing\", \"description\": \"d\", \"keywords\": [\"cost\"]}\n```"

	payload, err := parseClusterPayload(resp)
	if err != nil {
		t.Fatalf("parseClusterPayload returned error: %v", err)
	}
	if payload.TopicName != "billing" || len(payload.Keywords) != 1 {
		t.Errorf("payload = %+v", payload)
	}
}

func TestParseClusterPayloadErrors(t *testing.T) {
	if _, err := parseClusterPayload("nope"); err == nil {
		t.Error("expected an error for malformed JSON")
	}
	if _, err := parseClusterPayload(`{"description": "only"}`); err == nil {
		t.Error("expected an error for a missing topic name")
	}
}

func TestParseStringArray(t *testing.T) {
	if got := parseStringArray(`["a", "b"]`); len(got) != 2 {
		t.Errorf("got %v, want 2 entries", got)
	}
	if got := parseStringArray("```json\n[\"x\"]\n```"); len(got) != 1 {
		t.Errorf("got %v, want 1 entry", got)
	}
	if got := parseStringArray("garbage"); got != nil {
		t.Errorf("got %v, want nil for malformed input", got)
	}
}
