package topics

import (
	"encoding/json"
	"fmt"
	"strings"
)

// topicPayload is the strictly validated boundary type for the semantic
// provider's topic JSON. The provider's payload is loosely typed; shape is
// checked once here and never trusted at call sites.
type topicPayload struct {
	TopicName      string   `json:"topic_name"`
	Description    string   `json:"description"`
	Keywords       []string `json:"keywords"`
	RelatedHeaders []string `json:"related_headers"`
}

// unwrapCodeFence strips a surrounding markdown code fence, which models
// add despite instructions not to.
func unwrapCodeFence(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}

// parseTopicPayload parses and validates the provider's topic array.
// Malformed JSON or descriptors without a usable name are errors; the
// caller falls back to deterministic detection.
func parseTopicPayload(text string) ([]topicPayload, error) {
	text = unwrapCodeFence(text)

	var payload []topicPayload
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		return nil, fmt.Errorf("failed to parse topic payload; %w", err)
	}

	if len(payload) == 0 {
		return nil, fmt.Errorf("provider returned no topics")
	}

	for i := range payload {
		payload[i].TopicName = Slugify(payload[i].TopicName)
		if payload[i].TopicName == "" {
			return nil, fmt.Errorf("topic %d has no usable name", i)
		}
	}

	return payload, nil
}

// parseClusterPayload parses a single topic descriptor returned when
// naming an embedding cluster.
func parseClusterPayload(text string) (topicPayload, error) {
	text = unwrapCodeFence(text)

	var payload topicPayload
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		return topicPayload{}, fmt.Errorf("failed to parse cluster payload; %w", err)
	}
	if payload.TopicName == "" {
		return topicPayload{}, fmt.Errorf("cluster payload has no topic name")
	}
	return payload, nil
}

// parseStringArray parses a JSON array of strings, unwrapping any code
// fence. Non-arrays and malformed JSON yield an empty result.
func parseStringArray(text string) []string {
	text = unwrapCodeFence(text)

	var values []string
	if err := json.Unmarshal([]byte(text), &values); err != nil {
		return nil
	}
	return values
}
