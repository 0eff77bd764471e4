package providers

import (
	"fmt"
	"strings"
	"testing"

	openai "github.com/sashabaranov/go-openai"
)

func TestIsFatal(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"plain error", fmt.Errorf("connection refused"), false},
		{"status 404", &StatusError{Provider: "ollama", StatusCode: 404}, true},
		{"status 401", &StatusError{Provider: "ollama", StatusCode: 401}, true},
		{"status 500", &StatusError{Provider: "ollama", StatusCode: 500}, false},
		{"status 429", &StatusError{Provider: "ollama", StatusCode: 429}, false},
		{"wrapped status 404", fmt.Errorf("request failed; %w", &StatusError{StatusCode: 404}), true},
		{"openai 404", &openai.APIError{HTTPStatusCode: 404}, true},
		{"openai 401", &openai.APIError{HTTPStatusCode: 401}, true},
		{"openai 429", &openai.APIError{HTTPStatusCode: 429}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsFatal(tt.err); got != tt.want {
				t.Errorf("IsFatal = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStatusErrorTruncatesBody(t *testing.T) {
	err := &StatusError{
		Provider:   "ollama",
		StatusCode: 500,
		Body:       strings.Repeat("x", 500),
	}

	msg := err.Error()
	if len(msg) > 300 {
		t.Errorf("error message is %d chars, body not truncated", len(msg))
	}
	if !strings.Contains(msg, "status 500") {
		t.Errorf("message %q missing status code", msg)
	}
}
