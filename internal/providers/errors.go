package providers

import (
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// StatusError reports a non-2xx HTTP response from a provider that speaks
// plain HTTP (no SDK error type of its own).
type StatusError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	body := e.Body
	if len(body) > 200 {
		body = body[:200] + "..."
	}
	return fmt.Sprintf("%s: status %d: %s", e.Provider, e.StatusCode, body)
}

// IsFatal reports whether err belongs to the class of resource errors that
// will not succeed on retry for the remainder of the run: a missing
// endpoint or deployment, or rejected credentials. Optional AI features
// use this to disable themselves permanently instead of failing on every
// subsequent call.
func IsFatal(err error) bool {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode == 404 || apiErr.HTTPStatusCode == 401
	}

	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode == 404 || statusErr.StatusCode == 401
	}

	return false
}
