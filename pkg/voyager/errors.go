package voyager

import (
	"fmt"
	"net/http"
)

// InputError reports an identifier the caller supplied that cannot be acted
// on. It is always raised before any network call.
type InputError struct {
	Input  string
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid identifier %q: %s", e.Input, e.Reason)
}

// APIError reports a non-2xx response, carrying enough context for callers to
// tell auth failures and not-found apart from other statuses.
type APIError struct {
	StatusCode int
	Path       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("request to %s failed (statusCode=%d)", e.Path, e.StatusCode)
}

func (e *APIError) IsAuthFailure() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// ParseError reports a response body that matched neither recognized shape
// for the requested concept. Raw payload contents stay out of the message.
type ParseError struct {
	Concept string
	Detail  string
}

func (e *ParseError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("could not parse %s from response", e.Concept)
	}
	return fmt.Sprintf("could not parse %s from response: %s", e.Concept, e.Detail)
}

func newParseError(concept string, detail string) *ParseError {
	return &ParseError{Concept: concept, Detail: detail}
}
