package api

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrAuthExpired marks a 401 received from any endpoint other than login.
// By the time the caller sees it the session has already been logged out.
var ErrAuthExpired = errors.New("authentication expired")

// APIError is a non-2xx response from the platform API.
type APIError struct {
	Status  int
	Message string
	Errors  map[string][]string // Laravel validation errors (422)

	err error // wrapped sentinel, if any
}

func (e *APIError) Error() string {
	if len(e.Errors) > 0 {
		keys := make([]string, 0, len(e.Errors))
		for k := range e.Errors {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		var msgs []string
		for _, k := range keys {
			msgs = append(msgs, e.Errors[k]...)
		}
		return fmt.Sprintf("api: %d: %s", e.Status, strings.Join(msgs, ", "))
	}
	if e.Message != "" {
		return fmt.Sprintf("api: %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api: unexpected status %d", e.Status)
}

func (e *APIError) Unwrap() error { return e.err }
