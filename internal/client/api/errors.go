package api

import (
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/portfolioimane/storefront-cli/internal/common"
)

// Error is a non-2xx response decoded from the API. Fields carries the
// server's field-keyed validation errors when present (registration).
type Error struct {
	Status  int
	Message string
	Fields  map[string][]string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %d %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api: %d %s", e.Status, http.StatusText(e.Status))
}

// Unwrap lets callers match broad categories with errors.Is without caring
// about exact status codes.
func (e *Error) Unwrap() error {
	switch {
	case e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden:
		return common.ErrUnauthorized
	case e.Status == http.StatusNotFound:
		return common.ErrNotFound
	case e.Status >= http.StatusInternalServerError:
		return common.ErrUnavailable
	}
	return nil
}

// Flatten collapses the field-keyed validation errors into a single
// user-facing message, falling back to Message when no field errors exist.
// Keys are sorted so the output is stable.
func (e *Error) Flatten() string {
	if len(e.Fields) == 0 {
		return e.Message
	}

	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var msgs []string
	for _, k := range keys {
		msgs = append(msgs, e.Fields[k]...)
	}
	return strings.Join(msgs, ", ")
}
