package api

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/portfolioimane/storefront-cli/internal/common"
)

// authTransport injects the bearer token and a request id into every
// outbound request. It is the HTTP analogue of a client-side request
// interceptor: individual call sites never deal with authorization.
type authTransport struct {
	base   http.RoundTripper
	tokens TokenSource
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Per RoundTripper contract the request must not be mutated in place.
	req = req.Clone(req.Context())

	if tok := t.tokens.Token(); tok != "" {
		req.Header.Set(common.AuthorizationHeader, "Bearer "+tok)
	}
	req.Header.Set(common.RequestIDHeader, uuid.NewString())

	return t.base.RoundTrip(req)
}
