package common

// AuthorizationHeader is the HTTP header carrying the bearer token on every
// outbound API request.
const AuthorizationHeader = "Authorization"

// RequestIDHeader tags each outbound request so failures can be correlated
// with server-side logs.
const RequestIDHeader = "X-Request-Id"

// IdempotencyKeyHeader is attached to order-creating POSTs so a duplicate
// submission racing a slow response does not create a second order.
const IdempotencyKeyHeader = "Idempotency-Key"

// Keys under which the session is persisted in the local metadata store.
const (
	StorageKeyToken = "token"
	StorageKeyUser  = "user"
)
