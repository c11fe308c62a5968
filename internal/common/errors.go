// Package common defines shared constants, sentinel errors and small helpers
// used across the storefront client layers. Callers should use errors.Is to
// match the sentinel values.
package common

import "errors"

var (
	// Gateway-level errors.
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")

	// Auth errors.
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrPasswordsDoNotMatch = errors.New("passwords do not match")

	// Checkout errors.
	ErrMissingOrderID     = errors.New("response carries no order id")
	ErrMissingRedirectURL = errors.New("response carries no redirect url")
	ErrPaymentFailed      = errors.New("payment failed")
)
