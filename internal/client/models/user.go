// Package models holds the client-side projections of remote storefront
// entities. All of them are owned by the server; the client only ever reads
// them and never invents values locally.
package models

// User is the authenticated account as returned by the login endpoint.
// The client treats it as an opaque record and only renders it.
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Session is the authentication state held by the store. Token and User are
// persisted write-through; IsAuthenticated is derived from Token presence
// when the session is restored at startup.
type Session struct {
	IsAuthenticated bool
	User            *User
	Token           string
}
