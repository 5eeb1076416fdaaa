// Package api is the HTTP client for the booking backend. It covers the
// auth, store, and host endpoints, sends the session cookie through the
// configured cookie jar, and turns non-2xx responses into *Error values
// that carry the server's message when one is present.
package api
