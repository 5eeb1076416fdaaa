// Package account runs the login and signup flows: client-side checks,
// the auth requests, session hand-off, and the screen to show next.
package account
