// Package session holds the authenticated user for one tab: a named
// namespace under ~/.tablebook/tabs/ so separate terminals can stay logged
// in as different users, the way browser tabs keep separate session storage.
// The Store rehydrates on construction and clears its storage on logout.
package session
