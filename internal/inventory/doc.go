// Package inventory manages the host's registered tables: listing, a single
// add/edit editor, and confirmed deletion. Local state changes only after
// the backend accepts a request.
package inventory
