// Package platform provides cross-platform filesystem helpers for files that
// hold session secrets. On Unix systems it enforces owner-only permission
// bits; on Windows permission bits are not applied.
package platform
