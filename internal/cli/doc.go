// Package cli defines the Cobra command tree for the tablebook CLI. Each file
// registers one top-level command (login, bookings, book, tables, etc.) with
// the root command. Commands delegate to internal packages for the screen
// logic and only handle flag parsing, prompting, and output formatting.
package cli
