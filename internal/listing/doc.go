// Package listing derives the booking list screen from the raw reservations:
// sort, then filter, then tab counts. The derivation functions never modify
// their input; View keeps the raw list and the screen configuration and
// recomputes rows on demand.
package listing
