// Package booking implements the reservation form: loading the table
// inventory, marking tables booked for the chosen slot, the debounced
// guest-name typeahead, payload validation, and create/update submission.
//
// A Form is created empty for a new reservation or from an existing Booking
// for editing. Setters mirror the form inputs; Submit posts the payload and
// reports where the user goes next.
//
// Typeahead.Key and Form.NameKey drive the suggestion list from arrow and
// enter keys for interactive front ends. The numbered-menu CLI picks by
// index through Form.SelectSuggestion.
package booking
