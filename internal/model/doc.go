// Package model defines the records exchanged with the booking backend:
// users, tables, bookings, and guest-name suggestions. JSON tags follow the
// backend's field names, which are not uniformly cased.
package model
