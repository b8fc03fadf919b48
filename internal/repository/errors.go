// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios and map
// them to HTTP status codes.
package repository

import "errors"

// ErrBikeNotFound is returned when a bike lookup matches no row.
// Handlers should translate this into an HTTP 404 response.
var ErrBikeNotFound = errors.New("bike not found")

// ErrReservationNotFound is returned when a reservation lookup matches
// no row for the requesting user. Handlers should translate this into
// an HTTP 404 response.
var ErrReservationNotFound = errors.New("reservation not found")
