package model

import "time"

// Reservation records a user's rental of a bike for a date range. The
// total is derived from the nightly price at booking time and stored
// denormalized. Rows are created exactly once per successful rental and
// never updated or deleted by this service.
//
// Fields:
//  ID         – primary key identifier.
//  BikeID     – bike being rented.
//  UserID     – user who made the reservation.
//  StartDate  – first day of the rental.
//  EndDate    – last day of the rental.
//  TotalCents – nights × nightly price, in cents.
//  CreatedAt  – creation timestamp.
type Reservation struct {
	ID         uint64    // reservations.id
	BikeID     uint64    // reservations.bike_id
	UserID     uint64    // reservations.user_id
	StartDate  time.Time // reservations.start_date
	EndDate    time.Time // reservations.end_date
	TotalCents int64     // reservations.total_cents
	CreatedAt  time.Time // reservations.created_at
}

// Transaction is the payment-tracking record for a reservation. Exactly
// one exists per reservation, created in the same database transaction,
// and it starts out unpaid with both date fields unset.
//
// Fields:
//  ID            – primary key identifier.
//  ReservationID – owning reservation (one-to-one).
//  IsPaid        – whether payment has been received.
//  PaymentDate   – when payment was received (null until paid).
//  DueDate       – payment deadline (null if none set).
//  CreatedAt     – creation timestamp.
type Transaction struct {
	ID            uint64     // transactions.id
	ReservationID uint64     // transactions.reservation_id
	IsPaid        bool       // transactions.is_paid
	PaymentDate   *time.Time // transactions.payment_date (nullable)
	DueDate       *time.Time // transactions.due_date (nullable)
	CreatedAt     time.Time  // transactions.created_at
}
