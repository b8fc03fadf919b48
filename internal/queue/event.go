// Package queue defines message payloads exchanged over the message broker.
package queue

// RentalConfirmedEvent is published when a reservation and its transaction
// have been committed. It carries enough information for downstream
// consumers to log or notify without querying the primary database.
type RentalConfirmedEvent struct {
	ReservationID uint64 `json:"reservation_id"`
	TransactionID uint64 `json:"transaction_id"`
	UserID        uint64 `json:"user_id"`
	BikeID        uint64 `json:"bike_id"`
	BikeName      string `json:"bike_name,omitempty"`
	BikeModel     string `json:"bike_model,omitempty"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
	Nights        int    `json:"nights"`
	TotalCents    int64  `json:"total_cents"`
	ConfirmedAt   string `json:"confirmed_at"`
}
