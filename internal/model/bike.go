package model

// Bike status values as stored in the bikes.status column.
const (
	BikeStatusAvailable   = "AVAILABLE"
	BikeStatusRented      = "RENTED"
	BikeStatusMaintenance = "MAINTENANCE"
)

// Bike mirrors a row of the `bikes` table. The catalog is pre-populated
// and read-only from the application's perspective; prices are stored in
// cents to avoid floating point currency math.
//
// Fields:
//  ID         – primary key identifier.
//  Brand      – manufacturer name.
//  Model      – model name.
//  Type       – category such as "city", "road" or "e-bike".
//  PriceCents – nightly rental price in cents.
//  Status     – availability (AVAILABLE, RENTED, MAINTENANCE).
//  ImageURL   – reference to a catalog image.
type Bike struct {
	ID         uint64 // bikes.id
	Brand      string // bikes.brand
	Model      string // bikes.model
	Type       string // bikes.type
	PriceCents int64  // bikes.price_cents
	Status     string // bikes.status
	ImageURL   string // bikes.image_url
}

// Part mirrors a row of the `parts` table. Like bikes, parts are
// pre-populated and read-only.
type Part struct {
	ID         uint64 // parts.id
	Name       string // parts.name
	PriceCents int64  // parts.price_cents
}
