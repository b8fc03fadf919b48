package repository

import (
	"context"
	"database/sql"

	"github.com/velobay/bike-rental/internal/model"
)

// BikeRepo reads the pre-populated 'bikes' catalog table. The catalog is
// never written by this service.
type BikeRepo struct{ db *sql.DB }

func NewBikeRepo(db *sql.DB) *BikeRepo { return &BikeRepo{db: db} }

// DB exposes the underlying handle so handlers can open transactions
// spanning multiple repositories.
func (r *BikeRepo) DB() *sql.DB { return r.db }

// ListAll returns every bike in the catalog, unfiltered.
func (r *BikeRepo) ListAll(ctx context.Context) ([]model.Bike, error) {
	const q = `SELECT id, brand, model, type, price_cents, status, image_url FROM bikes ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Bike
	for rows.Next() {
		var b model.Bike
		if err := rows.Scan(&b.ID, &b.Brand, &b.Model, &b.Type, &b.PriceCents, &b.Status, &b.ImageURL); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// GetByID returns a single bike or ErrBikeNotFound.
func (r *BikeRepo) GetByID(ctx context.Context, id uint64) (model.Bike, error) {
	const q = `SELECT id, brand, model, type, price_cents, status, image_url FROM bikes WHERE id=? LIMIT 1`
	var b model.Bike
	err := r.db.QueryRowContext(ctx, q, id).Scan(&b.ID, &b.Brand, &b.Model, &b.Type, &b.PriceCents, &b.Status, &b.ImageURL)
	if err == sql.ErrNoRows {
		return model.Bike{}, ErrBikeNotFound
	}
	return b, err
}

// Count returns the number of bikes in the catalog.
func (r *BikeRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM bikes").Scan(&n)
	return n, err
}
