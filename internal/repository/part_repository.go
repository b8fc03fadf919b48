package repository

import (
	"context"
	"database/sql"

	"github.com/velobay/bike-rental/internal/model"
)

// PartRepo reads the pre-populated 'parts' table.
type PartRepo struct{ db *sql.DB }

func NewPartRepo(db *sql.DB) *PartRepo { return &PartRepo{db: db} }

// ListAll returns every part, unfiltered.
func (r *PartRepo) ListAll(ctx context.Context) ([]model.Part, error) {
	const q = `SELECT id, name, price_cents FROM parts ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Part
	for rows.Next() {
		var p model.Part
		if err := rows.Scan(&p.ID, &p.Name, &p.PriceCents); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Count returns the number of parts in the catalog.
func (r *PartRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM parts").Scan(&n)
	return n, err
}
