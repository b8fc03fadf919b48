package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/velobay/bike-rental/internal/model"
)

// RentalRepo provides persistence for reservations and their payment
// transactions. A reservation and its transaction are always written
// together inside a caller-owned sql.Tx so a crash between the two
// inserts can never leave an orphaned reservation.
type RentalRepo struct {
	db *sql.DB
}

// NewRentalRepo returns a new RentalRepo bound to the given database.
func NewRentalRepo(db *sql.DB) *RentalRepo { return &RentalRepo{db: db} }

// DB exposes the underlying handle so handlers can begin transactions.
func (r *RentalRepo) DB() *sql.DB { return r.db }

// dateFmt is the wire and storage format for rental dates.
const dateFmt = "2006-01-02"

// CreateReservationTx inserts a new reservation within the scope of an
// existing transaction. It populates the generated ID and CreatedAt on
// the provided record. The caller must commit or rollback.
func (r *RentalRepo) CreateReservationTx(ctx context.Context, tx *sql.Tx, res *model.Reservation) error {
	const q = `INSERT INTO reservations (bike_id, user_id, start_date, end_date, total_cents) VALUES (?, ?, ?, ?, ?)`
	result, err := tx.ExecContext(ctx, q,
		res.BikeID, res.UserID, res.StartDate.Format(dateFmt), res.EndDate.Format(dateFmt), res.TotalCents)
	if err != nil {
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	res.ID = uint64(id)
	// Query back the row to populate DB-assigned defaults.
	const sel = `SELECT created_at FROM reservations WHERE id = ?`
	return tx.QueryRowContext(ctx, sel, res.ID).Scan(&res.CreatedAt)
}

// CreateTransactionTx inserts the payment-tracking row for a reservation
// within the same transaction that created the reservation. The row
// starts unpaid with both date fields NULL.
func (r *RentalRepo) CreateTransactionTx(ctx context.Context, tx *sql.Tx, t *model.Transaction) error {
	const q = `INSERT INTO transactions (reservation_id, is_paid, payment_date, due_date) VALUES (?, ?, ?, ?)`
	result, err := tx.ExecContext(ctx, q, t.ReservationID, t.IsPaid, t.PaymentDate, t.DueDate)
	if err != nil {
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	t.ID = uint64(id)
	return nil
}

// RentalDetail joins a reservation with its bike and transaction for
// display to the renter.
type RentalDetail struct {
	ID         uint64 `json:"id"`
	BikeID     uint64 `json:"bike_id"`
	BikeBrand  string `json:"bike_brand"`
	BikeModel  string `json:"bike_model"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	TotalCents int64  `json:"total_cents"`
	Payment    struct {
		ID          uint64  `json:"id"`
		IsPaid      bool    `json:"is_paid"`
		PaymentDate *string `json:"payment_date"`
		DueDate     *string `json:"due_date"`
	} `json:"payment"`
}

const detailQuery = `SELECT r.id, r.bike_id, b.brand, b.model, r.start_date, r.end_date, r.total_cents,
                            t.id, t.is_paid, t.payment_date, t.due_date
                     FROM reservations r
                     JOIN bikes b ON b.id = r.bike_id
                     JOIN transactions t ON t.reservation_id = r.id
                     WHERE r.user_id = ?`

// ListByUser returns all rentals of a user, most recent first.
func (r *RentalRepo) ListByUser(ctx context.Context, userID uint64) ([]RentalDetail, error) {
	rows, err := r.db.QueryContext(ctx, detailQuery+` ORDER BY r.id DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RentalDetail
	for rows.Next() {
		d, err := scanDetail(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// LatestByUser returns the user's most recent rental, used by the
// post-booking confirmation view. ErrReservationNotFound is returned
// when the user has no rentals yet.
func (r *RentalRepo) LatestByUser(ctx context.Context, userID uint64) (RentalDetail, error) {
	row := r.db.QueryRowContext(ctx, detailQuery+` ORDER BY r.id DESC LIMIT 1`, userID)
	d, err := scanDetail(row.Scan)
	if err == sql.ErrNoRows {
		return RentalDetail{}, ErrReservationNotFound
	}
	return d, err
}

// scanDetail scans one joined row into a RentalDetail. Dates are
// normalized to YYYY-MM-DD strings for clients.
func scanDetail(scan func(...any) error) (RentalDetail, error) {
	var (
		d          RentalDetail
		start, end time.Time
		payment    sql.NullTime
		due        sql.NullTime
	)
	err := scan(&d.ID, &d.BikeID, &d.BikeBrand, &d.BikeModel, &start, &end, &d.TotalCents,
		&d.Payment.ID, &d.Payment.IsPaid, &payment, &due)
	if err != nil {
		return RentalDetail{}, err
	}
	d.StartDate = start.Format(dateFmt)
	d.EndDate = end.Format(dateFmt)
	if payment.Valid {
		s := payment.Time.Format(dateFmt)
		d.Payment.PaymentDate = &s
	}
	if due.Valid {
		s := due.Time.Format(dateFmt)
		d.Payment.DueDate = &s
	}
	return d, nil
}
