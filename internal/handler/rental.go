package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/velobay/bike-rental/internal/model"
	"github.com/velobay/bike-rental/internal/queue"
	"github.com/velobay/bike-rental/internal/repository"
	queue_publisher "github.com/velobay/bike-rental/internal/service"
)

// dateLayout is the calendar-date form accepted for rental ranges.
const dateLayout = "2006-01-02"

// RentalHandler implements the reservation workflow: a booking quote, the
// rental submission that writes a reservation plus its unpaid transaction
// in one database transaction, and the renter-facing confirmation views.
// JWT authentication is assumed to have run for every method.
type RentalHandler struct {
	Bikes   *repository.BikeRepo
	Rentals *repository.RentalRepo
}

// NewRentalHandler constructs a RentalHandler with the provided
// repositories. All dependencies must be non-nil.
func NewRentalHandler(bikes *repository.BikeRepo, rentals *repository.RentalRepo) *RentalHandler {
	if bikes == nil || rentals == nil {
		panic("nil repository passed to NewRentalHandler")
	}
	return &RentalHandler{Bikes: bikes, Rentals: rentals}
}

// rentReq is the POST /v1/rent body. The price is carried through from
// the quote rather than re-read, matching the booking form behavior where
// the listing the renter saw is the price they pay.
type rentReq struct {
	BikeID         uint64 `json:"bike_id"`
	BikePriceCents int64  `json:"bike_price_cents"`
	StartDate      string `json:"start_date"`
	EndDate        string `json:"end_date"`
}

type rentResp struct {
	ReservationID uint64 `json:"reservation_id"`
	TransactionID uint64 `json:"transaction_id"`
	BikeID        uint64 `json:"bike_id"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
	Nights        int    `json:"nights"`
	TotalCents    int64  `json:"total_cents"`
	IsPaid        bool   `json:"is_paid"`
}

// Quote handles GET /v1/rent. It echoes the booking form prefill from the
// query parameters bike_id, bike_name, bike_model and bike_price; fields
// missing from the query are filled from the catalog when bike_id is
// given.
func (h *RentalHandler) Quote(c echo.Context) error {
	bikeID, _ := strconv.ParseUint(c.QueryParam("bike_id"), 10, 64)
	name := c.QueryParam("bike_name")
	bikeModel := c.QueryParam("bike_model")
	price, _ := strconv.ParseInt(c.QueryParam("bike_price"), 10, 64)

	if bikeID != 0 && (name == "" || bikeModel == "" || price == 0) {
		b, err := h.Bikes.GetByID(c.Request().Context(), bikeID)
		if err != nil {
			if err == repository.ErrBikeNotFound {
				return c.JSON(http.StatusNotFound, echo.Map{"error": "bike not found"})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
		}
		if name == "" {
			name = b.Brand
		}
		if bikeModel == "" {
			bikeModel = b.Model
		}
		if price == 0 {
			price = b.PriceCents
		}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"bike_id":          bikeID,
		"bike_name":        name,
		"bike_model":       bikeModel,
		"bike_price_cents": price,
	})
}

// Rent handles POST /v1/rent. It validates the date range, derives the
// total from whole nights times the nightly price, and inserts the
// reservation and its unpaid transaction inside a single sql.Tx so that
// no reservation can ever exist without a transaction. A reversed or
// zero-length range is accepted and simply yields a zero or negative
// total. On success a rental.confirmed event is published best-effort.
func (h *RentalHandler) Rent(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	var req rentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if req.BikeID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid bike id"})
	}

	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid date"})
	}
	end, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid date"})
	}

	nights := int(end.Sub(start).Hours() / 24)
	total := int64(nights) * req.BikePriceCents

	ctx := c.Request().Context()
	tx, err := h.Rentals.DB().BeginTx(ctx, nil)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to start transaction"})
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	res := model.Reservation{
		BikeID:     req.BikeID,
		UserID:     userID,
		StartDate:  start,
		EndDate:    end,
		TotalCents: total,
	}
	if err := h.Rentals.CreateReservationTx(ctx, tx, &res); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create reservation"})
	}
	trn := model.Transaction{ReservationID: res.ID, IsPaid: false}
	if err := h.Rentals.CreateTransactionTx(ctx, tx, &trn); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create transaction"})
	}
	if err := tx.Commit(); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to commit transaction"})
	}
	committed = true

	// Fire-and-forget; a broker outage must not fail the booking.
	pubCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = queue_publisher.PublishRentalConfirmed(pubCtx, queue.RentalConfirmedEvent{
		ReservationID: res.ID,
		TransactionID: trn.ID,
		UserID:        userID,
		BikeID:        req.BikeID,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		Nights:        nights,
		TotalCents:    total,
		ConfirmedAt:   time.Now().UTC().Format(time.RFC3339),
	})

	return c.JSON(http.StatusCreated, rentResp{
		ReservationID: res.ID,
		TransactionID: trn.ID,
		BikeID:        req.BikeID,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		Nights:        nights,
		TotalCents:    total,
		IsPaid:        false,
	})
}

// ThankYou handles GET /v1/thank_you, the confirmation view shown after a
// successful rental. It returns the caller's most recent reservation with
// its payment record.
func (h *RentalHandler) ThankYou(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	d, err := h.Rentals.LatestByUser(c.Request().Context(), userID)
	if err != nil {
		if err == repository.ErrReservationNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "no reservations yet"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message":     "Bike rented successfully!",
		"reservation": d,
	})
}

// ListRentals handles GET /v1/rentals and returns the caller's rental
// history with payment status, most recent first.
func (h *RentalHandler) ListRentals(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	items, err := h.Rentals.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if items == nil {
		items = []repository.RentalDetail{}
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}
