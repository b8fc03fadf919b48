package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/velobay/bike-rental/internal/repository"
)

// CatalogHandler serves the read-only bike and part listings plus the
// authenticated landing view. Listings return every stored row with no
// filtering, pagination or sorting beyond a stable id order.
type CatalogHandler struct {
	Bikes *repository.BikeRepo
	Parts *repository.PartRepo
	Users *repository.UserRepo
}

// NewCatalogHandler constructs a CatalogHandler and panics if any
// dependency is nil.
func NewCatalogHandler(bikes *repository.BikeRepo, parts *repository.PartRepo, users *repository.UserRepo) *CatalogHandler {
	if bikes == nil || parts == nil || users == nil {
		panic("nil repository passed to NewCatalogHandler")
	}
	return &CatalogHandler{Bikes: bikes, Parts: parts, Users: users}
}

// bikeItem is a bike as exposed in listing responses.
type bikeItem struct {
	ID         uint64 `json:"id"`
	Brand      string `json:"brand"`
	Model      string `json:"model"`
	Type       string `json:"type"`
	PriceCents int64  `json:"price_cents"`
	Status     string `json:"status"`
	ImageURL   string `json:"image_url"`
}

// partItem is a part as exposed in listing responses.
type partItem struct {
	ID         uint64 `json:"id"`
	Name       string `json:"name"`
	PriceCents int64  `json:"price_cents"`
}

// ListBikes handles GET /v1/bikes.
func (h *CatalogHandler) ListBikes(c echo.Context) error {
	ctx := c.Request().Context()
	bikes, err := h.Bikes.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	out := make([]bikeItem, 0, len(bikes))
	for _, b := range bikes {
		out = append(out, bikeItem{
			ID:         b.ID,
			Brand:      b.Brand,
			Model:      b.Model,
			Type:       b.Type,
			PriceCents: b.PriceCents,
			Status:     b.Status,
			ImageURL:   b.ImageURL,
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": out})
}

// ListParts handles GET /v1/parts.
func (h *CatalogHandler) ListParts(c echo.Context) error {
	ctx := c.Request().Context()
	parts, err := h.Parts.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	out := make([]partItem, 0, len(parts))
	for _, p := range parts {
		out = append(out, partItem{ID: p.ID, Name: p.Name, PriceCents: p.PriceCents})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": out})
}

// Overview handles GET /v1/overview, the landing view for authenticated
// users: who they are plus catalog counts.
func (h *CatalogHandler) Overview(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	ctx := c.Request().Context()

	u, err := h.Users.GetByID(ctx, userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	bikeCount, err := h.Bikes.Count(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	partCount, err := h.Parts.Count(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"username": u.Username,
		"bikes":    bikeCount,
		"parts":    partCount,
	})
}
