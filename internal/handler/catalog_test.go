package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velobay/bike-rental/internal/repository"
)

func newCatalogHandler(t *testing.T) (*CatalogHandler, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewCatalogHandler(repository.NewBikeRepo(db), repository.NewPartRepo(db), repository.NewUserRepo(db)), mock
}

func getContext(e *echo.Echo, path string, userID uint64) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if userID != 0 {
		c.Set("user_id", float64(userID))
	}
	return c, rec
}

func TestListBikes_ReturnsAllRows(t *testing.T) {
	h, mock := newCatalogHandler(t)
	e := echo.New()

	rows := sqlmock.NewRows([]string{"id", "brand", "model", "type", "price_cents", "status", "image_url"}).
		AddRow(1, "Trek", "FX 3", "city", 5000, "AVAILABLE", "/img/fx3.jpg").
		AddRow(2, "Giant", "Escape", "city", 4500, "RENTED", "/img/escape.jpg")
	mock.ExpectQuery("SELECT id, brand, model, type, price_cents, status, image_url FROM bikes").
		WillReturnRows(rows)

	c, rec := getContext(e, "/v1/bikes", 3)
	require.NoError(t, h.ListBikes(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp map[string][]map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp["items"], 2)
	assert.Equal(t, "Trek", resp["items"][0]["brand"])
	assert.Equal(t, "RENTED", resp["items"][1]["status"])
}

func TestListParts_ReturnsAllRows(t *testing.T) {
	h, mock := newCatalogHandler(t)
	e := echo.New()

	rows := sqlmock.NewRows([]string{"id", "name", "price_cents"}).
		AddRow(1, "chain", 1500).
		AddRow(2, "saddle", 3000)
	mock.ExpectQuery("SELECT id, name, price_cents FROM parts").
		WillReturnRows(rows)

	c, rec := getContext(e, "/v1/parts", 3)
	require.NoError(t, h.ListParts(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp map[string][]map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp["items"], 2)
	assert.Equal(t, "chain", resp["items"][0]["name"])
	assert.Equal(t, float64(3000), resp["items"][1]["price_cents"])
}

func TestListBikes_EmptyCatalog(t *testing.T) {
	h, mock := newCatalogHandler(t)
	e := echo.New()

	mock.ExpectQuery("SELECT id, brand, model, type, price_cents, status, image_url FROM bikes").
		WillReturnRows(sqlmock.NewRows([]string{"id", "brand", "model", "type", "price_cents", "status", "image_url"}))

	c, rec := getContext(e, "/v1/bikes", 3)
	require.NoError(t, h.ListBikes(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"items":[]}`, rec.Body.String())
}

func TestOverview(t *testing.T) {
	h, mock := newCatalogHandler(t)
	e := echo.New()

	now := time.Now()
	mock.ExpectQuery("SELECT id,username,password_hash,created_at,updated_at FROM users WHERE id").
		WithArgs(uint64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password_hash", "created_at", "updated_at"}).
			AddRow(3, "dave", "$2a$04$hash", now, now))
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM bikes").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM parts").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	c, rec := getContext(e, "/v1/overview", 3)
	require.NoError(t, h.Overview(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "dave", resp["username"])
	assert.Equal(t, float64(12), resp["bikes"])
	assert.Equal(t, float64(7), resp["parts"])
}

func TestOverview_Unauthenticated(t *testing.T) {
	h, _ := newCatalogHandler(t)
	e := echo.New()

	c, rec := getContext(e, "/v1/overview", 0)
	require.NoError(t, h.Overview(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
