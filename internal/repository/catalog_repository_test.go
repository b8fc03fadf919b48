package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bikeColumns() []string {
	return []string{"id", "brand", "model", "type", "price_cents", "status", "image_url"}
}

func TestBikeRepoListAll_ReturnsExactlyStoredRows(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBikeRepo(db)

	rows := sqlmock.NewRows(bikeColumns()).
		AddRow(1, "Trek", "FX 3", "city", 5000, "AVAILABLE", "/img/fx3.jpg").
		AddRow(2, "Giant", "Escape", "city", 4500, "RENTED", "/img/escape.jpg").
		AddRow(3, "Canyon", "Grail", "road", 9000, "MAINTENANCE", "/img/grail.jpg")
	mock.ExpectQuery("SELECT id, brand, model, type, price_cents, status, image_url FROM bikes").
		WillReturnRows(rows)

	bikes, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, bikes, 3)
	assert.Equal(t, "Trek", bikes[0].Brand)
	assert.Equal(t, int64(5000), bikes[0].PriceCents)
	assert.Equal(t, "RENTED", bikes[1].Status)
	assert.Equal(t, "/img/grail.jpg", bikes[2].ImageURL)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBikeRepoListAll_Empty(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBikeRepo(db)

	mock.ExpectQuery("SELECT id, brand, model, type, price_cents, status, image_url FROM bikes").
		WillReturnRows(sqlmock.NewRows(bikeColumns()))

	bikes, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, bikes)
}

func TestBikeRepoGetByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBikeRepo(db)

	mock.ExpectQuery("SELECT id, brand, model, type, price_cents, status, image_url FROM bikes WHERE id").
		WithArgs(uint64(99)).
		WillReturnRows(sqlmock.NewRows(bikeColumns()))

	_, err := repo.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrBikeNotFound)
}

func TestPartRepoListAll(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPartRepo(db)

	rows := sqlmock.NewRows([]string{"id", "name", "price_cents"}).
		AddRow(1, "chain", 1500).
		AddRow(2, "saddle", 3000)
	mock.ExpectQuery("SELECT id, name, price_cents FROM parts").
		WillReturnRows(rows)

	parts, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, parts, 2)
	assert.Equal(t, "chain", parts[0].Name)
	assert.Equal(t, int64(3000), parts[1].PriceCents)
}

func TestCatalogCounts(t *testing.T) {
	db, mock := newMockDB(t)
	bikes := NewBikeRepo(db)
	parts := NewPartRepo(db)

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM bikes").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM parts").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	nb, err := bikes.Count(context.Background())
	require.NoError(t, err)
	np, err := parts.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(12), nb)
	assert.Equal(t, int64(7), np)
}
