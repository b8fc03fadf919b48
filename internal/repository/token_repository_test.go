package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRepoValidateRefresh_Active(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTokenRepo(db)

	rows := sqlmock.NewRows([]string{"user_id", "expires_at", "revoked_at"}).
		AddRow(3, time.Now().UTC().Add(time.Hour), nil)
	mock.ExpectQuery("SELECT user_id, expires_at, revoked_at FROM refresh_tokens").
		WithArgs("hash-abc").
		WillReturnRows(rows)

	uid, err := repo.ValidateRefresh(context.Background(), "hash-abc")
	require.NoError(t, err)
	assert.Equal(t, uint64(3), uid)
}

func TestTokenRepoValidateRefresh_Expired(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTokenRepo(db)

	rows := sqlmock.NewRows([]string{"user_id", "expires_at", "revoked_at"}).
		AddRow(3, time.Now().UTC().Add(-time.Minute), nil)
	mock.ExpectQuery("SELECT user_id, expires_at, revoked_at FROM refresh_tokens").
		WithArgs("hash-abc").
		WillReturnRows(rows)

	_, err := repo.ValidateRefresh(context.Background(), "hash-abc")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestTokenRepoValidateRefresh_Revoked(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTokenRepo(db)

	rows := sqlmock.NewRows([]string{"user_id", "expires_at", "revoked_at"}).
		AddRow(3, time.Now().UTC().Add(time.Hour), time.Now().UTC())
	mock.ExpectQuery("SELECT user_id, expires_at, revoked_at FROM refresh_tokens").
		WithArgs("hash-abc").
		WillReturnRows(rows)

	_, err := repo.ValidateRefresh(context.Background(), "hash-abc")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestTokenRepoRevokeByHash(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTokenRepo(db)

	mock.ExpectExec("UPDATE refresh_tokens SET revoked_at=NOW\\(\\)").
		WithArgs("hash-abc").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.RevokeByHash(context.Background(), "hash-abc"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
