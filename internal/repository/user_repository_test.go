package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/velobay/bike-rental/internal/utils"
)

// pwdArg asserts that the bound argument is a bcrypt hash of plain, not
// the plaintext itself.
type pwdArg struct {
	plain string
}

func (a pwdArg) Match(v driver.Value) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	return s != a.plain && utils.VerifyPassword(s, a.plain)
}

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func TestUserRepoCreate_Success(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepo(db)

	mock.ExpectExec("INSERT INTO users").
		WithArgs("dave", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(7, 1))

	id, err := repo.Create(context.Background(), "  dave ", "pass123", bcrypt.MinCost)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepoCreate_DuplicateUsername(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepo(db)

	mock.ExpectExec("INSERT INTO users").
		WithArgs("dave", sqlmock.AnyArg()).
		WillReturnError(errors.New("Error 1062 (23000): Duplicate entry 'dave' for key 'users.username'"))

	_, err := repo.Create(context.Background(), "dave", "pass123", bcrypt.MinCost)
	assert.ErrorIs(t, err, ErrUsernameExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepoCreate_NeverStoresPlaintext(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepo(db)

	mock.ExpectExec("INSERT INTO users").
		WithArgs("dave", pwdArg{plain: "pass123"}).
		WillReturnResult(sqlmock.NewResult(1, 1))

	_, err := repo.Create(context.Background(), "dave", "pass123", bcrypt.MinCost)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepoGetByUsername(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepo(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "username", "password_hash", "created_at", "updated_at"}).
		AddRow(3, "dave", "$2a$04$hash", now, now)
	mock.ExpectQuery("SELECT id,username,password_hash,created_at,updated_at FROM users WHERE username").
		WithArgs("dave").
		WillReturnRows(rows)

	u, err := repo.GetByUsername(context.Background(), " dave ")
	require.NoError(t, err)
	assert.Equal(t, uint64(3), u.ID)
	assert.Equal(t, "dave", u.Username)
	assert.Equal(t, "$2a$04$hash", u.PasswordHash)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepoGetByUsername_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepo(db)

	mock.ExpectQuery("SELECT id,username,password_hash,created_at,updated_at FROM users WHERE username").
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByUsername(context.Background(), "ghost")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}
