package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/velobay/bike-rental/internal/model"
	"github.com/velobay/bike-rental/internal/utils"
)

// UserRepo persists accounts in the 'users' table.
type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

var ErrUsernameExists = errors.New("username already exists")

// Create hashes the password, inserts the user and returns its ID.
// Duplicate usernames are detected via the unique key on users.username.
func (r *UserRepo) Create(ctx context.Context, username, password string, cost int) (uint64, error) {
	username = strings.TrimSpace(username)
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO users (username, password_hash) VALUES (?,?)",
		username, hash)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return 0, ErrUsernameExists
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByUsername fetches a user by trimmed username.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (model.User, error) {
	username = strings.TrimSpace(username)
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,username,password_hash,created_at,updated_at FROM users WHERE username=? LIMIT 1",
		username).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id uint64) (model.User, error) {
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,username,password_hash,created_at,updated_at FROM users WHERE id=? LIMIT 1",
		id).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}
