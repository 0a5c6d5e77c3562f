package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/news-board-api/internal/database"
	"github.com/news-board-api/internal/models"
)

// userRepo is the concrete implementation of UserRepository
type userRepo struct {
	db *database.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *database.DB) UserRepository {
	return &userRepo{db: db}
}

// List returns every user
func (r *userRepo) List(ctx context.Context) ([]models.User, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT username, name, avatar_url FROM users")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *user)
	}
	return users, rows.Err()
}

// GetByUsername retrieves a user, or nil if there is no such user
func (r *userRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	row := r.db.QueryRowContext(ctx, "SELECT username, name, avatar_url FROM users WHERE username = $1", username)

	user, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Exists checks if a user with the given username exists
func (r *userRepo) Exists(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)", username).Scan(&exists)
	return exists, err
}

// Count returns the total number of users
func (r *userRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM users").Scan(&count)
	return count, err
}

// BatchInsert inserts multiple users using PostgreSQL COPY for efficiency
func (r *userRepo) BatchInsert(ctx context.Context, users []*models.User) (int, error) {
	rows := make([][]interface{}, 0, len(users))
	for _, user := range users {
		rows = append(rows, []interface{}{user.Username, user.Name, user.AvatarURL})
	}
	return copyIn(ctx, r.db, "users", []string{"username", "name", "avatar_url"}, rows, "")
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanUser(s scanner) (*models.User, error) {
	var user models.User
	var avatarURL sql.NullString
	if err := s.Scan(&user.Username, &user.Name, &avatarURL); err != nil {
		return nil, err
	}
	user.AvatarURL = avatarURL.String
	return &user, nil
}
