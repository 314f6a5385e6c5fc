package repository

import (
	"context"
	"database/sql"
	"errors"

	"technews/internal/models"
)

// ErrUsernameTaken is returned when a user insert violates the username uniqueness constraint.
var ErrUsernameTaken = errors.New("username already taken")

type UserRepo interface {
	Create(ctx context.Context, username, hash string) (int, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

type PostRepo interface {
	Create(ctx context.Context, p models.Post) (int, error)
	GetByID(ctx context.Context, id int) (*models.Post, error)
	GetWithAuthor(ctx context.Context, id int) (*models.PostWithAuthor, error)
	ListByAuthor(ctx context.Context, authorID int) ([]models.Post, error)
	Update(ctx context.Context, id int, title, content string) error
	Delete(ctx context.Context, id int) error
}

type Repository struct {
	Users UserRepo
	Posts PostRepo
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Users: NewUserRepository(db),
		Posts: NewPostSQLite(db),
	}
}
