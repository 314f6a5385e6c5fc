package service

import (
	"context"

	"technews/internal/models"
	"technews/internal/repository"
)

type Authorization interface {
	SignUp(ctx context.Context, username, password string) (string, error)
	GenerateToken(ctx context.Context, username, password string) (string, error)
	ParseToken(accessToken string) (Identity, error)
}

// Posts exposes ownership-scoped post operations.
type Posts interface {
	ListByAuthor(ctx context.Context, authorID int) ([]models.Post, error)
	View(ctx context.Context, id int) (*models.PostWithAuthor, error)
	Create(ctx context.Context, who Identity, in PostInput) (int, error)
	GetOwned(ctx context.Context, who Identity, id int) (*models.Post, error)
	Update(ctx context.Context, who Identity, id int, in PostInput) error
	Delete(ctx context.Context, who Identity, id int) error
}

// Service aggregates all sub-services.
type Service struct {
	Authorization
	Posts
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository, sessions *SessionCodec) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Users, sessions),
		Posts:         NewPostService(repos.Posts),
	}
}
