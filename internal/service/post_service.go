package service

import (
	"context"
	"time"

	"technews/internal/models"
	"technews/internal/repository"
)

// PostService implements ownership-scoped CRUD over posts.
type PostService struct {
	posts repository.PostRepo
	now   func() time.Time
}

func NewPostService(posts repository.PostRepo) *PostService {
	return &PostService{posts: posts, now: time.Now}
}

// ListByAuthor returns the author's posts, newest first.
func (s *PostService) ListByAuthor(ctx context.Context, authorID int) ([]models.Post, error) {
	return s.posts.ListByAuthor(ctx, authorID)
}

// View returns a post with its author's username, or ErrPostNotFound.
func (s *PostService) View(ctx context.Context, id int) (*models.PostWithAuthor, error) {
	p, err := s.posts.GetWithAuthor(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrPostNotFound
	}
	return p, nil
}

// Create stores a new post authored by who and returns its ID.
func (s *PostService) Create(ctx context.Context, who Identity, in PostInput) (int, error) {
	clean, msgs := normalizePostInput(in)
	if len(msgs) > 0 {
		return 0, &ValidationError{Messages: msgs}
	}
	return s.posts.Create(ctx, models.Post{
		CreatedDate: s.now().UTC(),
		Title:       clean.Title,
		Content:     clean.Content,
		AuthorID:    who.UserID,
	})
}

// GetOwned returns the post only when who authored it.
func (s *PostService) GetOwned(ctx context.Context, who Identity, id int) (*models.Post, error) {
	p, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := RequireOwnership(who, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Update replaces title and content of a post owned by who.
// Ownership is checked before the input is validated.
func (s *PostService) Update(ctx context.Context, who Identity, id int, in PostInput) error {
	if _, err := s.GetOwned(ctx, who, id); err != nil {
		return err
	}
	clean, msgs := normalizePostInput(in)
	if len(msgs) > 0 {
		return &ValidationError{Messages: msgs}
	}
	return s.posts.Update(ctx, id, clean.Title, clean.Content)
}

// Delete removes a post owned by who.
func (s *PostService) Delete(ctx context.Context, who Identity, id int) error {
	if _, err := s.GetOwned(ctx, who, id); err != nil {
		return err
	}
	return s.posts.Delete(ctx, id)
}
