package service

import (
	"errors"

	"technews/internal/models"
)

// Authorization failures. Handlers treat both the same way, callers that
// care can still tell them apart.
var (
	ErrPostNotFound = errors.New("post not found")
	ErrNotOwner     = errors.New("not the post author")
)

// RequireOwnership allows the call only when who authored p.
func RequireOwnership(who Identity, p *models.Post) error {
	if p == nil {
		return ErrPostNotFound
	}
	if who.UserID <= 0 || who.UserID != p.AuthorID {
		return ErrNotOwner
	}
	return nil
}
