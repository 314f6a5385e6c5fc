package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"technews/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// Domain errors for auth flows. Both login failures wrap
// ErrInvalidCredentials so callers never have to tell them apart.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidPassword    = fmt.Errorf("%w: invalid password", ErrInvalidCredentials)
	ErrUserNotFound       = fmt.Errorf("%w: user not found", ErrInvalidCredentials)
)

// AuthService handles user auth logic
type AuthService struct {
	users    repository.UserRepo
	sessions *SessionCodec
}

func NewAuthService(repo repository.UserRepo, sessions *SessionCodec) *AuthService {
	return &AuthService{users: repo, sessions: sessions}
}

// SignUp validates the registration form, stores the user with a hashed
// password and returns a session token for it. Rule failures are reported
// together as a *ValidationError.
func (s *AuthService) SignUp(ctx context.Context, username, password string) (string, error) {
	username = strings.TrimSpace(username)

	msgs := usernameRules(username)
	if username != "" {
		existing, err := s.users.GetByUsername(ctx, username)
		if err != nil {
			return "", err
		}
		if existing != nil {
			msgs = append(msgs, MsgUsernameTaken)
		}
	}
	msgs = append(msgs, passwordRules(password)...)
	if len(msgs) > 0 {
		return "", &ValidationError{Messages: msgs}
	}

	hash, err := hashPassword(password)
	if err != nil {
		return "", err
	}
	id, err := s.users.Create(ctx, username, hash)
	if err != nil {
		if errors.Is(err, repository.ErrUsernameTaken) {
			// lost a race with a concurrent registration
			return "", &ValidationError{Messages: []string{MsgUsernameTaken}}
		}
		return "", err
	}
	return s.sessions.Issue(id, username)
}

// GenerateToken validates credentials and returns a session token.
func (s *AuthService) GenerateToken(ctx context.Context, username, password string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return "", ErrInvalidCredentials
	}

	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return "", err
	}
	if u == nil {
		// keep the response time of unknown users close to known ones
		_ = verifyPassword(dummyHash(), password)
		return "", ErrUserNotFound
	}

	if err := verifyPassword(u.PasswordHash, password); err != nil {
		return "", ErrInvalidPassword
	}

	return s.sessions.Issue(u.ID, u.Username)
}

// ParseToken decodes a session token into the identity it carries.
func (s *AuthService) ParseToken(accessToken string) (Identity, error) {
	return s.sessions.Decode(accessToken)
}

// helper: hash password safely
func hashPassword(password string) (string, error) {
	if password == "" {
		return "", errors.New("password is empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// helper: verify password against hash
func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

var (
	dummyOnce sync.Once
	dummy     string
)

func dummyHash() string {
	dummyOnce.Do(func() {
		h, _ := bcrypt.GenerateFromPassword([]byte("not-a-real-password"), bcrypt.DefaultCost)
		dummy = string(h)
	})
	return dummy
}
