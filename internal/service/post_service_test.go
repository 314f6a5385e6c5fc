package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"technews/internal/models"
)

// memPostRepo is an in-memory repository.PostRepo for service tests.
type memPostRepo struct {
	posts   map[int]models.Post
	users   map[int]string
	nextID  int
	updates int
	deletes int
	failGet error
}

func newMemPostRepo() *memPostRepo {
	return &memPostRepo{posts: map[int]models.Post{}, users: map[int]string{}, nextID: 1}
}

func (m *memPostRepo) Create(_ context.Context, p models.Post) (int, error) {
	p.ID = m.nextID
	m.nextID++
	m.posts[p.ID] = p
	return p.ID, nil
}

func (m *memPostRepo) GetByID(_ context.Context, id int) (*models.Post, error) {
	if m.failGet != nil {
		return nil, m.failGet
	}
	p, ok := m.posts[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (m *memPostRepo) GetWithAuthor(_ context.Context, id int) (*models.PostWithAuthor, error) {
	p, ok := m.posts[id]
	if !ok {
		return nil, nil
	}
	return &models.PostWithAuthor{Post: p, AuthorUsername: m.users[p.AuthorID]}, nil
}

func (m *memPostRepo) ListByAuthor(_ context.Context, authorID int) ([]models.Post, error) {
	var out []models.Post
	for _, p := range m.posts {
		if p.AuthorID == authorID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memPostRepo) Update(_ context.Context, id int, title, content string) error {
	m.updates++
	p := m.posts[id]
	p.Title, p.Content = title, content
	m.posts[id] = p
	return nil
}

func (m *memPostRepo) Delete(_ context.Context, id int) error {
	m.deletes++
	delete(m.posts, id)
	return nil
}

var (
	alice = Identity{UserID: 1, Username: "alice"}
	bob   = Identity{UserID: 2, Username: "bob"}
)

func newTestPostService(repo *memPostRepo) *PostService {
	svc := NewPostService(repo)
	svc.now = fixedClock(time.Date(2024, 2, 3, 4, 5, 6, 0, time.FixedZone("X", 3600)))
	return svc
}

func TestPostService_CreateStripsTagsAndStampsAuthor(t *testing.T) {
	repo := newMemPostRepo()
	svc := newTestPostService(repo)

	id, err := svc.Create(context.Background(), alice, PostInput{Title: "<b>Hi</b>", Content: "**bold** <script>x()</script>text"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	stored := repo.posts[id]
	if stored.Title != "Hi" {
		t.Errorf("title = %q, want %q", stored.Title, "Hi")
	}
	if stored.Content != "**bold** text" {
		t.Errorf("content = %q, want %q", stored.Content, "**bold** text")
	}
	if stored.AuthorID != alice.UserID {
		t.Errorf("author = %d, want %d", stored.AuthorID, alice.UserID)
	}
	if stored.CreatedDate.Location() != time.UTC || stored.CreatedDate.Hour() != 3 {
		t.Errorf("createdDate must be the clock time in UTC, got %v", stored.CreatedDate)
	}
}

func TestPostService_CreateValidation(t *testing.T) {
	repo := newMemPostRepo()
	svc := newTestPostService(repo)

	_, err := svc.Create(context.Background(), alice, PostInput{Title: "<i></i>", Content: "   "})
	var verr *ValidationError
	if !errors.As(err, &verr) || len(verr.Messages) != 2 {
		t.Fatalf("expected two validation messages, got %v", err)
	}
	if len(repo.posts) != 0 {
		t.Fatalf("nothing should be stored on validation failure")
	}
}

func TestPostService_View(t *testing.T) {
	repo := newMemPostRepo()
	repo.users[alice.UserID] = alice.Username
	svc := newTestPostService(repo)
	id, _ := svc.Create(context.Background(), alice, PostInput{Title: "t", Content: "c"})

	p, err := svc.View(context.Background(), id)
	if err != nil || p.AuthorUsername != "alice" {
		t.Fatalf("View() = (%+v, %v)", p, err)
	}
	if _, err := svc.View(context.Background(), 999); !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}

func TestPostService_NonOwnerCannotMutate(t *testing.T) {
	repo := newMemPostRepo()
	svc := newTestPostService(repo)
	id, _ := svc.Create(context.Background(), alice, PostInput{Title: "mine", Content: "body"})

	if _, err := svc.GetOwned(context.Background(), bob, id); !errors.Is(err, ErrNotOwner) {
		t.Fatalf("GetOwned by non-owner: expected ErrNotOwner, got %v", err)
	}
	if err := svc.Update(context.Background(), bob, id, PostInput{Title: "x", Content: "y"}); !errors.Is(err, ErrNotOwner) {
		t.Fatalf("Update by non-owner: expected ErrNotOwner, got %v", err)
	}
	if err := svc.Delete(context.Background(), bob, id); !errors.Is(err, ErrNotOwner) {
		t.Fatalf("Delete by non-owner: expected ErrNotOwner, got %v", err)
	}
	if repo.updates != 0 || repo.deletes != 0 {
		t.Fatalf("repository must not be touched: updates=%d deletes=%d", repo.updates, repo.deletes)
	}
	if p := repo.posts[id]; p.Title != "mine" || p.Content != "body" {
		t.Fatalf("post changed: %+v", p)
	}
}

func TestPostService_OwnerUpdateAndDelete(t *testing.T) {
	repo := newMemPostRepo()
	svc := newTestPostService(repo)
	id, _ := svc.Create(context.Background(), alice, PostInput{Title: "old", Content: "old"})
	created := repo.posts[id].CreatedDate

	if err := svc.Update(context.Background(), alice, id, PostInput{Title: "<em>new</em>", Content: "new"}); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	p := repo.posts[id]
	if p.Title != "new" || p.Content != "new" || !p.CreatedDate.Equal(created) || p.AuthorID != alice.UserID {
		t.Fatalf("unexpected post after update: %+v", p)
	}

	err := svc.Update(context.Background(), alice, id, PostInput{Title: "", Content: "x"})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}

	if err := svc.Delete(context.Background(), alice, id); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, ok := repo.posts[id]; ok {
		t.Fatalf("post should be gone")
	}
	if err := svc.Delete(context.Background(), alice, id); !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("second delete: expected ErrPostNotFound, got %v", err)
	}
}

func TestPostService_StorageErrorPropagates(t *testing.T) {
	repo := newMemPostRepo()
	repo.failGet = errors.New("db down")
	svc := newTestPostService(repo)

	err := svc.Delete(context.Background(), alice, 1)
	if err == nil || errors.Is(err, ErrPostNotFound) || errors.Is(err, ErrNotOwner) {
		t.Fatalf("expected raw storage error, got %v", err)
	}
}
