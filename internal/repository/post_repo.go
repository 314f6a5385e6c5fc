package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"technews/internal/models"
)

type PostSQLite struct {
	db *sql.DB
}

func NewPostSQLite(db *sql.DB) *PostSQLite {
	return &PostSQLite{db: db}
}

var _ PostRepo = (*PostSQLite)(nil)

// createdDateLayout matches JavaScript's Date.toISOString so values sort lexically.
const createdDateLayout = "2006-01-02T15:04:05.000Z"

const (
	insertPostSQL = `INSERT INTO posts (createdDate, title, content, authorid) VALUES (?, ?, ?, ?)`

	selectPostByIDSQL = `SELECT id, createdDate, title, content, authorid FROM posts WHERE id = ?`

	selectPostWithAuthorSQL = `
		SELECT posts.id, posts.createdDate, posts.title, posts.content, posts.authorid, users.username
		FROM posts INNER JOIN users ON posts.authorid = users.id
		WHERE posts.id = ?
	`

	selectPostsByAuthorSQL = `
		SELECT id, createdDate, title, content, authorid
		FROM posts WHERE authorid = ?
		ORDER BY createdDate DESC
	`

	updatePostSQL = `UPDATE posts SET title = ?, content = ? WHERE id = ?`
	deletePostSQL = `DELETE FROM posts WHERE id = ?`
)

// formatCreatedDate renders t in UTC using createdDateLayout; zero means now.
func formatCreatedDate(t time.Time) string {
	if t.IsZero() {
		t = time.Now()
	}
	return t.UTC().Format(createdDateLayout)
}

// parseCreatedDate accepts createdDateLayout and falls back to RFC3339.
func parseCreatedDate(s string) (time.Time, error) {
	if t, err := time.Parse(createdDateLayout, s); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse createdDate %q: %w", s, err)
	}
	return t.UTC(), nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPost(row rowScanner, extra ...any) (models.Post, error) {
	var (
		p       models.Post
		created string
	)
	dest := append([]any{&p.ID, &created, &p.Title, &p.Content, &p.AuthorID}, extra...)
	if err := row.Scan(dest...); err != nil {
		return models.Post{}, err
	}
	ts, err := parseCreatedDate(created)
	if err != nil {
		return models.Post{}, err
	}
	p.CreatedDate = ts
	return p, nil
}

// Create inserts p and returns the new post ID. p.ID is ignored.
func (r *PostSQLite) Create(ctx context.Context, p models.Post) (int, error) {
	res, err := r.db.ExecContext(ctx, insertPostSQL,
		formatCreatedDate(p.CreatedDate),
		p.Title,
		p.Content,
		p.AuthorID,
	)
	if err != nil {
		return 0, fmt.Errorf("insert post for author %d: %w", p.AuthorID, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for post: %w", err)
	}
	return int(lastID), nil
}

// GetByID returns (nil, nil) if the post does not exist.
func (r *PostSQLite) GetByID(ctx context.Context, id int) (*models.Post, error) {
	p, err := scanPost(r.db.QueryRowContext(ctx, selectPostByIDSQL, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select post %d: %w", id, err)
	}
	return &p, nil
}

// GetWithAuthor returns the post joined with its author's username, or (nil, nil).
func (r *PostSQLite) GetWithAuthor(ctx context.Context, id int) (*models.PostWithAuthor, error) {
	var username string
	p, err := scanPost(r.db.QueryRowContext(ctx, selectPostWithAuthorSQL, id), &username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select post %d with author: %w", id, err)
	}
	return &models.PostWithAuthor{Post: p, AuthorUsername: username}, nil
}

// ListByAuthor returns the author's posts, newest first.
func (r *PostSQLite) ListByAuthor(ctx context.Context, authorID int) ([]models.Post, error) {
	rows, err := r.db.QueryContext(ctx, selectPostsByAuthorSQL, authorID)
	if err != nil {
		return nil, fmt.Errorf("list posts for author %d: %w", authorID, err)
	}
	defer func() { _ = rows.Close() }()

	var out []models.Post
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scan post for author %d: %w", authorID, err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate posts for author %d: %w", authorID, err)
	}
	return out, nil
}

// Update changes title and content only.
func (r *PostSQLite) Update(ctx context.Context, id int, title, content string) error {
	if _, err := r.db.ExecContext(ctx, updatePostSQL, title, content, id); err != nil {
		return fmt.Errorf("update post %d: %w", id, err)
	}
	return nil
}

func (r *PostSQLite) Delete(ctx context.Context, id int) error {
	if _, err := r.db.ExecContext(ctx, deletePostSQL, id); err != nil {
		return fmt.Errorf("delete post %d: %w", id, err)
	}
	return nil
}
