package models

import "time"

// Post is a single article owned by its author.
type Post struct {
	ID          int       `json:"id"`
	CreatedDate time.Time `json:"created_date"` // set once at creation
	Title       string    `json:"title"`
	Content     string    `json:"content"` // plain text; markup is applied when displayed
	AuthorID    int       `json:"author_id"`
}

// PostWithAuthor is a Post joined with its author's username for display.
type PostWithAuthor struct {
	Post
	AuthorUsername string `json:"author_username"`
}
