package entity

import "time"

// Comment is a free-text reply attached to exactly one post and one
// authoring user. Comments are append-only; no exposed operation updates
// or deletes them.
type Comment struct {
	ID         int64
	Body       string
	AuthorID   int64
	AuthorName string // joined from users for display; not a column
	PostID     int64
	CreatedAt  time.Time
}
