package repository

import (
	"context"

	"github.com/rizkydarmawan/goblog/internal/domain/entity"
)

// CommentRepository defines the persistence operations for comments.
type CommentRepository interface {
	Create(ctx context.Context, c *entity.Comment) error
	// ListByPost returns the comments belonging to one post, oldest first.
	ListByPost(ctx context.Context, postID int64) ([]entity.Comment, error)
}
