package repository

import (
	"context"

	"github.com/rizkydarmawan/goblog/internal/domain/entity"
)

// PostRepository defines the persistence operations for blog posts.
type PostRepository interface {
	Create(ctx context.Context, p *entity.Post) error
	GetByID(ctx context.Context, id int64) (*entity.Post, error)
	// List returns every post in storage-natural (insertion) order.
	List(ctx context.Context) ([]entity.Post, error)
	// Update overwrites title, subtitle, body and image URL. ID, author and
	// display date are never touched.
	Update(ctx context.Context, p *entity.Post) error
	Delete(ctx context.Context, id int64) error
}
