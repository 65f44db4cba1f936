package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rizkydarmawan/goblog/internal/domain/entity"
	"github.com/rizkydarmawan/goblog/internal/domain/repository"
)

type CommentRepository struct {
	pool *pgxpool.Pool
}

func NewCommentRepository(pool *pgxpool.Pool) *CommentRepository {
	return &CommentRepository{pool: pool}
}

func (r *CommentRepository) Create(ctx context.Context, c *entity.Comment) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO comments (body, author_id, post_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, c.Body, c.AuthorID, c.PostID)

	if err := row.Scan(&c.ID, &c.CreatedAt); err != nil {
		return mapRowError(err)
	}
	return nil
}

func (r *CommentRepository) ListByPost(ctx context.Context, postID int64) ([]entity.Comment, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT c.id, c.body, c.author_id, u.name, c.post_id, c.created_at
		FROM comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.post_id = $1
		ORDER BY c.id
	`, postID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.Comment, error) {
		var c entity.Comment
		err := row.Scan(&c.ID, &c.Body, &c.AuthorID, &c.AuthorName, &c.PostID, &c.CreatedAt)
		return c, err
	})
}

var _ repository.CommentRepository = (*CommentRepository)(nil)
