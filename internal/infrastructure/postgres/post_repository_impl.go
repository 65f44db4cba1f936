package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rizkydarmawan/goblog/internal/domain/entity"
	"github.com/rizkydarmawan/goblog/internal/domain/repository"
)

type PostRepository struct {
	pool *pgxpool.Pool
}

func NewPostRepository(pool *pgxpool.Pool) *PostRepository {
	return &PostRepository{pool: pool}
}

func (r *PostRepository) Create(ctx context.Context, p *entity.Post) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO posts (title, subtitle, body, img_url, date, author_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`, p.Title, p.Subtitle, p.Body, p.ImgURL, p.Date, p.AuthorID)

	if err := row.Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return mapRowError(err)
	}
	return nil
}

func (r *PostRepository) GetByID(ctx context.Context, id int64) (*entity.Post, error) {
	p := &entity.Post{}
	row := r.pool.QueryRow(ctx, `
		SELECT id, title, subtitle, body, img_url, date, author_id, created_at, updated_at
		FROM posts
		WHERE id = $1
	`, id)

	if err := row.Scan(&p.ID, &p.Title, &p.Subtitle, &p.Body, &p.ImgURL,
		&p.Date, &p.AuthorID, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, mapRowError(err)
	}
	return p, nil
}

func (r *PostRepository) List(ctx context.Context) ([]entity.Post, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, title, subtitle, body, img_url, date, author_id, created_at, updated_at
		FROM posts
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.Post, error) {
		var p entity.Post
		err := row.Scan(&p.ID, &p.Title, &p.Subtitle, &p.Body, &p.ImgURL,
			&p.Date, &p.AuthorID, &p.CreatedAt, &p.UpdatedAt)
		return p, err
	})
}

func (r *PostRepository) Update(ctx context.Context, p *entity.Post) error {
	// Only the four mutable fields; author, date and id are left as created.
	res, err := r.pool.Exec(ctx, `
		UPDATE posts
		SET title = $1, subtitle = $2, body = $3, img_url = $4, updated_at = now()
		WHERE id = $5
	`, p.Title, p.Subtitle, p.Body, p.ImgURL, p.ID)
	if err != nil {
		return mapRowError(err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *PostRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.PostRepository = (*PostRepository)(nil)
