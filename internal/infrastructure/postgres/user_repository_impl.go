package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rizkydarmawan/goblog/internal/domain/entity"
	"github.com/rizkydarmawan/goblog/internal/domain/repository"
)

// uniqueViolation is the Postgres SQLSTATE for unique-constraint errors.
const uniqueViolation = "23505"

func mapRowError(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return repository.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return repository.ErrDuplicate
	}
	return err
}

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	// The first account ever inserted becomes the administrator. Deciding
	// the role inside the INSERT keeps registration race-free: two
	// concurrent first registrations serialize on the insert itself.
	row := r.pool.QueryRow(ctx, `
		INSERT INTO users (email, password_hash, name, role)
		VALUES ($1, $2, $3,
			CASE WHEN NOT EXISTS (SELECT 1 FROM users) THEN 'admin' ELSE 'user' END)
		RETURNING id, role, created_at, updated_at
	`, u.Email, u.Password, u.Name)

	if err := row.Scan(&u.ID, &u.Role, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return mapRowError(err)
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	u := &entity.User{}
	row := r.pool.QueryRow(ctx, `
		SELECT id, email, password_hash, name, role, created_at, updated_at
		FROM users
		WHERE id = $1
	`, id)

	if err := row.Scan(&u.ID, &u.Email, &u.Password, &u.Name, &u.Role,
		&u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, mapRowError(err)
	}
	return u, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	u := &entity.User{}
	row := r.pool.QueryRow(ctx, `
		SELECT id, email, password_hash, name, role, created_at, updated_at
		FROM users
		WHERE email = $1
	`, email)

	if err := row.Scan(&u.ID, &u.Email, &u.Password, &u.Name, &u.Role,
		&u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, mapRowError(err)
	}
	return u, nil
}

func (r *UserRepository) SetRole(ctx context.Context, id int64, role entity.Role) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE users SET role = $1, updated_at = now() WHERE id = $2
	`, role, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
