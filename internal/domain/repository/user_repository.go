package repository

import (
	"context"

	"github.com/rizkydarmawan/goblog/internal/domain/entity"
)

// UserRepository defines the persistence operations for users.
// Implementations return ErrNotFound for missing rows and ErrDuplicate for
// unique-constraint violations so callers can branch without inspecting
// driver errors.
type UserRepository interface {
	// Create inserts the user and fills in ID, Role and timestamps. The
	// storage layer assigns the admin role to the first account ever
	// created, atomically with the insert.
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	SetRole(ctx context.Context, id int64, role entity.Role) error
}
