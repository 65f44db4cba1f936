package entity

import "time"

// Role is the authorization role stored on each user row. The first
// registered account becomes the administrator; everyone after it is a
// regular user.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// User is the aggregate root for the identity domain.
// Password holds a bcrypt hash, never plaintext.
type User struct {
	ID        int64
	Email     string
	Password  string
	Name      string
	Role      Role
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAdmin reports whether the user holds post-management rights.
func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }
