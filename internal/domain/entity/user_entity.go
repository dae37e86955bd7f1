package entity

import "time"

// Roles assignable to a user account.
const (
	RoleTeacher = "profesor"
	RoleAdmin   = "administrador"
)

// User is the aggregate root for the teacher/admin account domain.
// Password always holds a bcrypt hash, never the plaintext.
type User struct {
	ID        string
	Name      string
	Email     string
	Password  string
	Role      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
