package repository

import "github.com/aulatrack/attendance-api/internal/domain/entity"

// UserRepository defines the persistence operations for user accounts.
type UserRepository interface {
	Create(u *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Update(u *entity.User) error
	// UpdatePassword replaces only the stored password hash in a single statement.
	UpdatePassword(id, hash string) error
}
