package repository

import "github.com/aulatrack/attendance-api/internal/domain/entity"

// GroupRepository defines the persistence operations for class groups.
type GroupRepository interface {
	Create(g *entity.Group) error
	GetByID(id string) (*entity.Group, error)
	Update(g *entity.Group) error
	// ListByOwner returns the owner's groups with their enrolled students.
	ListByOwner(ownerID string) ([]entity.Group, error)
	Enroll(groupID, studentID string) error
}
