package repository

import "github.com/aulatrack/attendance-api/internal/domain/entity"

// StudentRepository defines the persistence operations for students.
type StudentRepository interface {
	Create(s *entity.Student) error
	GetByID(id string) (*entity.Student, error)
	Update(s *entity.Student) error
	ListAll() ([]entity.Student, error)
	ListByGroup(groupID string) ([]entity.Student, error)
}
