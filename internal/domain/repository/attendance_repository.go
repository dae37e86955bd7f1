package repository

import (
	"time"

	"github.com/aulatrack/attendance-api/internal/domain/entity"
)

// AttendanceFilter narrows attendance listings; zero values mean "any".
type AttendanceFilter struct {
	StudentID string
	From      time.Time
	To        time.Time
}

// AttendanceRepository defines the persistence operations for attendance records.
type AttendanceRepository interface {
	Create(a *entity.Attendance) error
	GetByID(id string) (*entity.Attendance, error)
	Update(a *entity.Attendance) error
	Delete(id string) error
	List(f AttendanceFilter) ([]entity.Attendance, error)
}
