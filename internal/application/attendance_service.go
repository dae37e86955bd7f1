package application

import (
	"errors"
	"time"

	"github.com/aulatrack/attendance-api/internal/domain/entity"
	repo "github.com/aulatrack/attendance-api/internal/domain/repository"
)

var (
	ErrInvalidStatus      = errors.New("estado de asistencia inválido")
	ErrAttendanceNotFound = errors.New("asistencia no encontrada")
)

// AttendanceService records, updates and lists per-date attendance.
type AttendanceService struct {
	Repo     repo.AttendanceRepository
	Students repo.StudentRepository
}

func NewAttendanceService(r repo.AttendanceRepository, students repo.StudentRepository) *AttendanceService {
	return &AttendanceService{Repo: r, Students: students}
}

// Create records the student's status for the given date. Duplicate records
// for the same student and date are allowed; readers see the latest one
// first.
func (s *AttendanceService) Create(studentID string, date time.Time, status string) (*entity.Attendance, error) {
	if !entity.ValidStatus(status) {
		return nil, ErrInvalidStatus
	}
	if _, err := s.Students.GetByID(studentID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}
	a := &entity.Attendance{StudentID: studentID, Date: date, Status: status}
	if err := s.Repo.Create(a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *AttendanceService) GetByID(id string) (*entity.Attendance, error) {
	a, err := s.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrAttendanceNotFound
		}
		return nil, err
	}
	return a, nil
}

// Update patches the record's date and/or status. A zero date keeps the
// stored one; an empty status keeps the stored one.
func (s *AttendanceService) Update(id string, date time.Time, status string) (*entity.Attendance, error) {
	if status != "" && !entity.ValidStatus(status) {
		return nil, ErrInvalidStatus
	}
	a, err := s.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrAttendanceNotFound
		}
		return nil, err
	}
	if !date.IsZero() {
		a.Date = date
	}
	if status != "" {
		a.Status = status
	}
	if err := s.Repo.Update(a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *AttendanceService) Delete(id string) error {
	if err := s.Repo.Delete(id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrAttendanceNotFound
		}
		return err
	}
	return nil
}

func (s *AttendanceService) List(f repo.AttendanceFilter) ([]entity.Attendance, error) {
	return s.Repo.List(f)
}
