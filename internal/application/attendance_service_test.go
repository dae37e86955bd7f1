package application

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aulatrack/attendance-api/internal/domain/entity"
	repo "github.com/aulatrack/attendance-api/internal/domain/repository"
)

type fakeStudentRepo struct {
	byID map[string]*entity.Student
}

func (r *fakeStudentRepo) Create(s *entity.Student) error { r.byID[s.ID] = s; return nil }

func (r *fakeStudentRepo) GetByID(id string) (*entity.Student, error) {
	if s, ok := r.byID[id]; ok {
		return s, nil
	}
	return nil, errNotFound
}

func (r *fakeStudentRepo) Update(s *entity.Student) error { r.byID[s.ID] = s; return nil }

func (r *fakeStudentRepo) ListAll() ([]entity.Student, error) {
	out := make([]entity.Student, 0, len(r.byID))
	for _, s := range r.byID {
		out = append(out, *s)
	}
	return out, nil
}

func (r *fakeStudentRepo) ListByGroup(groupID string) ([]entity.Student, error) { return nil, nil }

type fakeAttendanceRepo struct {
	created []entity.Attendance
	deleted []string
}

func (r *fakeAttendanceRepo) Create(a *entity.Attendance) error {
	a.ID = "a-1"
	r.created = append(r.created, *a)
	return nil
}

func (r *fakeAttendanceRepo) GetByID(id string) (*entity.Attendance, error) {
	for i := range r.created {
		if r.created[i].ID == id {
			a := r.created[i]
			return &a, nil
		}
	}
	return nil, errNotFound
}

func (r *fakeAttendanceRepo) Update(a *entity.Attendance) error {
	for i := range r.created {
		if r.created[i].ID == a.ID {
			r.created[i] = *a
			return nil
		}
	}
	return errNotFound
}

func (r *fakeAttendanceRepo) Delete(id string) error {
	for i := range r.created {
		if r.created[i].ID == id {
			r.created = append(r.created[:i], r.created[i+1:]...)
			r.deleted = append(r.deleted, id)
			return nil
		}
	}
	return errNotFound
}

func (r *fakeAttendanceRepo) List(f repo.AttendanceFilter) ([]entity.Attendance, error) {
	return r.created, nil
}

func newAttendanceFixture() (*AttendanceService, *fakeAttendanceRepo) {
	students := &fakeStudentRepo{byID: map[string]*entity.Student{
		"s-1": {ID: "s-1", FirstName: "Ana", LastName: "García"},
	}}
	att := &fakeAttendanceRepo{}
	return NewAttendanceService(att, students), att
}

func TestAttendanceCreate(t *testing.T) {
	svc, att := newAttendanceFixture()
	day := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)

	a, err := svc.Create("s-1", day, entity.StatusPresent)
	require.NoError(t, err)
	require.Equal(t, "s-1", a.StudentID)
	require.Equal(t, entity.StatusPresent, a.Status)
	require.Len(t, att.created, 1)
}

func TestAttendanceCreateInvalidStatus(t *testing.T) {
	svc, att := newAttendanceFixture()

	_, err := svc.Create("s-1", time.Now(), "dormido")
	require.ErrorIs(t, err, ErrInvalidStatus)
	require.Empty(t, att.created)
}

func TestAttendanceCreateUnknownStudent(t *testing.T) {
	svc, att := newAttendanceFixture()

	_, err := svc.Create("s-404", time.Now(), entity.StatusLate)
	require.ErrorIs(t, err, ErrStudentNotFound)
	require.Empty(t, att.created)
}

func TestAttendanceGetUpdateDelete(t *testing.T) {
	svc, att := newAttendanceFixture()
	day := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)

	created, err := svc.Create("s-1", day, entity.StatusAbsent)
	require.NoError(t, err)

	got, err := svc.GetByID(created.ID)
	require.NoError(t, err)
	require.Equal(t, entity.StatusAbsent, got.Status)

	updated, err := svc.Update(created.ID, time.Time{}, entity.StatusLate)
	require.NoError(t, err)
	require.Equal(t, entity.StatusLate, updated.Status)
	require.Equal(t, day, updated.Date)

	require.NoError(t, svc.Delete(created.ID))
	require.Equal(t, []string{created.ID}, att.deleted)

	_, err = svc.GetByID(created.ID)
	require.ErrorIs(t, err, ErrAttendanceNotFound)
}

func TestAttendanceUpdateInvalidStatus(t *testing.T) {
	svc, _ := newAttendanceFixture()

	created, err := svc.Create("s-1", time.Now(), entity.StatusPresent)
	require.NoError(t, err)

	_, err = svc.Update(created.ID, time.Time{}, "dormido")
	require.ErrorIs(t, err, ErrInvalidStatus)
}

func TestAttendanceDeleteUnknown(t *testing.T) {
	svc, _ := newAttendanceFixture()
	require.ErrorIs(t, svc.Delete("a-404"), ErrAttendanceNotFound)
}

func TestAttendanceStatuses(t *testing.T) {
	svc, _ := newAttendanceFixture()

	for _, status := range []string{entity.StatusPresent, entity.StatusAbsent, entity.StatusLate} {
		_, err := svc.Create("s-1", time.Now(), status)
		require.NoError(t, err, status)
	}
}
