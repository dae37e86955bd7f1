package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aulatrack/attendance-api/internal/domain/entity"
)

type fakeGroupRepo struct {
	byID     map[string]*entity.Group
	enrolled map[string][]string // groupID -> studentIDs
}

func newFakeGroupRepo(groups ...*entity.Group) *fakeGroupRepo {
	r := &fakeGroupRepo{byID: map[string]*entity.Group{}, enrolled: map[string][]string{}}
	for _, g := range groups {
		r.byID[g.ID] = g
	}
	return r
}

func (r *fakeGroupRepo) Create(g *entity.Group) error { r.byID[g.ID] = g; return nil }

func (r *fakeGroupRepo) GetByID(id string) (*entity.Group, error) {
	if g, ok := r.byID[id]; ok {
		return g, nil
	}
	return nil, errNotFound
}

func (r *fakeGroupRepo) Update(g *entity.Group) error { r.byID[g.ID] = g; return nil }

func (r *fakeGroupRepo) ListByOwner(ownerID string) ([]entity.Group, error) { return nil, nil }

func (r *fakeGroupRepo) Enroll(groupID, studentID string) error {
	r.enrolled[groupID] = append(r.enrolled[groupID], studentID)
	return nil
}

type seqStudentRepo struct {
	fakeStudentRepo
}

func (r *seqStudentRepo) Create(s *entity.Student) error {
	s.ID = "s-new"
	r.byID[s.ID] = s
	return nil
}

func newStudentFixture() (*StudentService, *fakeGroupRepo) {
	groups := newFakeGroupRepo(&entity.Group{ID: "g-1", Name: "Matemáticas 101", OwnerID: "u-1"})
	students := &seqStudentRepo{fakeStudentRepo: fakeStudentRepo{byID: map[string]*entity.Student{
		"s-1": {ID: "s-1", FirstName: "Ana", LastName: "García", Email: "ana@escuela.edu"},
	}}}
	svc := NewStudentService(students, groups, nil, "", nil, "", nil)
	return svc, groups
}

func TestStudentCreateInGroupEnrolls(t *testing.T) {
	svc, groups := newStudentFixture()

	st, err := svc.CreateInGroup(context.Background(), "g-1", StudentInput{FirstName: "Luis", LastName: "Pérez"})
	require.NoError(t, err)
	require.Equal(t, "Luis", st.FirstName)
	require.Equal(t, []string{st.ID}, groups.enrolled["g-1"])
}

func TestStudentCreateInGroupUnknownGroup(t *testing.T) {
	svc, _ := newStudentFixture()

	_, err := svc.CreateInGroup(context.Background(), "g-404", StudentInput{FirstName: "Luis"})
	require.ErrorIs(t, err, ErrGroupNotFound)
}

func TestStudentUpdatePartial(t *testing.T) {
	svc, _ := newStudentFixture()

	st, err := svc.Update(context.Background(), "s-1", StudentInput{LastName: "Gómez"})
	require.NoError(t, err)
	require.Equal(t, "Ana", st.FirstName)
	require.Equal(t, "Gómez", st.LastName)
	require.Equal(t, "ana@escuela.edu", st.Email)
}

func TestStudentUpdateUnknown(t *testing.T) {
	svc, _ := newStudentFixture()

	_, err := svc.Update(context.Background(), "s-404", StudentInput{FirstName: "X"})
	require.ErrorIs(t, err, ErrStudentNotFound)
}

func TestStudentListAll(t *testing.T) {
	svc, _ := newStudentFixture()

	_, err := svc.CreateInGroup(context.Background(), "g-1", StudentInput{FirstName: "Luis", LastName: "Pérez"})
	require.NoError(t, err)

	students, err := svc.ListAll()
	require.NoError(t, err)
	require.Len(t, students, 2)
}

func TestStudentSearchWithoutIndexIsEmpty(t *testing.T) {
	svc, _ := newStudentFixture()

	hits, err := svc.Search(context.Background(), "ana", 10)
	require.NoError(t, err)
	require.Empty(t, hits)
}
