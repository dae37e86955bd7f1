package application

import (
	"errors"

	"github.com/aulatrack/attendance-api/internal/domain/entity"
	repo "github.com/aulatrack/attendance-api/internal/domain/repository"
)

var ErrGroupNotFound = errors.New("grupo no encontrado")

// GroupService manages class groups.
type GroupService struct {
	Repo repo.GroupRepository
}

func NewGroupService(r repo.GroupRepository) *GroupService {
	return &GroupService{Repo: r}
}

// Create makes a group owned by the given user.
func (s *GroupService) Create(ownerID, name string) (*entity.Group, error) {
	g := &entity.Group{Name: name, OwnerID: ownerID}
	if err := s.Repo.Create(g); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *GroupService) UpdateName(id, name string) (*entity.Group, error) {
	g, err := s.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrGroupNotFound
		}
		return nil, err
	}
	if name != "" {
		g.Name = name
	}
	if err := s.Repo.Update(g); err != nil {
		return nil, err
	}
	return g, nil
}

// ListByOwner returns the user's groups with enrolled students.
func (s *GroupService) ListByOwner(ownerID string) ([]entity.Group, error) {
	return s.Repo.ListByOwner(ownerID)
}
