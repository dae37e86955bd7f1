package application

import (
	"errors"

	"github.com/aulatrack/attendance-api/internal/domain/entity"
	repo "github.com/aulatrack/attendance-api/internal/domain/repository"
	"github.com/aulatrack/attendance-api/pkg/helpers"
)

// UserService manages teacher/admin accounts.
type UserService struct {
	Repo repo.UserRepository
}

func NewUserService(r repo.UserRepository) *UserService {
	return &UserService{Repo: r}
}

type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// Create registers an account, hashing the password before it is stored.
func (s *UserService) Create(in CreateUserInput) (*entity.User, error) {
	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	role := in.Role
	if role == "" {
		role = entity.RoleTeacher
	}
	u := &entity.User{
		Name:     in.Name,
		Email:    in.Email,
		Password: hash,
		Role:     role,
	}
	if err := s.Repo.Create(u); err != nil {
		return nil, err
	}
	return u, nil
}

type UpdateUserInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// Update patches the supplied fields; a non-empty password is re-hashed.
func (s *UserService) Update(id string, in UpdateUserInput) (*entity.User, error) {
	u, err := s.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	if in.Name != "" {
		u.Name = in.Name
	}
	if in.Email != "" {
		u.Email = in.Email
	}
	if in.Role != "" {
		u.Role = in.Role
	}
	if in.Password != "" {
		hash, err := helpers.HashPassword(in.Password)
		if err != nil {
			return nil, err
		}
		u.Password = hash
	}
	if err := s.Repo.Update(u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *UserService) GetByID(id string) (*entity.User, error) {
	u, err := s.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return u, nil
}
