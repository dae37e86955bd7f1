package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aulatrack/attendance-api/internal/domain/entity"
	"github.com/aulatrack/attendance-api/internal/domain/repository"
)

type GroupRepository struct {
	pool *pgxpool.Pool
}

func NewGroupRepository(pool *pgxpool.Pool) *GroupRepository {
	return &GroupRepository{pool: pool}
}

func (r *GroupRepository) Create(g *entity.Group) error {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		INSERT INTO groups (name, owner_id)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at
	`, g.Name, g.OwnerID)

	return row.Scan(&g.ID, &g.CreatedAt, &g.UpdatedAt)
}

func (r *GroupRepository) GetByID(id string) (*entity.Group, error) {
	ctx := context.Background()
	g := &entity.Group{}

	row := r.pool.QueryRow(ctx, `
		SELECT id, name, owner_id, created_at, updated_at
		FROM groups
		WHERE id = $1
	`, id)

	if err := row.Scan(&g.ID, &g.Name, &g.OwnerID, &g.CreatedAt, &g.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return g, nil
}

func (r *GroupRepository) Update(g *entity.Group) error {
	ctx := context.Background()
	g.UpdatedAt = time.Now()

	res, err := r.pool.Exec(ctx, `
		UPDATE groups
		SET name = $1, updated_at = $2
		WHERE id = $3
	`, g.Name, g.UpdatedAt, g.ID)
	if err != nil {
		return err
	}

	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// ListByOwner returns the owner's groups, each with its enrolled students.
func (r *GroupRepository) ListByOwner(ownerID string) ([]entity.Group, error) {
	ctx := context.Background()

	rows, err := r.pool.Query(ctx, `
		SELECT id, name, owner_id, created_at, updated_at
		FROM groups
		WHERE owner_id = $1
		ORDER BY created_at
	`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	groups := make([]entity.Group, 0)
	for rows.Next() {
		var g entity.Group
		if err := rows.Scan(&g.ID, &g.Name, &g.OwnerID, &g.CreatedAt, &g.UpdatedAt); err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range groups {
		students, err := r.studentsOf(ctx, groups[i].ID)
		if err != nil {
			return nil, err
		}
		groups[i].Students = students
	}

	return groups, nil
}

func (r *GroupRepository) Enroll(groupID, studentID string) error {
	ctx := context.Background()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO group_students (group_id, student_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`, groupID, studentID)
	return err
}

func (r *GroupRepository) studentsOf(ctx context.Context, groupID string) ([]entity.Student, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT s.id, s.first_name, s.last_name, COALESCE(s.email, ''), COALESCE(s.photo_url, ''), s.created_at, s.updated_at
		FROM students s
		JOIN group_students gs ON gs.student_id = s.id
		WHERE gs.group_id = $1
		ORDER BY s.last_name, s.first_name
	`, groupID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	students := make([]entity.Student, 0)
	for rows.Next() {
		var s entity.Student
		if err := rows.Scan(&s.ID, &s.FirstName, &s.LastName, &s.Email, &s.PhotoURL,
			&s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

var _ repository.GroupRepository = (*GroupRepository)(nil)
