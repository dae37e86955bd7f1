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

type StudentRepository struct {
	pool *pgxpool.Pool
}

func NewStudentRepository(pool *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{pool: pool}
}

func (r *StudentRepository) Create(s *entity.Student) error {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		INSERT INTO students (first_name, last_name, email, photo_url)
		VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''))
		RETURNING id, created_at, updated_at
	`, s.FirstName, s.LastName, s.Email, s.PhotoURL)

	return row.Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
}

func (r *StudentRepository) GetByID(id string) (*entity.Student, error) {
	ctx := context.Background()
	s := &entity.Student{}

	row := r.pool.QueryRow(ctx, `
		SELECT id, first_name, last_name, COALESCE(email, ''), COALESCE(photo_url, ''), created_at, updated_at
		FROM students
		WHERE id = $1
	`, id)

	if err := row.Scan(&s.ID, &s.FirstName, &s.LastName, &s.Email, &s.PhotoURL,
		&s.CreatedAt, &s.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return s, nil
}

func (r *StudentRepository) Update(s *entity.Student) error {
	ctx := context.Background()
	s.UpdatedAt = time.Now()

	res, err := r.pool.Exec(ctx, `
		UPDATE students
		SET first_name = $1, last_name = $2, email = NULLIF($3, ''), photo_url = NULLIF($4, ''), updated_at = $5
		WHERE id = $6
	`, s.FirstName, s.LastName, s.Email, s.PhotoURL, s.UpdatedAt, s.ID)
	if err != nil {
		return err
	}

	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func (r *StudentRepository) ListAll() ([]entity.Student, error) {
	ctx := context.Background()

	rows, err := r.pool.Query(ctx, `
		SELECT id, first_name, last_name, COALESCE(email, ''), COALESCE(photo_url, ''), created_at, updated_at
		FROM students
		ORDER BY last_name, first_name
	`)
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

func (r *StudentRepository) ListByGroup(groupID string) ([]entity.Student, error) {
	ctx := context.Background()

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

var _ repository.StudentRepository = (*StudentRepository)(nil)
