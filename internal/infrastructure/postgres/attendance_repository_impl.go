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

type AttendanceRepository struct {
	pool *pgxpool.Pool
}

func NewAttendanceRepository(pool *pgxpool.Pool) *AttendanceRepository {
	return &AttendanceRepository{pool: pool}
}

func (r *AttendanceRepository) Create(a *entity.Attendance) error {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		INSERT INTO attendances (student_id, date, status)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`, a.StudentID, a.Date, a.Status)

	return row.Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
}

func (r *AttendanceRepository) GetByID(id string) (*entity.Attendance, error) {
	ctx := context.Background()
	a := &entity.Attendance{}

	row := r.pool.QueryRow(ctx, `
		SELECT id, student_id, date, status, created_at, updated_at
		FROM attendances
		WHERE id = $1
	`, id)

	if err := row.Scan(&a.ID, &a.StudentID, &a.Date, &a.Status,
		&a.CreatedAt, &a.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return a, nil
}

func (r *AttendanceRepository) Update(a *entity.Attendance) error {
	ctx := context.Background()
	a.UpdatedAt = time.Now()

	res, err := r.pool.Exec(ctx, `
		UPDATE attendances
		SET date = $1, status = $2, updated_at = $3
		WHERE id = $4
	`, a.Date, a.Status, a.UpdatedAt, a.ID)
	if err != nil {
		return err
	}

	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func (r *AttendanceRepository) Delete(id string) error {
	ctx := context.Background()

	res, err := r.pool.Exec(ctx, `
		DELETE FROM attendances
		WHERE id = $1
	`, id)
	if err != nil {
		return err
	}

	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func (r *AttendanceRepository) List(f repository.AttendanceFilter) ([]entity.Attendance, error) {
	ctx := context.Background()

	q := `
		SELECT id, student_id, date, status, created_at, updated_at
		FROM attendances
		WHERE ($1 = '' OR student_id::text = $1)
		  AND ($2::timestamptz IS NULL OR date >= $2)
		  AND ($3::timestamptz IS NULL OR date <= $3)
		ORDER BY date DESC, created_at DESC
	`
	var from, to any
	if !f.From.IsZero() {
		from = f.From
	}
	if !f.To.IsZero() {
		to = f.To
	}

	rows, err := r.pool.Query(ctx, q, f.StudentID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]entity.Attendance, 0)
	for rows.Next() {
		var a entity.Attendance
		if err := rows.Scan(&a.ID, &a.StudentID, &a.Date, &a.Status,
			&a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		records = append(records, a)
	}
	return records, rows.Err()
}

var _ repository.AttendanceRepository = (*AttendanceRepository)(nil)
