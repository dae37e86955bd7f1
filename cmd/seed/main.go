package main

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/aulatrack/attendance-api/config"
	"github.com/aulatrack/attendance-api/internal/domain/entity"
	"github.com/aulatrack/attendance-api/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	password := "password123"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	seedUser := func(name, email, role string) string {
		var id string
		err := db.QueryRow(`
			INSERT INTO users (name, email, password_hash, role)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name
			RETURNING id
		`, name, email, hash, role).Scan(&id)
		if err != nil {
			log.Fatalf("failed to seed user %s: %v", email, err)
		}
		return id
	}

	seedUser("Administrador", "admin@example.com", entity.RoleAdmin)
	teacherID := seedUser("Profesor Demo", "profesor@example.com", entity.RoleTeacher)
	fmt.Printf("seeded users (password=%s)\n", password)

	seedGroup := func(name string) string {
		var id string
		err := db.QueryRow(`
			INSERT INTO groups (name, owner_id)
			VALUES ($1, $2)
			RETURNING id
		`, name, teacherID).Scan(&id)
		if err != nil {
			log.Fatalf("failed to seed group %s: %v", name, err)
		}
		return id
	}

	group1 := seedGroup("Matemáticas 101")
	group2 := seedGroup("Programación Web")

	seedStudent := func(first, last, email string) string {
		var id string
		err := db.QueryRow(`
			INSERT INTO students (first_name, last_name, email)
			VALUES ($1, $2, $3)
			RETURNING id
		`, first, last, email).Scan(&id)
		if err != nil {
			log.Fatalf("failed to seed student %s: %v", email, err)
		}
		return id
	}

	students := []string{
		seedStudent("Ana", "García", "ana@example.com"),
		seedStudent("Carlos", "Rodríguez", "carlos@example.com"),
		seedStudent("Sofía", "Martínez", "sofia@example.com"),
		seedStudent("Miguel", "López", "miguel@example.com"),
		seedStudent("Laura", "Sánchez", "laura@example.com"),
	}

	enrollments := []struct {
		group   string
		student string
	}{
		{group1, students[0]},
		{group1, students[1]},
		{group1, students[2]},
		{group2, students[2]},
		{group2, students[3]},
		{group2, students[4]},
	}
	for _, e := range enrollments {
		if _, err := db.Exec(`
			INSERT INTO group_students (group_id, student_id)
			VALUES ($1, $2)
			ON CONFLICT DO NOTHING
		`, e.group, e.student); err != nil {
			log.Fatalf("failed to enroll student: %v", err)
		}
	}
	fmt.Printf("seeded %d students across 2 groups\n", len(students))

	today := time.Now().Truncate(24 * time.Hour)
	statuses := []string{entity.StatusPresent, entity.StatusPresent, entity.StatusLate, entity.StatusAbsent, entity.StatusPresent}
	for i, sid := range students {
		if _, err := db.Exec(`
			INSERT INTO attendances (student_id, date, status)
			VALUES ($1, $2, $3)
		`, sid, today, statuses[i]); err != nil {
			log.Fatalf("failed to seed attendance: %v", err)
		}
	}
	fmt.Println("seeded attendance records for today")
}
