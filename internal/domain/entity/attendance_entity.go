package entity

import "time"

// Attendance statuses accepted by the API.
const (
	StatusPresent = "presente"
	StatusAbsent  = "ausente"
	StatusLate    = "tardanza"
)

// ValidStatus reports whether s is one of the accepted attendance statuses.
func ValidStatus(s string) bool {
	return s == StatusPresent || s == StatusAbsent || s == StatusLate
}

// Attendance records a student's status on a given date.
type Attendance struct {
	ID        string
	StudentID string
	Date      time.Time
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
