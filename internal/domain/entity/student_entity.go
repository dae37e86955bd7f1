package entity

import "time"

// Student belongs to zero or more groups via the group_students join table.
type Student struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
	PhotoURL  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
