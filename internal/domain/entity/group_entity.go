package entity

import "time"

// Group is a class group owned by the teacher that created it.
type Group struct {
	ID        string
	Name      string
	OwnerID   string
	CreatedAt time.Time
	UpdatedAt time.Time

	// Students enrolled in the group; populated on list queries only.
	Students []Student
}
