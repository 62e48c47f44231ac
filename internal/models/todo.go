package models

import "time"

type Todo struct {
	ID          string
	OwnerID     string
	Title       string
	Description string
	DueDate     time.Time
	Completed   bool
	IsDeleted   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
