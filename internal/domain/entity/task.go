package entity

import (
	"time"
)

// Task is a unit of work owned by a user. The owner reference is taken from
// caller-supplied input at creation time and is not re-validated against the
// authenticated caller.
type Task struct {
	ID          int64     // Numeric identifier assigned by storage on creation.
	Title       string    // Required short summary of the task.
	Description *string   // Optional free-form details; nil when not provided.
	OwnerID     int64     // References the owning User's ID.
	CreatedAt   time.Time // Timestamp of when this task was created.
	UpdatedAt   time.Time // Timestamp of the last modification to this task.
}
