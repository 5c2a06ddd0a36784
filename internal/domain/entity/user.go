// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"
)

// User is the identity record at the center of the system. The email is the
// login identifier and doubles as the bearer-token subject, so it must be
// unique across the system.
type User struct {
	ID           int64     // Numeric identifier assigned by storage on creation.
	Name         string    // Display name.
	Email        string    // Unique login identifier and token subject.
	PasswordHash string    // Bcrypt digest of the password. Never exposed in responses.
	CreatedAt    time.Time // Timestamp of when this user account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this user's data.
}
