// Package model holds the GORM persistence models mirroring the database schema.
package model

import (
	"time"
)

// UserModel mirrors the 'users' table. PostgreSQL assigns IDs via BIGSERIAL.
type UserModel struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Name         string `gorm:"type:varchar(100);not null"`
	Email        string `gorm:"type:varchar(255);unique;not null"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// The FK constraint lives here so tasks.owner_id always references a
	// user. Owner deletion does not cascade to tasks.
	Tasks []TaskModel `gorm:"foreignKey:OwnerID;constraint:OnDelete:NO ACTION"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
