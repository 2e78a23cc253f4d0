// Package model contains the GORM persistence models.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// The unique index on Email is the authoritative duplicate-signup guard;
// VerificationToken is indexed for the token lookup on verification.
type UserModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email             string    `gorm:"type:varchar(255);unique;not null"`
	PasswordHash      string    `gorm:"type:varchar(255);not null"`
	EmailVerified     bool      `gorm:"not null;default:false"`
	VerificationToken *string   `gorm:"type:varchar(64);index"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
