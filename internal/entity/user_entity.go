package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id        uuid.UUID `gorm:"primaryKey"`
	Email     string    `gorm:"uniqueIndex"`
	FullName  string
	// PasswordHash is normally a bcrypt hash. Legacy rows imported from
	// the old user file may still hold plaintext; those migrate to
	// bcrypt on first successful login.
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
