package models

import "time"

// OTP holds at most one active code per identifier (lowercased email or
// digit-only phone). Issuing a new code upserts on Identifier, which
// supersedes any previous code.
type OTP struct {
	ID         uint      `gorm:"primaryKey"`
	Identifier string    `gorm:"uniqueIndex;size:255;not null"`
	CodeHash   string    `gorm:"size:255;not null"`
	ExpiresAt  time.Time `gorm:"index"`
	UsedAt     *time.Time
	CreatedAt  time.Time
}
