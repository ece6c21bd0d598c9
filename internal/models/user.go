package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is an account provisioned by an administrator. Login is OTP-only,
// so there is no password; either Email or Phone identifies the account.
type User struct {
	ID        uuid.UUID `gorm:"type:char(36);primaryKey" json:"id"`
	Email     string    `gorm:"index;size:255" json:"email"`
	Phone     string    `gorm:"index;size:20" json:"phone"`
	Name      string    `gorm:"size:255" json:"name"`
	Role      string    `gorm:"size:50;not null;default:user" json:"role"`
	IsActive  bool      `gorm:"not null;default:true" json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
