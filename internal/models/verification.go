package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VerificationRecord tracks a statutory document's expiry for the
// document-verification board.
type VerificationRecord struct {
	ID             uuid.UUID  `gorm:"type:char(36);primaryKey" json:"id"`
	VehicleNumber  string     `gorm:"index;size:50;not null" json:"vehicleNumber"`
	DocumentType   string     `gorm:"size:50;not null" json:"documentType"`
	DocumentNumber string     `gorm:"size:100" json:"documentNumber,omitempty"`
	ExpiryDate     *time.Time `json:"expiryDate,omitempty"`
	IsExpired      bool       `gorm:"index" json:"isExpired"`
	Notes          string     `gorm:"size:2048" json:"notes,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

func (v *VerificationRecord) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}
