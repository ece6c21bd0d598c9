package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Driver struct {
	ID               uuid.UUID  `gorm:"type:char(36);primaryKey" json:"id"`
	DriverCode       string     `gorm:"uniqueIndex;size:50;not null" json:"driverId"`
	Name             string     `gorm:"size:255;not null" json:"name"`
	Email            string     `gorm:"size:255" json:"email"`
	Phone            string     `gorm:"size:20" json:"phone"`
	LicenseNumber    string     `gorm:"size:100" json:"licenseNumber"`
	LicenseExpiry    *time.Time `json:"licenseExpiry,omitempty"`
	Address          string     `gorm:"size:2048" json:"address,omitempty"`
	EmergencyContact string     `gorm:"size:255" json:"emergencyContact,omitempty"`
	EmergencyPhone   string     `gorm:"size:20" json:"emergencyPhone,omitempty"`
	BloodGroup       string     `gorm:"size:10" json:"bloodGroup,omitempty"`
	DateOfBirth      *time.Time `json:"dateOfBirth,omitempty"`
	JoiningDate      *time.Time `json:"joiningDate,omitempty"`
	Status           string     `gorm:"size:50;not null;default:active" json:"status"`
	VehicleID        *uuid.UUID `gorm:"type:char(36);index" json:"vehicleId,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

func (d *Driver) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}
