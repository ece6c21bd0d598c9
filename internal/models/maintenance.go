package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Maintenance struct {
	ID              uuid.UUID  `gorm:"type:char(36);primaryKey" json:"id"`
	VehicleNumber   string     `gorm:"index;size:50;not null" json:"vehicleNumber"`
	DriverID        *uuid.UUID `gorm:"type:char(36);index" json:"driverId,omitempty"`
	MaintenanceType string     `gorm:"size:50;not null" json:"maintenanceType"`
	ServiceType     string     `gorm:"size:50;not null" json:"serviceType"`
	Description     string     `gorm:"size:4096" json:"description"`
	Cost            float64    `gorm:"type:decimal(12,2)" json:"cost"`
	LaborCost       float64    `gorm:"type:decimal(12,2)" json:"laborCost"`
	TotalCost       float64    `gorm:"type:decimal(12,2)" json:"totalCost"`
	ServiceProvider string     `gorm:"size:255" json:"serviceProvider"`
	ServiceDate     *time.Time `json:"serviceDate,omitempty"`
	NextServiceDate *time.Time `json:"nextServiceDate,omitempty"`
	OdometerReading int        `json:"odometerReading"`
	Status          string     `gorm:"size:50;not null;default:scheduled" json:"status"`
	Notes           string     `gorm:"size:4096" json:"notes,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

func (m *Maintenance) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// MaintenanceType is the user-extensible dropdown of operation types.
type MaintenanceType struct {
	ID        uuid.UUID `gorm:"type:char(36);primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;size:255;not null" json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

func (m *MaintenanceType) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
