package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VehicleServiceSchedule struct {
	ID            uuid.UUID            `gorm:"type:char(36);primaryKey" json:"id"`
	VehicleNumber string               `gorm:"index;size:50;not null" json:"vehicleNumber"`
	Model         string               `gorm:"size:255" json:"model"`
	Make          string               `gorm:"size:255" json:"make,omitempty"`
	Date          *time.Time           `json:"date,omitempty"`
	Services      []VehicleServiceItem `gorm:"foreignKey:ScheduleID" json:"services"`
	CreatedAt     time.Time            `json:"createdAt"`
	UpdatedAt     time.Time            `json:"updatedAt"`
}

func (s *VehicleServiceSchedule) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

type VehicleServiceItem struct {
	ID          uuid.UUID  `gorm:"type:char(36);primaryKey" json:"id"`
	ScheduleID  uuid.UUID  `gorm:"type:char(36);index;not null" json:"scheduleId"`
	KM          int        `json:"km"`
	Work        string     `gorm:"size:2048" json:"work"`
	ServiceDate *time.Time `json:"serviceDate,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

func (i *VehicleServiceItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

type ACServiceSchedule struct {
	ID             uuid.UUID       `gorm:"type:char(36);primaryKey" json:"id"`
	VehicleNumber  string          `gorm:"index;size:50;not null" json:"vehicleNumber"`
	Model          string          `gorm:"size:255" json:"model"`
	Make           string          `gorm:"size:255" json:"make,omitempty"`
	ACSerialNumber string          `gorm:"size:100" json:"acSerialNumber,omitempty"`
	ACUnit         string          `gorm:"size:255" json:"acUnit,omitempty"`
	Date           *time.Time      `json:"date,omitempty"`
	Services       []ACServiceItem `gorm:"foreignKey:ScheduleID" json:"services"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

func (s *ACServiceSchedule) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// AC services track running hours alongside kilometres, both free-form.
type ACServiceItem struct {
	ID          uuid.UUID  `gorm:"type:char(36);primaryKey" json:"id"`
	ScheduleID  uuid.UUID  `gorm:"type:char(36);index;not null" json:"scheduleId"`
	KM          string     `gorm:"size:50" json:"km"`
	Hours       string     `gorm:"size:50" json:"hours"`
	ServiceDate *time.Time `json:"serviceDate,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

func (i *ACServiceItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
