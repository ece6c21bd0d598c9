package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Vehicle struct {
	ID              uuid.UUID  `gorm:"type:char(36);primaryKey" json:"id"`
	VehicleNumber   string     `gorm:"uniqueIndex;size:50;not null" json:"vehicleNumber"`
	Model           string     `gorm:"size:255;not null" json:"model"`
	Make            string     `gorm:"size:255" json:"make,omitempty"`
	CompanyName     string     `gorm:"size:255" json:"companyName,omitempty"`
	Branch          string     `gorm:"size:255" json:"branch"`
	Status          string     `gorm:"size:50;not null;default:active" json:"status"`
	Year            int        `json:"year,omitempty"`
	Color           string     `gorm:"size:50" json:"color,omitempty"`
	FuelType        string     `gorm:"size:50" json:"fuelType,omitempty"`
	SeatingCapacity int        `json:"seatingCapacity,omitempty"`
	CargoLength     float64    `json:"cargoLength,omitempty"`
	EngineNumber    string     `gorm:"size:100" json:"engineNumber,omitempty"`
	ChassisNumber   string     `gorm:"size:100" json:"chassisNumber,omitempty"`
	VehicleDetails  string     `gorm:"size:2048" json:"vehicleDetails,omitempty"`
	ACModel         string     `gorm:"size:255" json:"acModel,omitempty"`
	RC              string     `gorm:"size:100" json:"rc,omitempty"`
	Remark          string     `gorm:"size:2048" json:"remark,omitempty"`

	RegistrationDate *time.Time `json:"registrationDate,omitempty"`
	Insurance        *time.Time `json:"insurance,omitempty"`
	RoadTax          *time.Time `json:"roadtax,omitempty"`
	PUC              *time.Time `json:"puc,omitempty"`
	Fitness          *time.Time `json:"fitness,omitempty"`
	GoodsPermit      *time.Time `json:"goodsPermit,omitempty"`
	NationalPermit   *time.Time `json:"nationalPermit,omitempty"`

	Documents []VehicleDocument `gorm:"foreignKey:VehicleID" json:"documents,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (v *Vehicle) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}

// VehicleDocument is one uploaded attachment (PUC, NP, insurance, fitness)
// referenced by its object-storage URL.
type VehicleDocument struct {
	ID         uuid.UUID `gorm:"type:char(36);primaryKey" json:"id"`
	VehicleID  uuid.UUID `gorm:"type:char(36);index;not null" json:"vehicleId"`
	Kind       string    `gorm:"size:50;not null" json:"kind"`
	URL        string    `gorm:"size:2048;not null" json:"url"`
	UploadedAt time.Time `json:"uploadedAt"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (d *VehicleDocument) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}
