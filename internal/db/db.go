package db

import (
	"github.com/Shubham0723/geocool-fcc-sub000/internal/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func Open(dsn string) (*gorm.DB, error) {
	database, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := Migrate(database); err != nil {
		return nil, err
	}

	return database, nil
}

func Migrate(database *gorm.DB) error {
	return database.AutoMigrate(
		&models.User{},
		&models.OTP{},
		&models.Vehicle{},
		&models.VehicleDocument{},
		&models.Driver{},
		&models.Ticket{},
		&models.Maintenance{},
		&models.MaintenanceType{},
		&models.Operation{},
		&models.VehicleServiceSchedule{},
		&models.VehicleServiceItem{},
		&models.ACServiceSchedule{},
		&models.ACServiceItem{},
		&models.VerificationRecord{},
	)
}
