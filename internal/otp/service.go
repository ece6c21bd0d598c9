// Package otp issues and verifies single-use login codes.
package otp

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Shubham0723/geocool-fcc-sub000/internal/models"
	"github.com/Shubham0723/geocool-fcc-sub000/internal/utils"
)

type Service struct {
	DB  *gorm.DB
	TTL time.Duration
}

func NewService(db *gorm.DB, ttl time.Duration) *Service {
	return &Service{DB: db, TTL: ttl}
}

// Issue stores a fresh code for the identifier and returns it in the clear
// for delivery. The upsert on the identifier column supersedes any previous
// code atomically, so concurrent issues cannot leave two live codes.
func (s *Service) Issue(identifier string) (string, error) {
	code, err := utils.GenerateOTP()
	if err != nil {
		return "", err
	}
	codeHash, err := utils.HashOTP(code)
	if err != nil {
		return "", err
	}

	now := time.Now()
	record := models.OTP{
		Identifier: identifier,
		CodeHash:   codeHash,
		ExpiresAt:  now.Add(s.TTL),
		UsedAt:     nil,
		CreatedAt:  now,
	}
	err = s.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "identifier"}},
		DoUpdates: clause.AssignmentColumns([]string{"code_hash", "expires_at", "used_at", "created_at"}),
	}).Create(&record).Error
	if err != nil {
		return "", err
	}

	// Opportunistic sweep of codes past their expiry, in lieu of a TTL index.
	s.DB.Where("expires_at < ? AND identifier <> ?", now, identifier).Delete(&models.OTP{})

	return code, nil
}

// Verify succeeds once per issued code: the used flag is flipped by a
// conditional update, so a second caller racing on the same code loses.
// Wrong, expired and already-used codes are indistinguishable to the caller.
func (s *Service) Verify(identifier string, code string) bool {
	var record models.OTP
	err := s.DB.
		Where("identifier = ? AND used_at IS NULL AND expires_at > ?", identifier, time.Now()).
		First(&record).Error
	if err != nil {
		return false
	}

	if !utils.CheckOTP(record.CodeHash, code) {
		return false
	}

	now := time.Now()
	result := s.DB.Model(&models.OTP{}).
		Where("id = ? AND used_at IS NULL", record.ID).
		Update("used_at", now)
	return result.Error == nil && result.RowsAffected == 1
}
