package services

import (
	"errors"
	"time"

	"github.com/Niketh-Putta/Terrawise-Ventures/internal/domain/models"
	"github.com/Niketh-Putta/Terrawise-Ventures/internal/infrastructure/config"
	"github.com/Niketh-Putta/Terrawise-Ventures/utils"
	"gorm.io/gorm"
)

// ErrOTPInvalid covers a wrong code, an expired code and a reused code alike,
// so callers reveal nothing about which one happened.
var ErrOTPInvalid = errors.New("invalid or expired OTP")

// OTPValidity is how long a login code can be redeemed.
const OTPValidity = 10 * time.Minute

// InterfaceOTPService defines the one-time passcode service interface
type InterfaceOTPService interface {
	CreateSession(phone string) (*models.OTPSession, error)
	VerifySession(phone, otp string) (*models.OTPSession, error)
	CleanupExpired() (int64, error)
}

// OTPService manages agent login challenges.
type OTPService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewOTPService creates a new OTP service
func NewOTPService(db *gorm.DB, cfg *config.Config) InterfaceOTPService {
	return &OTPService{
		DB:     db,
		Config: cfg,
	}
}

// 1 CreateSession issues a fresh 6-digit code for a phone number. Any earlier
// sessions for the same number are removed first, so only the latest code is
// redeemable.
func (s *OTPService) CreateSession(phone string) (*models.OTPSession, error) {
	if err := s.DB.Where("phone = ?", phone).Delete(&models.OTPSession{}).Error; err != nil {
		return nil, err
	}

	session := &models.OTPSession{
		Phone:     phone,
		OTP:       utils.RandomOTP(),
		ExpiresAt: time.Now().Add(OTPValidity),
	}
	if err := s.DB.Create(session).Error; err != nil {
		return nil, err
	}
	return session, nil
}

// 2 VerifySession redeems a code. The session must match phone and code,
// be unverified and unexpired; on success it is marked verified so the same
// code cannot be redeemed twice.
func (s *OTPService) VerifySession(phone, otp string) (*models.OTPSession, error) {
	var session models.OTPSession
	err := s.DB.Where("phone = ? AND otp = ? AND verified = ?", phone, otp, false).First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOTPInvalid
		}
		return nil, err
	}

	if session.Expired(time.Now()) {
		return nil, ErrOTPInvalid
	}

	if err := s.DB.Model(&session).Update("verified", true).Error; err != nil {
		return nil, err
	}
	session.Verified = true
	return &session, nil
}

// 3 CleanupExpired deletes sessions past their expiry
func (s *OTPService) CleanupExpired() (int64, error) {
	result := s.DB.Where("expires_at < ?", time.Now()).Delete(&models.OTPSession{})
	return result.RowsAffected, result.Error
}
