package models

import "time"

// OTPSession is a one-time login challenge for an agent phone number.
// Creating a new session deletes any prior sessions for the same phone, so at
// most one live code exists per number.
type OTPSession struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Phone     string    `gorm:"type:varchar(20);not null;index" json:"phone"`
	OTP       string    `gorm:"type:varchar(10);not null" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expiresAt"`
	Verified  bool      `gorm:"not null;default:false" json:"verified"`
	CreatedAt time.Time `json:"createdAt"`
}

// Expired reports whether the session can no longer be verified.
func (s *OTPSession) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
