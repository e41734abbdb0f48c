package models

import "time"

// AdminUser is a back-office account for the admin dashboard. Authentication
// is session-cookie based; the password uses the same scrypt scheme as agents.
type AdminUser struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"type:varchar(100);not null;uniqueIndex" json:"email"`
	Password  string    `gorm:"type:text;not null" json:"-"`
	FullName  string    `gorm:"type:varchar(100)" json:"fullName,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
