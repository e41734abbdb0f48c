package models

import "time"

// Agent status values.
const (
	AgentStatusApproved = "approved"
	AgentStatusInactive = "inactive"
)

// MarketingAgent is a registered field agent. Phone numbers are unique and
// the password is stored as a scrypt hash, never serialized to JSON.
type MarketingAgent struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	FullName   string    `gorm:"type:varchar(100);not null" json:"fullName"`
	Phone      string    `gorm:"type:varchar(20);not null;uniqueIndex" json:"phone"`
	Email      string    `gorm:"type:varchar(100)" json:"email,omitempty"`
	Password   string    `gorm:"type:text;not null" json:"-"`
	Address    string    `gorm:"type:text" json:"address,omitempty"`
	Experience string    `gorm:"type:text" json:"experience,omitempty"`
	Status     string    `gorm:"type:varchar(20);not null;default:'approved'" json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}
