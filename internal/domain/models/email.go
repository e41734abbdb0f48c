package models

import "time"

// Email priority values assigned at ingest time.
const (
	EmailPriorityHigh   = "high"
	EmailPriorityNormal = "normal"
	EmailPriorityLow    = "low"
)

// Email is an ingested inbox message. MessageID deduplicates across repeated
// mailbox polls; messages without a Message-ID header get a generated one.
// Plain-text and HTML bodies are stored separately.
type Email struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	MessageID   string         `gorm:"type:varchar(255);not null;uniqueIndex" json:"messageId"`
	FromAddress string         `gorm:"type:varchar(255);not null" json:"fromAddress"`
	FromName    string         `gorm:"type:varchar(255)" json:"fromName,omitempty"`
	ToAddress   string         `gorm:"type:varchar(255)" json:"toAddress,omitempty"`
	Subject     string         `gorm:"type:text" json:"subject,omitempty"`
	TextContent string         `gorm:"type:text" json:"textContent,omitempty"`
	HTMLContent string         `gorm:"type:text" json:"htmlContent,omitempty"`
	Priority    string         `gorm:"type:varchar(10);not null;default:'normal'" json:"priority"`
	IsRead      bool           `gorm:"not null;default:false" json:"isRead"`
	Attachments AttachmentList `gorm:"type:jsonb" json:"attachments,omitempty"`
	ReceivedAt  time.Time      `json:"receivedAt"`
	CreatedAt   time.Time      `json:"createdAt"`
}
