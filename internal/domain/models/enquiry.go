package models

import "time"

// SiteVisitEnquiry captures a request to visit a project site, including
// popup-form submissions which default the visit date to "Not specified".
type SiteVisitEnquiry struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	FullName           string    `gorm:"type:varchar(100);not null" json:"fullName"`
	Phone              string    `gorm:"type:varchar(20);not null" json:"phone"`
	Email              string    `gorm:"type:varchar(100)" json:"email,omitempty"`
	ProjectID          *uint     `json:"projectId,omitempty"`
	PreferredDate      string    `gorm:"type:varchar(50)" json:"preferredDate,omitempty"`
	Message            string    `gorm:"type:text" json:"message,omitempty"`
	PrivacyAccepted    bool      `gorm:"not null;default:false" json:"privacyAccepted"`
	MarketingAgentID   *uint     `json:"marketingAgentId,omitempty"`
	MarketingAgentName string    `gorm:"type:varchar(100)" json:"marketingAgentName,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
}

// ConstructionServiceEnquiry captures a construction/consultation request
// with an optional plot size and budget range.
type ConstructionServiceEnquiry struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	FullName           string    `gorm:"type:varchar(100);not null" json:"fullName"`
	Phone              string    `gorm:"type:varchar(20);not null" json:"phone"`
	Email              string    `gorm:"type:varchar(100)" json:"email,omitempty"`
	ServiceType        string    `gorm:"type:varchar(100)" json:"serviceType,omitempty"`
	PlotSize           string    `gorm:"type:varchar(50)" json:"plotSize,omitempty"`
	Budget             string    `gorm:"type:varchar(50)" json:"budget,omitempty"`
	Message            string    `gorm:"type:text" json:"message,omitempty"`
	PrivacyAccepted    bool      `gorm:"not null;default:false" json:"privacyAccepted"`
	MarketingAgentID   *uint     `json:"marketingAgentId,omitempty"`
	MarketingAgentName string    `gorm:"type:varchar(100)" json:"marketingAgentName,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
}

// GeneralEnquiry is a free-form contact message.
type GeneralEnquiry struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	FullName           string    `gorm:"type:varchar(100);not null" json:"fullName"`
	Phone              string    `gorm:"type:varchar(20);not null" json:"phone"`
	Email              string    `gorm:"type:varchar(100)" json:"email,omitempty"`
	Subject            string    `gorm:"type:varchar(200)" json:"subject,omitempty"`
	Message            string    `gorm:"type:text" json:"message,omitempty"`
	PrivacyAccepted    bool      `gorm:"not null;default:false" json:"privacyAccepted"`
	MarketingAgentID   *uint     `json:"marketingAgentId,omitempty"`
	MarketingAgentName string    `gorm:"type:varchar(100)" json:"marketingAgentName,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
}
