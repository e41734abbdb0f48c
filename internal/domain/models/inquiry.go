package models

import "time"

// Lead status values. The column itself is a free string: any non-empty value
// overwrites the previous one, there is no enforced transition graph.
const (
	LeadStatusNew                = "new"
	LeadStatusContacted          = "contacted"
	LeadStatusSiteVisitScheduled = "site_visit_scheduled"
	LeadStatusSiteVisitCompleted = "site_visit_completed"
	LeadStatusNegotiating        = "negotiating"
	LeadStatusDealClosed         = "deal_closed"
	LeadStatusDealLost           = "deal_lost"
)

// Inquiry is a general lead record, optionally tied to a project and/or a
// marketing agent. Inquiries are created by public submission and never deleted.
type Inquiry struct {
	ID                 uint       `gorm:"primaryKey" json:"id"`
	FullName           string     `gorm:"type:varchar(100);not null" json:"fullName"`
	Phone              string     `gorm:"type:varchar(20);not null" json:"phone"`
	Email              string     `gorm:"type:varchar(100)" json:"email,omitempty"`
	ProjectID          *uint      `json:"projectId,omitempty"` // weak reference, not enforced
	Budget             string     `gorm:"type:varchar(50)" json:"budget,omitempty"`
	Message            string     `gorm:"type:text" json:"message,omitempty"`
	PrivacyAccepted    bool       `gorm:"not null;default:false" json:"privacyAccepted"`
	MarketingAgentID   *uint      `json:"marketingAgentId,omitempty"`
	MarketingAgentName string     `gorm:"type:varchar(100)" json:"marketingAgentName,omitempty"`
	LeadStatus         string     `gorm:"type:varchar(30);not null;default:'new'" json:"leadStatus"`
	AgentComment       string     `gorm:"type:text" json:"agentComment,omitempty"`
	AgentCommentDate   *time.Time `json:"agentCommentDate,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
}

// InquiryWithProject is an inquiry row joined with the referenced project's
// name and location for the agent dashboard.
type InquiryWithProject struct {
	Inquiry
	ProjectName     string `json:"projectName,omitempty"`
	ProjectLocation string `json:"projectLocation,omitempty"`
}
