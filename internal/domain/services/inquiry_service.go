package services

import (
	"errors"
	"time"

	"github.com/Niketh-Putta/Terrawise-Ventures/internal/domain/models"
	"github.com/Niketh-Putta/Terrawise-Ventures/internal/infrastructure/config"
	"gorm.io/gorm"
)

// ErrInquiryNotFound is returned when an inquiry id does not exist.
var ErrInquiryNotFound = errors.New("inquiry not found")

// InterfaceInquiryService defines the inquiry/lead service interface
type InterfaceInquiryService interface {
	CreateInquiry(inquiry *models.Inquiry) error
	GetAllInquiries() ([]models.Inquiry, error)
	GetInquiryByID(id uint) (*models.Inquiry, error)
	GetInquiriesForAgent(agent *models.MarketingAgent) ([]models.InquiryWithProject, error)
	UpdateLeadStatus(id uint, status string) (*models.Inquiry, error)
	AddAgentComment(id uint, comment string) (*models.Inquiry, error)
}

// InquiryService manages lead records and their lifecycle.
type InquiryService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewInquiryService creates a new inquiry service
func NewInquiryService(db *gorm.DB, cfg *config.Config) InterfaceInquiryService {
	return &InquiryService{
		DB:     db,
		Config: cfg,
	}
}

// 1 CreateInquiry inserts a new lead with status "new"
func (s *InquiryService) CreateInquiry(inquiry *models.Inquiry) error {
	if inquiry.LeadStatus == "" {
		inquiry.LeadStatus = models.LeadStatusNew
	}
	return s.DB.Create(inquiry).Error
}

// 2 GetAllInquiries returns every inquiry, newest first
func (s *InquiryService) GetAllInquiries() ([]models.Inquiry, error) {
	var inquiries []models.Inquiry
	if err := s.DB.Order("created_at DESC").Find(&inquiries).Error; err != nil {
		return nil, err
	}
	return inquiries, nil
}

// 3 GetInquiryByID returns a single inquiry
func (s *InquiryService) GetInquiryByID(id uint) (*models.Inquiry, error) {
	var inquiry models.Inquiry
	if err := s.DB.First(&inquiry, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInquiryNotFound
		}
		return nil, err
	}
	return &inquiry, nil
}

// 4 GetInquiriesForAgent returns the leads attributed to an agent, matched
// either by the stored agent id or by the agent's full name. Older leads were
// captured by name only, so both paths have to match. Project name and
// location come from a left join so leads without a project still appear.
func (s *InquiryService) GetInquiriesForAgent(agent *models.MarketingAgent) ([]models.InquiryWithProject, error) {
	var rows []models.InquiryWithProject
	err := s.DB.Model(&models.Inquiry{}).
		Select("inquiries.*, projects.name AS project_name, projects.location AS project_location").
		Joins("LEFT JOIN projects ON projects.id = inquiries.project_id").
		Where("inquiries.marketing_agent_id = ? OR inquiries.marketing_agent_name = ?", agent.ID, agent.FullName).
		Order("inquiries.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// 5 UpdateLeadStatus overwrites the lead status with no transition checks
func (s *InquiryService) UpdateLeadStatus(id uint, status string) (*models.Inquiry, error) {
	inquiry, err := s.GetInquiryByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.DB.Model(inquiry).Update("lead_status", status).Error; err != nil {
		return nil, err
	}
	inquiry.LeadStatus = status
	return inquiry, nil
}

// 6 AddAgentComment replaces the agent comment and stamps its date
func (s *InquiryService) AddAgentComment(id uint, comment string) (*models.Inquiry, error) {
	inquiry, err := s.GetInquiryByID(id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	updates := map[string]interface{}{
		"agent_comment":      comment,
		"agent_comment_date": now,
	}
	if err := s.DB.Model(inquiry).Updates(updates).Error; err != nil {
		return nil, err
	}
	inquiry.AgentComment = comment
	inquiry.AgentCommentDate = &now
	return inquiry, nil
}
