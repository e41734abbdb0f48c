package services

import (
	"github.com/Niketh-Putta/Terrawise-Ventures/internal/domain/models"
	"github.com/Niketh-Putta/Terrawise-Ventures/internal/infrastructure/config"
	"gorm.io/gorm"
)

// InterfaceEnquiryService defines the enquiry intake service interface
type InterfaceEnquiryService interface {
	CreateSiteVisitEnquiry(enquiry *models.SiteVisitEnquiry) error
	CreateConstructionEnquiry(enquiry *models.ConstructionServiceEnquiry) error
	CreateGeneralEnquiry(enquiry *models.GeneralEnquiry) error
	GetAllSiteVisitEnquiries() ([]models.SiteVisitEnquiry, error)
	GetAllConstructionEnquiries() ([]models.ConstructionServiceEnquiry, error)
	GetAllGeneralEnquiries() ([]models.GeneralEnquiry, error)
}

// EnquiryService handles the three public enquiry forms.
type EnquiryService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewEnquiryService creates a new enquiry service
func NewEnquiryService(db *gorm.DB, cfg *config.Config) InterfaceEnquiryService {
	return &EnquiryService{
		DB:     db,
		Config: cfg,
	}
}

// 1 CreateSiteVisitEnquiry inserts a site visit request. Popup submissions
// arrive without a date; those default to "Not specified".
func (s *EnquiryService) CreateSiteVisitEnquiry(enquiry *models.SiteVisitEnquiry) error {
	if enquiry.PreferredDate == "" {
		enquiry.PreferredDate = "Not specified"
	}
	return s.DB.Create(enquiry).Error
}

// 2 CreateConstructionEnquiry inserts a construction service request
func (s *EnquiryService) CreateConstructionEnquiry(enquiry *models.ConstructionServiceEnquiry) error {
	return s.DB.Create(enquiry).Error
}

// 3 CreateGeneralEnquiry inserts a general contact message
func (s *EnquiryService) CreateGeneralEnquiry(enquiry *models.GeneralEnquiry) error {
	return s.DB.Create(enquiry).Error
}

// 4 GetAllSiteVisitEnquiries lists site visit enquiries, newest first
func (s *EnquiryService) GetAllSiteVisitEnquiries() ([]models.SiteVisitEnquiry, error) {
	var enquiries []models.SiteVisitEnquiry
	if err := s.DB.Order("created_at DESC").Find(&enquiries).Error; err != nil {
		return nil, err
	}
	return enquiries, nil
}

// 5 GetAllConstructionEnquiries lists construction enquiries, newest first
func (s *EnquiryService) GetAllConstructionEnquiries() ([]models.ConstructionServiceEnquiry, error) {
	var enquiries []models.ConstructionServiceEnquiry
	if err := s.DB.Order("created_at DESC").Find(&enquiries).Error; err != nil {
		return nil, err
	}
	return enquiries, nil
}

// 6 GetAllGeneralEnquiries lists general enquiries, newest first
func (s *EnquiryService) GetAllGeneralEnquiries() ([]models.GeneralEnquiry, error) {
	var enquiries []models.GeneralEnquiry
	if err := s.DB.Order("created_at DESC").Find(&enquiries).Error; err != nil {
		return nil, err
	}
	return enquiries, nil
}
