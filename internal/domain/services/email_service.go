package services

import (
	"errors"
	"strings"

	"github.com/Niketh-Putta/Terrawise-Ventures/internal/domain/models"
	"github.com/Niketh-Putta/Terrawise-Ventures/internal/infrastructure/config"
	"gorm.io/gorm"
)

// ErrEmailNotFound is returned when an email id does not exist.
var ErrEmailNotFound = errors.New("email not found")

// InterfaceEmailService defines the stored email service interface
type InterfaceEmailService interface {
	SaveEmail(email *models.Email) (bool, error)
	GetAllEmails() ([]models.Email, error)
	GetUnreadEmails() ([]models.Email, error)
	GetEmailByID(id uint) (*models.Email, error)
	MarkAsRead(id uint) (*models.Email, error)
}

// EmailService stores and serves ingested inbox messages.
type EmailService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewEmailService creates a new email service
func NewEmailService(db *gorm.DB, cfg *config.Config) InterfaceEmailService {
	return &EmailService{
		DB:     db,
		Config: cfg,
	}
}

// 1 SaveEmail stores an ingested message, assigning priority from the
// subject line. Returns false without error when the message id was already
// stored, so repeated mailbox polls do not duplicate rows.
func (s *EmailService) SaveEmail(email *models.Email) (bool, error) {
	var count int64
	if err := s.DB.Model(&models.Email{}).Where("message_id = ?", email.MessageID).Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	if email.Priority == "" {
		email.Priority = DeterminePriority(email.Subject)
	}
	if err := s.DB.Create(email).Error; err != nil {
		return false, err
	}
	return true, nil
}

// 2 GetAllEmails lists stored emails, most recently received first
func (s *EmailService) GetAllEmails() ([]models.Email, error) {
	var emails []models.Email
	if err := s.DB.Order("received_at DESC").Find(&emails).Error; err != nil {
		return nil, err
	}
	return emails, nil
}

// 3 GetUnreadEmails lists unread emails, most recently received first
func (s *EmailService) GetUnreadEmails() ([]models.Email, error) {
	var emails []models.Email
	if err := s.DB.Where("is_read = ?", false).Order("received_at DESC").Find(&emails).Error; err != nil {
		return nil, err
	}
	return emails, nil
}

// 4 GetEmailByID returns a single stored email
func (s *EmailService) GetEmailByID(id uint) (*models.Email, error) {
	var email models.Email
	if err := s.DB.First(&email, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmailNotFound
		}
		return nil, err
	}
	return &email, nil
}

// 5 MarkAsRead flags an email as read
func (s *EmailService) MarkAsRead(id uint) (*models.Email, error) {
	email, err := s.GetEmailByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.DB.Model(email).Update("is_read", true).Error; err != nil {
		return nil, err
	}
	email.IsRead = true
	return email, nil
}

// DeterminePriority flags messages whose subject suggests urgency.
func DeterminePriority(subject string) string {
	lower := strings.ToLower(subject)
	if strings.Contains(lower, "urgent") || strings.Contains(lower, "asap") || strings.Contains(lower, "emergency") {
		return models.EmailPriorityHigh
	}
	return models.EmailPriorityNormal
}
