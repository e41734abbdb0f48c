package services

import (
	"github.com/Niketh-Putta/Terrawise-Ventures/internal/domain/models"
	"github.com/Niketh-Putta/Terrawise-Ventures/internal/infrastructure/config"
	"gorm.io/gorm"
)

// InterfaceTestimonialService defines the testimonial service interface
type InterfaceTestimonialService interface {
	GetAllTestimonials() ([]models.Testimonial, error)
	CreateTestimonial(testimonial *models.Testimonial) error
}

// TestimonialService serves the customer quotes shown on the site.
type TestimonialService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewTestimonialService creates a new testimonial service
func NewTestimonialService(db *gorm.DB, cfg *config.Config) InterfaceTestimonialService {
	return &TestimonialService{
		DB:     db,
		Config: cfg,
	}
}

// 1 GetAllTestimonials returns every testimonial ordered by id
func (s *TestimonialService) GetAllTestimonials() ([]models.Testimonial, error) {
	var testimonials []models.Testimonial
	if err := s.DB.Order("id").Find(&testimonials).Error; err != nil {
		return nil, err
	}
	return testimonials, nil
}

// 2 CreateTestimonial inserts a new testimonial
func (s *TestimonialService) CreateTestimonial(testimonial *models.Testimonial) error {
	if testimonial.Rating == 0 {
		testimonial.Rating = 5
	}
	return s.DB.Create(testimonial).Error
}
