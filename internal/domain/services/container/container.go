package container

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/Niketh-Putta/Terrawise-Ventures/internal/domain/services"
	"github.com/Niketh-Putta/Terrawise-Ventures/internal/infrastructure/config"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

// ServiceContainer manages dependency injection for all services.
type ServiceContainer struct {
	db     *gorm.DB
	config *config.Config
	redis  *redis.Client

	// infrastructure services
	redisService services.InterfaceRedisService
	smsService   services.InterfaceSMSService

	// business services
	projectService     services.InterfaceProjectService
	inquiryService     services.InterfaceInquiryService
	enquiryService     services.InterfaceEnquiryService
	agentService       services.InterfaceAgentService
	otpService         services.InterfaceOTPService
	adminService       services.InterfaceAdminService
	emailService       services.InterfaceEmailService
	emailIngestService services.InterfaceEmailIngestService
	testimonialService services.InterfaceTestimonialService
	loanService        services.InterfaceLoanService

	mu sync.RWMutex
}

// NewServiceContainer creates a new service container. redisClient may be nil
// when Redis is not configured; project caching is then skipped.
func NewServiceContainer(db *gorm.DB, cfg *config.Config, redisClient *redis.Client) *ServiceContainer {
	if db == nil {
		panic("database connection is nil")
	}
	if cfg == nil {
		panic("config is nil")
	}

	if redisClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Printf("redis ping failed: %v, continuing without cache", err)
			redisClient = nil
		}
	}

	container := &ServiceContainer{
		db:     db,
		config: cfg,
		redis:  redisClient,
	}
	container.initializeServices()
	return container
}

// initializeServices wires every service once.
func (c *ServiceContainer) initializeServices() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.redis != nil {
		c.redisService = services.NewRedisService(c.config)
	}
	c.smsService = services.NewSMSService(c.config)

	c.projectService = services.NewProjectService(c.db, c.config, c.redisService)
	c.inquiryService = services.NewInquiryService(c.db, c.config)
	c.enquiryService = services.NewEnquiryService(c.db, c.config)
	c.agentService = services.NewAgentService(c.db, c.config)
	c.otpService = services.NewOTPService(c.db, c.config)
	c.adminService = services.NewAdminService(c.db, c.config)
	c.emailService = services.NewEmailService(c.db, c.config)
	c.emailIngestService = services.NewEmailIngestService(c.config, c.emailService)
	c.testimonialService = services.NewTestimonialService(c.db, c.config)
	c.loanService = services.NewLoanService()
}

// GetService returns the service registered under name.
func (c *ServiceContainer) GetService(name string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch name {
	case "config":
		return c.config
	case "db":
		return c.db
	case "redis":
		return c.redisService
	case "sms":
		return c.smsService
	case "project":
		return c.projectService
	case "inquiry":
		return c.inquiryService
	case "enquiry":
		return c.enquiryService
	case "agent":
		return c.agentService
	case "otp":
		return c.otpService
	case "admin":
		return c.adminService
	case "email":
		return c.emailService
	case "email_ingest":
		return c.emailIngestService
	case "testimonial":
		return c.testimonialService
	case "loan":
		return c.loanService
	default:
		return nil
	}
}

// GetDB returns the shared database handle.
func (c *ServiceContainer) GetDB() *gorm.DB {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.db
}

// GetConfig returns the shared config.
func (c *ServiceContainer) GetConfig() *config.Config {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.config
}
