package services

import (
	"testing"

	"github.com/Niketh-Putta/Terrawise-Ventures/internal/domain/models"
	"github.com/Niketh-Putta/Terrawise-Ventures/internal/infrastructure/config"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory database with the full schema migrated.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.Project{},
		&models.Testimonial{},
		&models.Inquiry{},
		&models.SiteVisitEnquiry{},
		&models.ConstructionServiceEnquiry{},
		&models.GeneralEnquiry{},
		&models.MarketingAgent{},
		&models.OTPSession{},
		&models.AdminUser{},
		&models.Email{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

func newTestConfig() *config.Config {
	return &config.Config{
		EnvType:              "TEST",
		DefaultAdminEmail:    "admin@terrawise.com",
		DefaultAdminPassword: "admin123",
		DefaultAdminName:     "Terrawise Admin",
	}
}
