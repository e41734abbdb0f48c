package services

import (
	"errors"
	"fmt"

	"github.com/Niketh-Putta/Terrawise-Ventures/internal/domain/models"
	"github.com/Niketh-Putta/Terrawise-Ventures/internal/infrastructure/config"
	"github.com/Niketh-Putta/Terrawise-Ventures/pkg/logger"
	"github.com/Niketh-Putta/Terrawise-Ventures/utils"
	"gorm.io/gorm"
)

// ErrAdminCredentials is returned on a failed admin login.
var ErrAdminCredentials = errors.New("invalid email or password")

// InterfaceAdminService defines the admin account service interface
type InterfaceAdminService interface {
	Authenticate(email, password string) (*models.AdminUser, error)
	GetAdminByID(id uint) (*models.AdminUser, error)
	CreateAdmin(admin *models.AdminUser) error
	EnsureAdminExists() error
}

// AdminService manages back-office accounts.
type AdminService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewAdminService creates a new admin service
func NewAdminService(db *gorm.DB, cfg *config.Config) InterfaceAdminService {
	return &AdminService{
		DB:     db,
		Config: cfg,
	}
}

// 1 Authenticate checks email+password. Wrong email and wrong password
// return the same error.
func (s *AdminService) Authenticate(email, password string) (*models.AdminUser, error) {
	var admin models.AdminUser
	if err := s.DB.Where("email = ?", email).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdminCredentials
		}
		return nil, err
	}

	if !utils.CheckPasswordHash(password, admin.Password) {
		return nil, ErrAdminCredentials
	}
	return &admin, nil
}

// 2 GetAdminByID returns a single admin account
func (s *AdminService) GetAdminByID(id uint) (*models.AdminUser, error) {
	var admin models.AdminUser
	if err := s.DB.First(&admin, id).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

// 3 CreateAdmin creates an admin account with a unique email
func (s *AdminService) CreateAdmin(admin *models.AdminUser) error {
	var count int64
	if err := s.DB.Model(&models.AdminUser{}).Where("email = ?", admin.Email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return errors.New("email already registered")
	}

	hashed, err := utils.HashPassword(admin.Password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	admin.Password = hashed

	return s.DB.Create(admin).Error
}

// 4 EnsureAdminExists bootstraps the default admin account on startup when
// the table is empty. Skipped when no default credentials are configured.
func (s *AdminService) EnsureAdminExists() error {
	var count int64
	if err := s.DB.Model(&models.AdminUser{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	if s.Config.DefaultAdminEmail == "" || s.Config.DefaultAdminPassword == "" {
		logger.Warning("no admin accounts exist and no default admin credentials configured")
		return nil
	}

	admin := &models.AdminUser{
		Email:    s.Config.DefaultAdminEmail,
		Password: s.Config.DefaultAdminPassword,
		FullName: s.Config.DefaultAdminName,
	}
	if err := s.CreateAdmin(admin); err != nil {
		return err
	}
	logger.Info("created default admin account %s", admin.Email)
	return nil
}
