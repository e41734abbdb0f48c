package services

import (
	"errors"
	"fmt"

	"github.com/Niketh-Putta/Terrawise-Ventures/internal/domain/models"
	"github.com/Niketh-Putta/Terrawise-Ventures/internal/infrastructure/config"
	"github.com/Niketh-Putta/Terrawise-Ventures/utils"
	"gorm.io/gorm"
)

// Agent service errors.
var (
	ErrAgentNotFound      = errors.New("agent not found")
	ErrAgentAlreadyExists = errors.New("agent already registered")
	ErrAgentNotApproved   = errors.New("agent not approved")
	ErrAgentCredentials   = errors.New("invalid phone number or password")
)

// InterfaceAgentService defines the marketing agent registry interface
type InterfaceAgentService interface {
	RegisterAgent(agent *models.MarketingAgent) error
	Authenticate(phone, password string) (*models.MarketingAgent, error)
	GetAgentByID(id uint) (*models.MarketingAgent, error)
	GetAgentByPhone(phone string) (*models.MarketingAgent, error)
	GetAllAgents() ([]models.MarketingAgent, error)
	UpdateAgentStatus(id uint, status string) (*models.MarketingAgent, error)
}

// AgentService manages marketing agent accounts.
type AgentService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewAgentService creates a new agent service
func NewAgentService(db *gorm.DB, cfg *config.Config) InterfaceAgentService {
	return &AgentService{
		DB:     db,
		Config: cfg,
	}
}

// 1 RegisterAgent creates an agent account. Phone numbers are unique and new
// agents are approved immediately.
func (s *AgentService) RegisterAgent(agent *models.MarketingAgent) error {
	var count int64
	if err := s.DB.Model(&models.MarketingAgent{}).Where("phone = ?", agent.Phone).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrAgentAlreadyExists
	}

	hashed, err := utils.HashPassword(agent.Password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	agent.Password = hashed
	if agent.Status == "" {
		agent.Status = models.AgentStatusApproved
	}

	return s.DB.Create(agent).Error
}

// 2 Authenticate checks phone+password and requires an approved account.
// Wrong phone and wrong password return the same error.
func (s *AgentService) Authenticate(phone, password string) (*models.MarketingAgent, error) {
	agent, err := s.GetAgentByPhone(phone)
	if err != nil {
		if errors.Is(err, ErrAgentNotFound) {
			return nil, ErrAgentCredentials
		}
		return nil, err
	}

	if !utils.CheckPasswordHash(password, agent.Password) {
		return nil, ErrAgentCredentials
	}
	if agent.Status != models.AgentStatusApproved {
		return nil, ErrAgentNotApproved
	}
	return agent, nil
}

// 3 GetAgentByID returns a single agent
func (s *AgentService) GetAgentByID(id uint) (*models.MarketingAgent, error) {
	var agent models.MarketingAgent
	if err := s.DB.First(&agent, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAgentNotFound
		}
		return nil, err
	}
	return &agent, nil
}

// 4 GetAgentByPhone returns the agent with the given phone number
func (s *AgentService) GetAgentByPhone(phone string) (*models.MarketingAgent, error) {
	var agent models.MarketingAgent
	if err := s.DB.Where("phone = ?", phone).First(&agent).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAgentNotFound
		}
		return nil, err
	}
	return &agent, nil
}

// 5 GetAllAgents lists every agent, newest first
func (s *AgentService) GetAllAgents() ([]models.MarketingAgent, error) {
	var agents []models.MarketingAgent
	if err := s.DB.Order("created_at DESC").Find(&agents).Error; err != nil {
		return nil, err
	}
	return agents, nil
}

// 6 UpdateAgentStatus switches an agent between approved and inactive
func (s *AgentService) UpdateAgentStatus(id uint, status string) (*models.MarketingAgent, error) {
	agent, err := s.GetAgentByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.DB.Model(agent).Update("status", status).Error; err != nil {
		return nil, err
	}
	agent.Status = status
	return agent, nil
}
