package services

import (
	"errors"
	"time"

	"github.com/Niketh-Putta/Terrawise-Ventures/internal/domain/models"
	"github.com/Niketh-Putta/Terrawise-Ventures/internal/infrastructure/config"
	"github.com/Niketh-Putta/Terrawise-Ventures/pkg/logger"
	"gorm.io/gorm"
)

// ErrProjectNotFound is returned when a project id does not exist.
var ErrProjectNotFound = errors.New("project not found")

const projectCacheTTL = 5 * time.Minute

// InterfaceProjectService defines the project catalog service interface
type InterfaceProjectService interface {
	GetAllProjects() ([]models.Project, error)
	GetProjectByID(id uint) (*models.Project, error)
	CreateProject(project *models.Project) error
	UpdateProject(id uint, updates map[string]interface{}) (*models.Project, error)
	DeleteProject(id uint) error
}

// ProjectService provides access to the land project catalog, with an
// optional Redis read-through cache in front of the database.
type ProjectService struct {
	DB     *gorm.DB
	Config *config.Config
	Cache  InterfaceRedisService
}

// NewProjectService creates a new project service. cache may be nil when
// Redis is not configured; all reads then go straight to the database.
func NewProjectService(db *gorm.DB, cfg *config.Config, cache InterfaceRedisService) InterfaceProjectService {
	return &ProjectService{
		DB:     db,
		Config: cfg,
		Cache:  cache,
	}
}

// 1 GetAllProjects returns every project ordered by id
func (s *ProjectService) GetAllProjects() ([]models.Project, error) {
	if s.Cache != nil {
		if projects, err := s.Cache.GetCachedProjectList(); err == nil {
			return projects, nil
		}
	}

	var projects []models.Project
	if err := s.DB.Order("id").Find(&projects).Error; err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if err := s.Cache.CacheProjectList(projects, projectCacheTTL); err != nil {
			logger.Warning("cache project list: %v", err)
		}
	}
	return projects, nil
}

// 2 GetProjectByID returns a single project
func (s *ProjectService) GetProjectByID(id uint) (*models.Project, error) {
	if s.Cache != nil {
		if project, err := s.Cache.GetCachedProject(id); err == nil {
			return project, nil
		}
	}

	var project models.Project
	if err := s.DB.First(&project, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}

	if s.Cache != nil {
		if err := s.Cache.CacheProject(&project, projectCacheTTL); err != nil {
			logger.Warning("cache project %d: %v", id, err)
		}
	}
	return &project, nil
}

// 3 CreateProject inserts a new project
func (s *ProjectService) CreateProject(project *models.Project) error {
	if err := s.DB.Create(project).Error; err != nil {
		return err
	}
	s.invalidateCache()
	return nil
}

// 4 UpdateProject applies a partial update
func (s *ProjectService) UpdateProject(id uint, updates map[string]interface{}) (*models.Project, error) {
	project, err := s.GetProjectByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.DB.Model(project).Updates(updates).Error; err != nil {
		return nil, err
	}
	s.invalidateCache()
	return project, nil
}

// 5 DeleteProject removes a project
func (s *ProjectService) DeleteProject(id uint) error {
	result := s.DB.Delete(&models.Project{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProjectNotFound
	}
	s.invalidateCache()
	return nil
}

func (s *ProjectService) invalidateCache() {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.InvalidateProjects(); err != nil {
		logger.Warning("invalidate project cache: %v", err)
	}
}
