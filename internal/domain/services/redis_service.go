package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Niketh-Putta/Terrawise-Ventures/internal/domain/models"
	"github.com/Niketh-Putta/Terrawise-Ventures/internal/infrastructure/config"
	"github.com/go-redis/redis/v8"
)

// InterfaceRedisService defines the Redis cache service interface
type InterfaceRedisService interface {
	Set(key string, value interface{}, expiration time.Duration) error
	Get(key string, dest interface{}) error
	Delete(key string) error
	CacheProject(project *models.Project, expiration time.Duration) error
	GetCachedProject(id uint) (*models.Project, error)
	CacheProjectList(projects []models.Project, expiration time.Duration) error
	GetCachedProjectList() ([]models.Project, error)
	InvalidateProjects() error
}

// RedisService handles Redis operations
type RedisService struct {
	Client *redis.Client
	Ctx    context.Context
}

// NewRedisService creates a new Redis service
func NewRedisService(cfg *config.Config) InterfaceRedisService {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetRedisAddr(),
		Password: "", // No password set
		DB:       cfg.RedisDB,
	})

	ctx := context.Background()

	return &RedisService{
		Client: client,
		Ctx:    ctx,
	}
}

// 1 Set sets a key-value pair in Redis with expiration
func (s *RedisService) Set(key string, value interface{}, expiration time.Duration) error {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return s.Client.Set(s.Ctx, key, jsonValue, expiration).Err()
}

// 2 Get gets a value from Redis by key
func (s *RedisService) Get(key string, dest interface{}) error {
	val, err := s.Client.Get(s.Ctx, key).Result()
	if err != nil {
		return err
	}

	return json.Unmarshal([]byte(val), dest)
}

// 3 Delete deletes a key from Redis
func (s *RedisService) Delete(key string) error {
	return s.Client.Del(s.Ctx, key).Err()
}

// 4 CacheProject caches a single project with expiration
func (s *RedisService) CacheProject(project *models.Project, expiration time.Duration) error {
	key := fmt.Sprintf("project:%d", project.ID)
	return s.Set(key, project, expiration)
}

// 5 GetCachedProject gets a project from cache
func (s *RedisService) GetCachedProject(id uint) (*models.Project, error) {
	var project models.Project
	key := fmt.Sprintf("project:%d", id)
	if err := s.Get(key, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// 6 CacheProjectList caches the full project listing
func (s *RedisService) CacheProjectList(projects []models.Project, expiration time.Duration) error {
	return s.Set("projects:all", projects, expiration)
}

// 7 GetCachedProjectList gets the cached project listing
func (s *RedisService) GetCachedProjectList() ([]models.Project, error) {
	var projects []models.Project
	if err := s.Get("projects:all", &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// 8 InvalidateProjects drops all cached project entries
func (s *RedisService) InvalidateProjects() error {
	keys, err := s.Client.Keys(s.Ctx, "project:*").Result()
	if err != nil {
		return err
	}
	keys = append(keys, "projects:all")
	return s.Client.Del(s.Ctx, keys...).Err()
}
