package controllers

import (
	"time"

	"github.com/Niketh-Putta/Terrawise-Ventures/internal/domain/services/container"
	"github.com/Niketh-Putta/Terrawise-Ventures/internal/error/response"
	"github.com/Niketh-Putta/Terrawise-Ventures/internal/metrics"
	"github.com/gin-gonic/gin"
)

// HealthController exposes liveness and status endpoints
type HealthController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewHealthController creates a new health controller
func NewHealthController(ctx *gin.Context, container *container.ServiceContainer) *HealthController {
	return &HealthController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleHealthFunc returns a Gin handler for a health controller method
func HandleHealthFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewHealthController(ctx, container)

		switch method {
		case "ping":
			controller.Ping()
		case "status":
			controller.Status()
		default:
			response.ParamError(ctx, "Invalid method")
		}
	}
}

// 1. Ping answers liveness probes
func (c *HealthController) Ping() {
	response.JSON(c.Ctx, 200, gin.H{
		"status":  "healthy",
		"message": "pong",
	})
}

// 2. Status reports database connectivity
func (c *HealthController) Status() {
	db := c.Container.GetDB()
	sqlDB, err := db.DB()
	if err != nil {
		response.JSON(c.Ctx, 500, gin.H{"status": "unhealthy", "error": err.Error()})
		return
	}
	if err := sqlDB.Ping(); err != nil {
		response.JSON(c.Ctx, 500, gin.H{"status": "unhealthy", "error": err.Error()})
		return
	}

	stats := sqlDB.Stats()
	metrics.UpdateDBConnections(stats.InUse, stats.Idle)
	response.JSON(c.Ctx, 200, gin.H{
		"status": "healthy",
		"time":   time.Now().Format(time.RFC3339),
		"database": gin.H{
			"open_connections": stats.OpenConnections,
			"in_use":           stats.InUse,
			"idle":             stats.Idle,
		},
	})
}
