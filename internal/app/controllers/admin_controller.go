package controllers

import (
	"errors"
	"strings"

	"github.com/Niketh-Putta/Terrawise-Ventures/internal/app/middleware"
	"github.com/Niketh-Putta/Terrawise-Ventures/internal/domain/services"
	"github.com/Niketh-Putta/Terrawise-Ventures/internal/domain/services/container"
	"github.com/Niketh-Putta/Terrawise-Ventures/internal/error/response"
	"github.com/Niketh-Putta/Terrawise-Ventures/pkg/logger"
	"github.com/gin-gonic/gin"
)

// InterfaceAdminController defines the admin auth controller interface
type InterfaceAdminController interface {
	Login()
	Logout()
	Me()
}

// AdminController handles back-office session authentication
type AdminController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAdminController creates a new admin controller
func NewAdminController(ctx *gin.Context, container *container.ServiceContainer) *AdminController {
	return &AdminController{
		Ctx:       ctx,
		Container: container,
	}
}

// AdminLoginRequest is the admin login payload
type AdminLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HandleAdminFunc returns a Gin handler for an admin controller method
func HandleAdminFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAdminController(ctx, container)

		switch method {
		case "login":
			controller.Login()
		case "logout":
			controller.Logout()
		case "me":
			controller.Me()
		default:
			response.ParamError(ctx, "Invalid method")
		}
	}
}

// 1. Login authenticates an admin and stores the session cookie
// @Summary      Admin login
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]interface{}
// @Router       /admin/login [post]
func (c *AdminController) Login() {
	var req AdminLoginRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil ||
		strings.TrimSpace(req.Email) == "" || req.Password == "" {
		c.Ctx.JSON(400, gin.H{"error": "Email and password are required"})
		return
	}

	adminService := c.Container.GetService("admin").(services.InterfaceAdminService)
	admin, err := adminService.Authenticate(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrAdminCredentials) {
			response.AuthError(c.Ctx, "Invalid email or password")
			return
		}
		c.Ctx.JSON(500, gin.H{"error": "Login failed"})
		return
	}

	if err := middleware.SetAdminSession(c.Ctx, admin.ID); err != nil {
		logger.Error("save admin session: %v", err)
		c.Ctx.JSON(500, gin.H{"error": "Login failed"})
		return
	}

	response.JSON(c.Ctx, 200, gin.H{
		"id":       admin.ID,
		"email":    admin.Email,
		"fullName": admin.FullName,
	})
}

// 2. Logout destroys the admin session
// @Summary      Admin logout
// @Tags         Admin
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /admin/logout [post]
func (c *AdminController) Logout() {
	if err := middleware.ClearAdminSession(c.Ctx); err != nil {
		c.Ctx.JSON(500, gin.H{"error": "Logout failed"})
		return
	}
	response.JSON(c.Ctx, 200, gin.H{"message": "Logged out successfully"})
}

// 3. Me returns the authenticated admin, or 401 without a session
// @Summary      Current admin
// @Tags         Admin
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]interface{}
// @Router       /admin/me [get]
func (c *AdminController) Me() {
	adminID, ok := middleware.AdminIDFromContext(c.Ctx)
	if !ok {
		response.NotAuthenticated(c.Ctx)
		return
	}

	adminService := c.Container.GetService("admin").(services.InterfaceAdminService)
	admin, err := adminService.GetAdminByID(adminID)
	if err != nil {
		response.NotAuthenticated(c.Ctx)
		return
	}

	response.JSON(c.Ctx, 200, gin.H{
		"id":    admin.ID,
		"email": admin.Email,
	})
}
