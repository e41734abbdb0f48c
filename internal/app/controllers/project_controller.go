package controllers

import (
	"errors"
	"strconv"

	"github.com/Niketh-Putta/Terrawise-Ventures/internal/domain/services"
	"github.com/Niketh-Putta/Terrawise-Ventures/internal/domain/services/container"
	"github.com/Niketh-Putta/Terrawise-Ventures/internal/error/response"
	"github.com/gin-gonic/gin"
)

// InterfaceProjectController defines the project controller interface
type InterfaceProjectController interface {
	GetProjects()
	GetProject()
}

// ProjectController serves the public project catalog
type ProjectController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewProjectController creates a new project controller
func NewProjectController(ctx *gin.Context, container *container.ServiceContainer) *ProjectController {
	return &ProjectController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleProjectFunc returns a Gin handler for a project controller method
func HandleProjectFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewProjectController(ctx, container)

		switch method {
		case "getProjects":
			controller.GetProjects()
		case "getProject":
			controller.GetProject()
		default:
			response.ParamError(ctx, "Invalid method")
		}
	}
}

// 1. GetProjects lists every project
// @Summary      List projects
// @Description  Returns all land development projects
// @Tags         Projects
// @Produce      json
// @Success      200  {array}   models.Project
// @Failure      500  {object}  map[string]interface{}
// @Router       /projects [get]
func (c *ProjectController) GetProjects() {
	projectService := c.Container.GetService("project").(services.InterfaceProjectService)
	projects, err := projectService.GetAllProjects()
	if err != nil {
		response.ServerError(c.Ctx, "Failed to fetch projects")
		return
	}

	response.JSON(c.Ctx, 200, projects)
}

// 2. GetProject returns a single project by id
// @Summary      Get project
// @Description  Returns one project with full details
// @Tags         Projects
// @Produce      json
// @Param        id path int true "Project ID"
// @Success      200  {object}  models.Project
// @Failure      400  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /projects/{id} [get]
func (c *ProjectController) GetProject() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil || id == 0 {
		response.ParamError(c.Ctx, "Invalid project ID")
		return
	}

	projectService := c.Container.GetService("project").(services.InterfaceProjectService)
	project, err := projectService.GetProjectByID(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
			response.NotFound(c.Ctx, "Project not found")
			return
		}
		response.ServerError(c.Ctx, "Failed to fetch project")
		return
	}

	response.JSON(c.Ctx, 200, project)
}
