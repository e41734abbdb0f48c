package controllers

import (
	"errors"
	"strconv"

	"github.com/Niketh-Putta/Terrawise-Ventures/internal/domain/services"
	"github.com/Niketh-Putta/Terrawise-Ventures/internal/domain/services/container"
	"github.com/Niketh-Putta/Terrawise-Ventures/internal/error/response"
	"github.com/gin-gonic/gin"
)

// InterfaceEmailController defines the inbox controller interface
type InterfaceEmailController interface {
	GetEmails()
	GetUnreadEmails()
	GetEmail()
	MarkEmailRead()
}

// EmailController serves the ingested inbox to the admin dashboard
type EmailController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewEmailController creates a new email controller
func NewEmailController(ctx *gin.Context, container *container.ServiceContainer) *EmailController {
	return &EmailController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleEmailFunc returns a Gin handler for an email controller method
func HandleEmailFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewEmailController(ctx, container)

		switch method {
		case "getEmails":
			controller.GetEmails()
		case "getUnreadEmails":
			controller.GetUnreadEmails()
		case "getEmail":
			controller.GetEmail()
		case "markEmailRead":
			controller.MarkEmailRead()
		default:
			response.ParamError(ctx, "Invalid method")
		}
	}
}

// 1. GetEmails lists every stored email
// @Summary      List emails
// @Tags         Emails
// @Produce      json
// @Success      200  {array}   models.Email
// @Failure      401  {object}  map[string]interface{}
// @Router       /emails [get]
func (c *EmailController) GetEmails() {
	emailService := c.Container.GetService("email").(services.InterfaceEmailService)
	emails, err := emailService.GetAllEmails()
	if err != nil {
		response.ServerError(c.Ctx, "Failed to fetch emails")
		return
	}

	response.JSON(c.Ctx, 200, emails)
}

// 2. GetUnreadEmails lists unread emails
// @Summary      List unread emails
// @Tags         Emails
// @Produce      json
// @Success      200  {array}   models.Email
// @Failure      401  {object}  map[string]interface{}
// @Router       /emails/unread [get]
func (c *EmailController) GetUnreadEmails() {
	emailService := c.Container.GetService("email").(services.InterfaceEmailService)
	emails, err := emailService.GetUnreadEmails()
	if err != nil {
		response.ServerError(c.Ctx, "Failed to fetch unread emails")
		return
	}

	response.JSON(c.Ctx, 200, emails)
}

// 3. GetEmail returns one stored email
// @Summary      Get email
// @Tags         Emails
// @Produce      json
// @Param        id path int true "Email ID"
// @Success      200  {object}  models.Email
// @Failure      400  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /emails/{id} [get]
func (c *EmailController) GetEmail() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "Invalid email ID")
		return
	}

	emailService := c.Container.GetService("email").(services.InterfaceEmailService)
	email, err := emailService.GetEmailByID(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrEmailNotFound) {
			response.NotFound(c.Ctx, "Email not found")
			return
		}
		response.ServerError(c.Ctx, "Failed to fetch email")
		return
	}

	response.JSON(c.Ctx, 200, email)
}

// 4. MarkEmailRead flags an email as read
// @Summary      Mark email read
// @Tags         Emails
// @Produce      json
// @Param        id path int true "Email ID"
// @Success      200  {object}  models.Email
// @Failure      400  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /emails/{id}/read [patch]
func (c *EmailController) MarkEmailRead() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "Invalid email ID")
		return
	}

	emailService := c.Container.GetService("email").(services.InterfaceEmailService)
	email, err := emailService.MarkAsRead(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrEmailNotFound) {
			response.NotFound(c.Ctx, "Email not found")
			return
		}
		response.ServerError(c.Ctx, "Failed to update email")
		return
	}

	response.JSON(c.Ctx, 200, email)
}
