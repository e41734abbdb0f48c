package controllers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/Niketh-Putta/Terrawise-Ventures/internal/domain/models"
	"github.com/Niketh-Putta/Terrawise-Ventures/internal/domain/services"
	"github.com/Niketh-Putta/Terrawise-Ventures/internal/domain/services/container"
	"github.com/Niketh-Putta/Terrawise-Ventures/internal/error/response"
	"github.com/Niketh-Putta/Terrawise-Ventures/internal/metrics"
	"github.com/gin-gonic/gin"
)

// InterfaceInquiryController defines the inquiry controller interface
type InterfaceInquiryController interface {
	CreateInquiry()
	CreateConsultation()
	GetInquiries()
	GetAgentInquiries()
	UpdateLeadStatus()
	AddAgentComment()
}

// InquiryController handles lead submission and lifecycle updates
type InquiryController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewInquiryController creates a new inquiry controller
func NewInquiryController(ctx *gin.Context, container *container.ServiceContainer) *InquiryController {
	return &InquiryController{
		Ctx:       ctx,
		Container: container,
	}
}

// CreateInquiryRequest is the payload for inquiry and consultation submission
type CreateInquiryRequest struct {
	FullName           string `json:"fullName" binding:"required,min=2"`
	Phone              string `json:"phone" binding:"required,min=10"`
	Email              string `json:"email" binding:"omitempty,email"`
	ProjectID          *uint  `json:"projectId"`
	Budget             string `json:"budget"`
	Message            string `json:"message"`
	PrivacyAccepted    bool   `json:"privacyAccepted"`
	MarketingAgentID   *uint  `json:"marketingAgentId"`
	MarketingAgentName string `json:"marketingAgentName"`
}

// UpdateLeadStatusRequest carries the new lead status
type UpdateLeadStatusRequest struct {
	Status string `json:"status"`
}

// AddAgentCommentRequest carries the agent's comment text
type AddAgentCommentRequest struct {
	Comment string `json:"comment"`
}

// HandleInquiryFunc returns a Gin handler for an inquiry controller method
func HandleInquiryFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewInquiryController(ctx, container)

		switch method {
		case "createInquiry":
			controller.CreateInquiry()
		case "createConsultation":
			controller.CreateConsultation()
		case "getInquiries":
			controller.GetInquiries()
		case "getAgentInquiries":
			controller.GetAgentInquiries()
		case "updateLeadStatus":
			controller.UpdateLeadStatus()
		case "addAgentComment":
			controller.AddAgentComment()
		default:
			response.ParamError(ctx, "Invalid method")
		}
	}
}

func (r *CreateInquiryRequest) toModel() *models.Inquiry {
	return &models.Inquiry{
		FullName:           r.FullName,
		Phone:              r.Phone,
		Email:              r.Email,
		ProjectID:          r.ProjectID,
		Budget:             r.Budget,
		Message:            r.Message,
		PrivacyAccepted:    r.PrivacyAccepted,
		MarketingAgentID:   r.MarketingAgentID,
		MarketingAgentName: r.MarketingAgentName,
	}
}

// 1. CreateInquiry submits a new lead
// @Summary      Submit inquiry
// @Description  Creates a lead record from the public inquiry form
// @Tags         Inquiries
// @Accept       json
// @Produce      json
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Router       /inquiries [post]
func (c *InquiryController) CreateInquiry() {
	var req CreateInquiryRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.Validation(c.Ctx, err)
		return
	}

	inquiryService := c.Container.GetService("inquiry").(services.InterfaceInquiryService)
	inquiry := req.toModel()
	if err := inquiryService.CreateInquiry(inquiry); err != nil {
		response.ServerError(c.Ctx, "Failed to submit inquiry")
		return
	}

	metrics.RecordInquiry("inquiry")
	response.JSON(c.Ctx, 201, gin.H{
		"message": "Inquiry submitted successfully. Our team will contact you within 2 hours.",
		"inquiry": inquiry,
	})
}

// 2. CreateConsultation schedules a consultation, stored as a plain lead
// @Summary      Schedule consultation
// @Tags         Inquiries
// @Accept       json
// @Produce      json
// @Success      201  {object}  models.Inquiry
// @Failure      400  {object}  map[string]interface{}
// @Router       /consultations [post]
func (c *InquiryController) CreateConsultation() {
	var req CreateInquiryRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.Validation(c.Ctx, err)
		return
	}

	inquiryService := c.Container.GetService("inquiry").(services.InterfaceInquiryService)
	consultation := req.toModel()
	if err := inquiryService.CreateInquiry(consultation); err != nil {
		response.ServerError(c.Ctx, "Failed to schedule consultation")
		return
	}

	metrics.RecordInquiry("inquiry")
	response.JSON(c.Ctx, 201, consultation)
}

// 3. GetInquiries lists every lead for the admin dashboard
// @Summary      List inquiries
// @Tags         Inquiries
// @Produce      json
// @Success      200  {array}   models.Inquiry
// @Failure      401  {object}  map[string]interface{}
// @Router       /inquiries [get]
func (c *InquiryController) GetInquiries() {
	inquiryService := c.Container.GetService("inquiry").(services.InterfaceInquiryService)
	inquiries, err := inquiryService.GetAllInquiries()
	if err != nil {
		response.ServerError(c.Ctx, "Failed to fetch inquiries")
		return
	}

	response.JSON(c.Ctx, 200, inquiries)
}

// 4. GetAgentInquiries lists the leads attributed to a marketing agent
// @Summary      List agent inquiries
// @Tags         Inquiries
// @Produce      json
// @Param        id path int true "Agent ID"
// @Success      200  {array}   models.InquiryWithProject
// @Failure      400  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /marketing-agents/{id}/inquiries [get]
func (c *InquiryController) GetAgentInquiries() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "Invalid agent ID")
		return
	}

	agentService := c.Container.GetService("agent").(services.InterfaceAgentService)
	agent, err := agentService.GetAgentByID(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrAgentNotFound) {
			response.NotFound(c.Ctx, "Agent not found")
			return
		}
		response.ServerError(c.Ctx, "Failed to fetch agent inquiries")
		return
	}

	inquiryService := c.Container.GetService("inquiry").(services.InterfaceInquiryService)
	inquiries, err := inquiryService.GetInquiriesForAgent(agent)
	if err != nil {
		response.ServerError(c.Ctx, "Failed to fetch agent inquiries")
		return
	}

	response.JSON(c.Ctx, 200, inquiries)
}

// 5. UpdateLeadStatus overwrites the lead status of an inquiry
// @Summary      Update lead status
// @Tags         Inquiries
// @Accept       json
// @Produce      json
// @Param        id path int true "Inquiry ID"
// @Success      200  {object}  models.Inquiry
// @Failure      400  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /inquiries/{id}/status [patch]
func (c *InquiryController) UpdateLeadStatus() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "Invalid inquiry ID")
		return
	}

	var req UpdateLeadStatusRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Status) == "" {
		response.ParamError(c.Ctx, "Status is required")
		return
	}

	inquiryService := c.Container.GetService("inquiry").(services.InterfaceInquiryService)
	inquiry, err := inquiryService.UpdateLeadStatus(uint(id), req.Status)
	if err != nil {
		if errors.Is(err, services.ErrInquiryNotFound) {
			response.NotFound(c.Ctx, "Inquiry not found")
			return
		}
		response.ServerError(c.Ctx, "Failed to update inquiry status")
		return
	}

	response.JSON(c.Ctx, 200, inquiry)
}

// 6. AddAgentComment records an agent's note on a lead
// @Summary      Add agent comment
// @Tags         Inquiries
// @Accept       json
// @Produce      json
// @Param        id path int true "Inquiry ID"
// @Success      200  {object}  models.Inquiry
// @Failure      400  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /inquiries/{id}/comment [patch]
func (c *InquiryController) AddAgentComment() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "Invalid inquiry ID")
		return
	}

	var req AddAgentCommentRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Comment) == "" {
		response.ParamError(c.Ctx, "Comment is required")
		return
	}

	inquiryService := c.Container.GetService("inquiry").(services.InterfaceInquiryService)
	inquiry, err := inquiryService.AddAgentComment(uint(id), req.Comment)
	if err != nil {
		if errors.Is(err, services.ErrInquiryNotFound) {
			response.NotFound(c.Ctx, "Inquiry not found")
			return
		}
		response.ServerError(c.Ctx, "Failed to add agent comment")
		return
	}

	response.JSON(c.Ctx, 200, inquiry)
}
