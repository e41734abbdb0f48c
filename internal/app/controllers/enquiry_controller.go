package controllers

import (
	"github.com/Niketh-Putta/Terrawise-Ventures/internal/domain/models"
	"github.com/Niketh-Putta/Terrawise-Ventures/internal/domain/services"
	"github.com/Niketh-Putta/Terrawise-Ventures/internal/domain/services/container"
	"github.com/Niketh-Putta/Terrawise-Ventures/internal/error/response"
	"github.com/Niketh-Putta/Terrawise-Ventures/internal/metrics"
	"github.com/gin-gonic/gin"
)

// InterfaceEnquiryController defines the enquiry controller interface
type InterfaceEnquiryController interface {
	CreateSiteVisitEnquiry()
	CreatePopupEnquiry()
	CreateConstructionEnquiry()
	CreateGeneralEnquiry()
	GetSiteVisitEnquiries()
	GetConstructionEnquiries()
	GetGeneralEnquiries()
}

// EnquiryController handles the public enquiry forms
type EnquiryController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewEnquiryController creates a new enquiry controller
func NewEnquiryController(ctx *gin.Context, container *container.ServiceContainer) *EnquiryController {
	return &EnquiryController{
		Ctx:       ctx,
		Container: container,
	}
}

// CreateSiteVisitEnquiryRequest is the site visit form payload. The popup
// form posts the same shape without a preferred date.
type CreateSiteVisitEnquiryRequest struct {
	FullName           string `json:"fullName" binding:"required,min=2"`
	Phone              string `json:"phone" binding:"required,min=10"`
	Email              string `json:"email" binding:"omitempty,email"`
	ProjectID          *uint  `json:"projectId"`
	PreferredDate      string `json:"preferredDate"`
	Message            string `json:"message"`
	PrivacyAccepted    bool   `json:"privacyAccepted"`
	MarketingAgentID   *uint  `json:"marketingAgentId"`
	MarketingAgentName string `json:"marketingAgentName"`
}

// CreateConstructionEnquiryRequest is the construction service form payload
type CreateConstructionEnquiryRequest struct {
	FullName           string `json:"fullName" binding:"required,min=2"`
	Phone              string `json:"phone" binding:"required,min=10"`
	Email              string `json:"email" binding:"omitempty,email"`
	ServiceType        string `json:"serviceType" binding:"required"`
	PlotSize           string `json:"plotSize"`
	Budget             string `json:"budget"`
	Message            string `json:"message"`
	PrivacyAccepted    bool   `json:"privacyAccepted"`
	MarketingAgentID   *uint  `json:"marketingAgentId"`
	MarketingAgentName string `json:"marketingAgentName"`
}

// CreateGeneralEnquiryRequest is the general contact form payload
type CreateGeneralEnquiryRequest struct {
	FullName           string `json:"fullName" binding:"required,min=2"`
	Phone              string `json:"phone" binding:"required,min=10"`
	Email              string `json:"email" binding:"omitempty,email"`
	Subject            string `json:"subject"`
	Message            string `json:"message"`
	PrivacyAccepted    bool   `json:"privacyAccepted"`
	MarketingAgentID   *uint  `json:"marketingAgentId"`
	MarketingAgentName string `json:"marketingAgentName"`
}

// HandleEnquiryFunc returns a Gin handler for an enquiry controller method
func HandleEnquiryFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewEnquiryController(ctx, container)

		switch method {
		case "createSiteVisitEnquiry":
			controller.CreateSiteVisitEnquiry()
		case "createPopupEnquiry":
			controller.CreatePopupEnquiry()
		case "createConstructionEnquiry":
			controller.CreateConstructionEnquiry()
		case "createGeneralEnquiry":
			controller.CreateGeneralEnquiry()
		case "getSiteVisitEnquiries":
			controller.GetSiteVisitEnquiries()
		case "getConstructionEnquiries":
			controller.GetConstructionEnquiries()
		case "getGeneralEnquiries":
			controller.GetGeneralEnquiries()
		default:
			response.ParamError(ctx, "Invalid method")
		}
	}
}

func (r *CreateSiteVisitEnquiryRequest) toModel() *models.SiteVisitEnquiry {
	return &models.SiteVisitEnquiry{
		FullName:           r.FullName,
		Phone:              r.Phone,
		Email:              r.Email,
		ProjectID:          r.ProjectID,
		PreferredDate:      r.PreferredDate,
		Message:            r.Message,
		PrivacyAccepted:    r.PrivacyAccepted,
		MarketingAgentID:   r.MarketingAgentID,
		MarketingAgentName: r.MarketingAgentName,
	}
}

// 1. CreateSiteVisitEnquiry submits a site visit request
// @Summary      Submit site visit enquiry
// @Tags         Enquiries
// @Accept       json
// @Produce      json
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Router       /site-visit-enquiries [post]
func (c *EnquiryController) CreateSiteVisitEnquiry() {
	var req CreateSiteVisitEnquiryRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.Validation(c.Ctx, err)
		return
	}

	enquiryService := c.Container.GetService("enquiry").(services.InterfaceEnquiryService)
	enquiry := req.toModel()
	if err := enquiryService.CreateSiteVisitEnquiry(enquiry); err != nil {
		response.ServerError(c.Ctx, "Failed to create site visit enquiry")
		return
	}

	metrics.RecordInquiry("site_visit")
	response.JSON(c.Ctx, 201, gin.H{
		"message": "Site visit enquiry submitted successfully. We'll contact you to schedule your visit.",
		"enquiry": enquiry,
	})
}

// 2. CreatePopupEnquiry submits the simplified popup form, stored as a site
// visit enquiry with no preferred date
// @Summary      Submit popup enquiry
// @Tags         Enquiries
// @Accept       json
// @Produce      json
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Router       /enquiries/popup [post]
func (c *EnquiryController) CreatePopupEnquiry() {
	var req CreateSiteVisitEnquiryRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.Validation(c.Ctx, err)
		return
	}

	enquiryService := c.Container.GetService("enquiry").(services.InterfaceEnquiryService)
	enquiry := req.toModel()
	if err := enquiryService.CreateSiteVisitEnquiry(enquiry); err != nil {
		response.ServerError(c.Ctx, "Failed to create inquiry")
		return
	}

	metrics.RecordInquiry("site_visit")
	response.JSON(c.Ctx, 201, gin.H{
		"message": "Enquiry submitted successfully. Our team will contact you soon.",
		"inquiry": enquiry,
	})
}

// 3. CreateConstructionEnquiry submits a construction service request
// @Summary      Submit construction service enquiry
// @Tags         Enquiries
// @Accept       json
// @Produce      json
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Router       /construction-service-enquiries [post]
func (c *EnquiryController) CreateConstructionEnquiry() {
	var req CreateConstructionEnquiryRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.Validation(c.Ctx, err)
		return
	}

	enquiryService := c.Container.GetService("enquiry").(services.InterfaceEnquiryService)
	enquiry := &models.ConstructionServiceEnquiry{
		FullName:           req.FullName,
		Phone:              req.Phone,
		Email:              req.Email,
		ServiceType:        req.ServiceType,
		PlotSize:           req.PlotSize,
		Budget:             req.Budget,
		Message:            req.Message,
		PrivacyAccepted:    req.PrivacyAccepted,
		MarketingAgentID:   req.MarketingAgentID,
		MarketingAgentName: req.MarketingAgentName,
	}
	if err := enquiryService.CreateConstructionEnquiry(enquiry); err != nil {
		response.ServerError(c.Ctx, "Failed to create construction service enquiry")
		return
	}

	metrics.RecordInquiry("construction")
	response.JSON(c.Ctx, 201, gin.H{
		"message": "Construction service enquiry submitted successfully. Our construction team will contact you soon.",
		"enquiry": enquiry,
	})
}

// 4. CreateGeneralEnquiry submits a general contact message
// @Summary      Submit general enquiry
// @Tags         Enquiries
// @Accept       json
// @Produce      json
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Router       /general-enquiries [post]
func (c *EnquiryController) CreateGeneralEnquiry() {
	var req CreateGeneralEnquiryRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.Validation(c.Ctx, err)
		return
	}

	enquiryService := c.Container.GetService("enquiry").(services.InterfaceEnquiryService)
	enquiry := &models.GeneralEnquiry{
		FullName:           req.FullName,
		Phone:              req.Phone,
		Email:              req.Email,
		Subject:            req.Subject,
		Message:            req.Message,
		PrivacyAccepted:    req.PrivacyAccepted,
		MarketingAgentID:   req.MarketingAgentID,
		MarketingAgentName: req.MarketingAgentName,
	}
	if err := enquiryService.CreateGeneralEnquiry(enquiry); err != nil {
		response.ServerError(c.Ctx, "Failed to create general enquiry")
		return
	}

	metrics.RecordInquiry("general")
	response.JSON(c.Ctx, 201, gin.H{
		"message": "Enquiry submitted successfully. Our team will contact you soon.",
		"enquiry": enquiry,
	})
}

// 5. GetSiteVisitEnquiries lists site visit enquiries
// @Summary      List site visit enquiries
// @Tags         Enquiries
// @Produce      json
// @Success      200  {array}   models.SiteVisitEnquiry
// @Failure      401  {object}  map[string]interface{}
// @Router       /site-visit-enquiries [get]
func (c *EnquiryController) GetSiteVisitEnquiries() {
	enquiryService := c.Container.GetService("enquiry").(services.InterfaceEnquiryService)
	enquiries, err := enquiryService.GetAllSiteVisitEnquiries()
	if err != nil {
		response.ServerError(c.Ctx, "Failed to fetch site visit enquiries")
		return
	}

	response.JSON(c.Ctx, 200, enquiries)
}

// 6. GetConstructionEnquiries lists construction service enquiries
// @Summary      List construction service enquiries
// @Tags         Enquiries
// @Produce      json
// @Success      200  {array}   models.ConstructionServiceEnquiry
// @Failure      401  {object}  map[string]interface{}
// @Router       /construction-service-enquiries [get]
func (c *EnquiryController) GetConstructionEnquiries() {
	enquiryService := c.Container.GetService("enquiry").(services.InterfaceEnquiryService)
	enquiries, err := enquiryService.GetAllConstructionEnquiries()
	if err != nil {
		response.ServerError(c.Ctx, "Failed to fetch construction service enquiries")
		return
	}

	response.JSON(c.Ctx, 200, enquiries)
}

// 7. GetGeneralEnquiries lists general enquiries
// @Summary      List general enquiries
// @Tags         Enquiries
// @Produce      json
// @Success      200  {array}   models.GeneralEnquiry
// @Failure      401  {object}  map[string]interface{}
// @Router       /general-enquiries [get]
func (c *EnquiryController) GetGeneralEnquiries() {
	enquiryService := c.Container.GetService("enquiry").(services.InterfaceEnquiryService)
	enquiries, err := enquiryService.GetAllGeneralEnquiries()
	if err != nil {
		response.ServerError(c.Ctx, "Failed to fetch general enquiries")
		return
	}

	response.JSON(c.Ctx, 200, enquiries)
}
