package controllers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/Niketh-Putta/Terrawise-Ventures/internal/domain/models"
	"github.com/Niketh-Putta/Terrawise-Ventures/internal/domain/services"
	"github.com/Niketh-Putta/Terrawise-Ventures/internal/domain/services/container"
	"github.com/Niketh-Putta/Terrawise-Ventures/internal/error/code"
	"github.com/Niketh-Putta/Terrawise-Ventures/internal/error/response"
	"github.com/Niketh-Putta/Terrawise-Ventures/internal/metrics"
	"github.com/Niketh-Putta/Terrawise-Ventures/pkg/logger"
	"github.com/gin-gonic/gin"
)

// InterfaceAgentController defines the marketing agent controller interface
type InterfaceAgentController interface {
	RegisterAgent()
	LoginAgent()
	SendOTP()
	VerifyOTP()
	GetAgents()
	UpdateAgentStatus()
}

// AgentController handles marketing agent registration and login
type AgentController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAgentController creates a new agent controller
func NewAgentController(ctx *gin.Context, container *container.ServiceContainer) *AgentController {
	return &AgentController{
		Ctx:       ctx,
		Container: container,
	}
}

// RegisterAgentRequest is the agent registration payload
type RegisterAgentRequest struct {
	FullName   string `json:"fullName" binding:"required,min=2"`
	Phone      string `json:"phone" binding:"required,min=10"`
	Email      string `json:"email" binding:"omitempty,email"`
	Password   string `json:"password" binding:"required,min=6"`
	Address    string `json:"address"`
	Experience string `json:"experience"`
}

// AgentLoginRequest is the password login payload
type AgentLoginRequest struct {
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// SendOTPRequest carries the phone number for an OTP challenge
type SendOTPRequest struct {
	Phone string `json:"phone"`
}

// VerifyOTPRequest redeems an OTP challenge
type VerifyOTPRequest struct {
	Phone string `json:"phone"`
	OTP   string `json:"otp"`
}

// UpdateAgentStatusRequest carries the new account status
type UpdateAgentStatusRequest struct {
	Status string `json:"status"`
}

// HandleAgentFunc returns a Gin handler for an agent controller method
func HandleAgentFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAgentController(ctx, container)

		switch method {
		case "registerAgent":
			controller.RegisterAgent()
		case "loginAgent":
			controller.LoginAgent()
		case "sendOTP":
			controller.SendOTP()
		case "verifyOTP":
			controller.VerifyOTP()
		case "getAgents":
			controller.GetAgents()
		case "updateAgentStatus":
			controller.UpdateAgentStatus()
		default:
			response.ParamError(ctx, "Invalid method")
		}
	}
}

// 1. RegisterAgent creates a marketing agent account
// @Summary      Register marketing agent
// @Tags         Agents
// @Accept       json
// @Produce      json
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Router       /marketing-agents [post]
func (c *AgentController) RegisterAgent() {
	var req RegisterAgentRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.Validation(c.Ctx, err)
		return
	}

	agentService := c.Container.GetService("agent").(services.InterfaceAgentService)
	agent := &models.MarketingAgent{
		FullName:   req.FullName,
		Phone:      req.Phone,
		Email:      req.Email,
		Password:   req.Password,
		Address:    req.Address,
		Experience: req.Experience,
	}
	if err := agentService.RegisterAgent(agent); err != nil {
		if errors.Is(err, services.ErrAgentAlreadyExists) {
			response.Message(c.Ctx, code.ErrAgentAlreadyExists, "")
			return
		}
		response.ServerError(c.Ctx, "Failed to register marketing agent")
		return
	}

	response.JSON(c.Ctx, 201, gin.H{
		"message": "Marketing agent registration submitted successfully. We will review your application and contact you within 24 hours.",
		"agent": gin.H{
			"id":       agent.ID,
			"fullName": agent.FullName,
			"email":    agent.Email,
			"status":   agent.Status,
		},
	})
}

// 2. LoginAgent authenticates with phone and password
// @Summary      Agent password login
// @Tags         Agents
// @Accept       json
// @Produce      json
// @Success      200  {object}  models.MarketingAgent
// @Failure      401  {object}  map[string]interface{}
// @Router       /marketing-agents/login [post]
func (c *AgentController) LoginAgent() {
	var req AgentLoginRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.Validation(c.Ctx, err)
		return
	}

	agentService := c.Container.GetService("agent").(services.InterfaceAgentService)
	agent, err := agentService.Authenticate(req.Phone, req.Password)
	if err != nil {
		metrics.RecordAgentLogin(false)
		switch {
		case errors.Is(err, services.ErrAgentCredentials):
			response.Message(c.Ctx, code.ErrAgentCredentials, "")
		case errors.Is(err, services.ErrAgentNotApproved):
			response.Message(c.Ctx, code.ErrAgentNotApproved, "")
		default:
			response.ServerError(c.Ctx, "Failed to login")
		}
		return
	}

	metrics.RecordAgentLogin(true)
	response.JSON(c.Ctx, 200, agent)
}

// 3. SendOTP issues a login code to a registered agent phone. SMS dispatch
// failure is logged but does not fail the request; the code stays redeemable.
// @Summary      Send agent login OTP
// @Tags         Agents
// @Accept       json
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /marketing-agents/send-otp [post]
func (c *AgentController) SendOTP() {
	var req SendOTPRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Phone) == "" {
		response.ParamError(c.Ctx, "Phone number is required")
		return
	}

	agentService := c.Container.GetService("agent").(services.InterfaceAgentService)
	agent, err := agentService.GetAgentByPhone(req.Phone)
	if err != nil {
		if errors.Is(err, services.ErrAgentNotFound) {
			response.Message(c.Ctx, code.ErrAgentNotFound, "")
			return
		}
		response.ServerError(c.Ctx, "Internal server error")
		return
	}
	if agent.Status != models.AgentStatusApproved {
		response.Message(c.Ctx, code.ErrAgentNotApproved, "")
		return
	}

	otpService := c.Container.GetService("otp").(services.InterfaceOTPService)
	session, err := otpService.CreateSession(req.Phone)
	if err != nil {
		response.ServerError(c.Ctx, "Internal server error")
		return
	}
	metrics.RecordOTPGenerated()

	smsService := c.Container.GetService("sms").(services.InterfaceSMSService)
	if err := smsService.SendOTP(req.Phone, session.OTP); err != nil {
		logger.Error("send otp sms to %s: %v", req.Phone, err)
	}

	response.JSON(c.Ctx, 200, gin.H{
		"message":   "OTP sent successfully",
		"phone":     req.Phone,
		"expiresAt": session.ExpiresAt,
	})
}

// 4. VerifyOTP redeems a login code and returns the agent
// @Summary      Verify agent login OTP
// @Tags         Agents
// @Accept       json
// @Produce      json
// @Success      200  {object}  models.MarketingAgent
// @Failure      401  {object}  map[string]interface{}
// @Router       /marketing-agents/verify-otp [post]
func (c *AgentController) VerifyOTP() {
	var req VerifyOTPRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil || req.Phone == "" || req.OTP == "" {
		response.ParamError(c.Ctx, "Phone number and OTP are required")
		return
	}

	otpService := c.Container.GetService("otp").(services.InterfaceOTPService)
	if _, err := otpService.VerifySession(req.Phone, req.OTP); err != nil {
		metrics.RecordOTPVerified(false)
		if errors.Is(err, services.ErrOTPInvalid) {
			response.Message(c.Ctx, code.ErrOTPInvalid, "")
			return
		}
		response.ServerError(c.Ctx, "Internal server error")
		return
	}
	metrics.RecordOTPVerified(true)

	agentService := c.Container.GetService("agent").(services.InterfaceAgentService)
	agent, err := agentService.GetAgentByPhone(req.Phone)
	if err != nil {
		response.ServerError(c.Ctx, "Internal server error")
		return
	}

	response.JSON(c.Ctx, 200, agent)
}

// 5. GetAgents lists every marketing agent for the admin dashboard
// @Summary      List marketing agents
// @Tags         Agents
// @Produce      json
// @Success      200  {array}   models.MarketingAgent
// @Failure      401  {object}  map[string]interface{}
// @Router       /marketing-agents [get]
func (c *AgentController) GetAgents() {
	agentService := c.Container.GetService("agent").(services.InterfaceAgentService)
	agents, err := agentService.GetAllAgents()
	if err != nil {
		response.ServerError(c.Ctx, "Failed to fetch marketing agents")
		return
	}

	response.JSON(c.Ctx, 200, agents)
}

// 6. UpdateAgentStatus switches an agent between approved and inactive
// @Summary      Update agent status
// @Tags         Agents
// @Accept       json
// @Produce      json
// @Param        id path int true "Agent ID"
// @Success      200  {object}  models.MarketingAgent
// @Failure      400  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /marketing-agents/{id}/status [patch]
func (c *AgentController) UpdateAgentStatus() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "Invalid agent ID")
		return
	}

	var req UpdateAgentStatusRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Status) == "" {
		response.ParamError(c.Ctx, "Status is required")
		return
	}

	agentService := c.Container.GetService("agent").(services.InterfaceAgentService)
	agent, err := agentService.UpdateAgentStatus(uint(id), req.Status)
	if err != nil {
		if errors.Is(err, services.ErrAgentNotFound) {
			response.NotFound(c.Ctx, "Agent not found")
			return
		}
		response.ServerError(c.Ctx, "Failed to update agent status")
		return
	}

	response.JSON(c.Ctx, 200, agent)
}
