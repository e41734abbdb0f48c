package controllers

import (
	"errors"

	"github.com/Niketh-Putta/Terrawise-Ventures/internal/domain/services"
	"github.com/Niketh-Putta/Terrawise-Ventures/internal/domain/services/container"
	"github.com/Niketh-Putta/Terrawise-Ventures/internal/error/response"
	"github.com/gin-gonic/gin"
)

// LoanController exposes the plot financing EMI calculator
type LoanController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewLoanController creates a new loan controller
func NewLoanController(ctx *gin.Context, container *container.ServiceContainer) *LoanController {
	return &LoanController{
		Ctx:       ctx,
		Container: container,
	}
}

// EMIRequest is the EMI calculation payload
type EMIRequest struct {
	PlotPrice      float64 `json:"plotPrice" binding:"required"`
	DownPaymentPct float64 `json:"downPaymentPct"`
	AnnualRatePct  float64 `json:"annualRatePct"`
	TenureYears    int     `json:"tenureYears" binding:"required"`
}

// HandleLoanFunc returns a Gin handler for a loan controller method
func HandleLoanFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewLoanController(ctx, container)

		switch method {
		case "calculateEMI":
			controller.CalculateEMI()
		default:
			response.ParamError(ctx, "Invalid method")
		}
	}
}

// 1. CalculateEMI computes the monthly instalment for a plot purchase
// @Summary      Calculate EMI
// @Tags         Loan
// @Accept       json
// @Produce      json
// @Success      200  {object}  services.LoanEstimate
// @Failure      400  {object}  map[string]interface{}
// @Router       /loan/emi [post]
func (c *LoanController) CalculateEMI() {
	var req EMIRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.Validation(c.Ctx, err)
		return
	}

	loanService := c.Container.GetService("loan").(services.InterfaceLoanService)
	estimate, err := loanService.Estimate(req.PlotPrice, req.DownPaymentPct, req.AnnualRatePct, req.TenureYears)
	if err != nil {
		if errors.Is(err, services.ErrLoanInput) {
			response.ParamError(c.Ctx, "Invalid loan parameters")
			return
		}
		response.ServerError(c.Ctx, "Failed to calculate EMI")
		return
	}

	response.JSON(c.Ctx, 200, estimate)
}
