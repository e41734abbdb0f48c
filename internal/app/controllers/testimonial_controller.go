package controllers

import (
	"github.com/Niketh-Putta/Terrawise-Ventures/internal/domain/services"
	"github.com/Niketh-Putta/Terrawise-Ventures/internal/domain/services/container"
	"github.com/Niketh-Putta/Terrawise-Ventures/internal/error/response"
	"github.com/gin-gonic/gin"
)

// TestimonialController serves customer testimonials
type TestimonialController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewTestimonialController creates a new testimonial controller
func NewTestimonialController(ctx *gin.Context, container *container.ServiceContainer) *TestimonialController {
	return &TestimonialController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleTestimonialFunc returns a Gin handler for a testimonial controller method
func HandleTestimonialFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewTestimonialController(ctx, container)

		switch method {
		case "getTestimonials":
			controller.GetTestimonials()
		default:
			response.ParamError(ctx, "Invalid method")
		}
	}
}

// 1. GetTestimonials lists every testimonial
// @Summary      List testimonials
// @Tags         Testimonials
// @Produce      json
// @Success      200  {array}   models.Testimonial
// @Failure      500  {object}  map[string]interface{}
// @Router       /testimonials [get]
func (c *TestimonialController) GetTestimonials() {
	testimonialService := c.Container.GetService("testimonial").(services.InterfaceTestimonialService)
	testimonials, err := testimonialService.GetAllTestimonials()
	if err != nil {
		response.ServerError(c.Ctx, "Failed to fetch testimonials")
		return
	}

	response.JSON(c.Ctx, 200, testimonials)
}
