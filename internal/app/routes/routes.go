package routes

import (
	"reflect"
	"strings"
	"time"

	"github.com/Niketh-Putta/Terrawise-Ventures/internal/app/controllers"
	"github.com/Niketh-Putta/Terrawise-Ventures/internal/app/middleware"
	"github.com/Niketh-Putta/Terrawise-Ventures/internal/domain/services/container"
	"github.com/Niketh-Putta/Terrawise-Ventures/internal/infrastructure/config"
	"github.com/Niketh-Putta/Terrawise-Ventures/internal/metrics"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

// SetupRouter initializes and returns the configured router
func SetupRouter(db *gorm.DB, cfg *config.Config, redisClient *redis.Client) *gin.Engine {
	r := gin.Default()

	// CORS
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, Accept, Origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Validation errors report json field names, matching the API contract
	registerValidatorTagName()

	// Admin session cookies
	r.Use(sessions.Sessions(cfg.SessionName, middleware.NewSessionStore(cfg.SessionSecret)))

	// Request metrics
	r.Use(metrics.GinMiddleware())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	serviceContainer := container.NewServiceContainer(db, cfg, redisClient)

	registerRoutes(r, serviceContainer)
	return r
}

// registerValidatorTagName makes validator report json tag names instead of
// Go struct field names
func registerValidatorTagName() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// registerRoutes configures all API routes
func registerRoutes(r *gin.Engine, container *container.ServiceContainer) {
	api := r.Group("/api")
	registerPublicRoutes(api, container)
	registerAdminRoutes(api, container)
}

// registerPublicRoutes registers the routes the marketing site calls directly
func registerPublicRoutes(api *gin.RouterGroup, container *container.ServiceContainer) {
	// Per-IP limit: 10 requests per second, bursts of 20
	api.Use(middleware.IPRateLimiter(10, 20))

	// Health checks
	api.GET("/ping", controllers.HandleHealthFunc(container, "ping"))
	api.GET("/health", controllers.HandleHealthFunc(container, "ping"))
	api.GET("/health/status", controllers.HandleHealthFunc(container, "status"))

	// Project catalog, response-cached for a minute
	api.GET("/projects", middleware.Cache(middleware.CacheConfig{Expiration: 1 * time.Minute}), controllers.HandleProjectFunc(container, "getProjects"))
	api.GET("/projects/:id", middleware.Cache(middleware.CacheConfig{Expiration: 1 * time.Minute}), controllers.HandleProjectFunc(container, "getProject"))
	api.GET("/testimonials", middleware.Cache(middleware.CacheConfig{Expiration: 5 * time.Minute}), controllers.HandleTestimonialFunc(container, "getTestimonials"))

	// Lead intake
	api.POST("/inquiries", controllers.HandleInquiryFunc(container, "createInquiry"))
	api.POST("/consultations", controllers.HandleInquiryFunc(container, "createConsultation"))
	api.POST("/enquiries/popup", controllers.HandleEnquiryFunc(container, "createPopupEnquiry"))
	api.POST("/site-visit-enquiries", controllers.HandleEnquiryFunc(container, "createSiteVisitEnquiry"))
	api.POST("/construction-service-enquiries", controllers.HandleEnquiryFunc(container, "createConstructionEnquiry"))
	api.POST("/general-enquiries", controllers.HandleEnquiryFunc(container, "createGeneralEnquiry"))

	// Loan calculator
	api.POST("/loan/emi", controllers.HandleLoanFunc(container, "calculateEMI"))

	// Marketing agents
	api.POST("/marketing-agents", controllers.HandleAgentFunc(container, "registerAgent"))
	api.POST("/marketing-agents/login", controllers.HandleAgentFunc(container, "loginAgent"))
	api.POST("/marketing-agents/send-otp", controllers.HandleAgentFunc(container, "sendOTP"))
	api.POST("/marketing-agents/verify-otp", controllers.HandleAgentFunc(container, "verifyOTP"))
	api.GET("/marketing-agents/:id/inquiries", controllers.HandleInquiryFunc(container, "getAgentInquiries"))

	// Lead lifecycle, driven by the agent dashboard
	api.PATCH("/inquiries/:id/status", controllers.HandleInquiryFunc(container, "updateLeadStatus"))
	api.PATCH("/inquiries/:id/comment", controllers.HandleInquiryFunc(container, "addAgentComment"))

	// Admin session endpoints
	api.POST("/admin/login", controllers.HandleAdminFunc(container, "login"))
	api.POST("/admin/logout", controllers.HandleAdminFunc(container, "logout"))
}

// registerAdminRoutes registers the session-gated back-office routes
func registerAdminRoutes(api *gin.RouterGroup, container *container.ServiceContainer) {
	admin := api.Group("/")
	admin.Use(middleware.RequireAdmin())

	admin.GET("/admin/me", controllers.HandleAdminFunc(container, "me"))

	admin.GET("/inquiries", controllers.HandleInquiryFunc(container, "getInquiries"))
	admin.GET("/site-visit-enquiries", controllers.HandleEnquiryFunc(container, "getSiteVisitEnquiries"))
	admin.GET("/construction-service-enquiries", controllers.HandleEnquiryFunc(container, "getConstructionEnquiries"))
	admin.GET("/general-enquiries", controllers.HandleEnquiryFunc(container, "getGeneralEnquiries"))

	admin.GET("/marketing-agents", controllers.HandleAgentFunc(container, "getAgents"))
	admin.PATCH("/marketing-agents/:id/status", controllers.HandleAgentFunc(container, "updateAgentStatus"))

	admin.GET("/emails", controllers.HandleEmailFunc(container, "getEmails"))
	admin.GET("/emails/unread", controllers.HandleEmailFunc(container, "getUnreadEmails"))
	admin.GET("/emails/:id", controllers.HandleEmailFunc(container, "getEmail"))
	admin.PATCH("/emails/:id/read", controllers.HandleEmailFunc(container, "markEmailRead"))
}
