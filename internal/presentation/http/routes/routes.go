package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/leadtrack-api/internal/config"
	"github.com/sangkips/leadtrack-api/internal/presentation/http/handler"
	"github.com/sangkips/leadtrack-api/internal/presentation/http/middleware"
	"github.com/sangkips/leadtrack-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth         *handler.AuthHandler
	Lead         *handler.LeadHandler
	Followup     *handler.FollowupHandler
	LeadLog      *handler.LeadLogHandler
	ImportExport *handler.ImportExportHandler
	Reference    *handler.ReferenceHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager *utils.JWTManager
	Cfg        *config.Config
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		registerAuthRoutes(v1, h)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-user rate limiter
		rateLimiter := middleware.NewUserRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/refresh", h.Auth.RefreshToken)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers) {
	// Auth/Profile routes
	protected.POST("/auth/logout", h.Auth.Logout)
	protected.GET("/profile", h.Auth.GetProfile)

	// Leads
	registerLeadRoutes(protected, h)

	// Followups across leads
	registerFollowupRoutes(protected, h)

	// Audit trail across leads
	registerLeadLogRoutes(protected, h)

	// Divisions, subdivisions, branches, dealers, users
	registerReferenceRoutes(protected, h)
}

func registerLeadRoutes(protected *gin.RouterGroup, h *Handlers) {
	leads := protected.Group("/leads")
	leads.Use(middleware.RequirePermission("manage-leads"))
	{
		leads.GET("", h.Lead.List)
		leads.POST("", h.Lead.Create)
		leads.GET("/assigned", h.Lead.Assigned)
		leads.GET("/customers", h.Lead.Customers)
		leads.GET("/buckets/:bucket", h.Lead.Bucket)
		leads.POST("/import", middleware.RequirePermission("import-leads"), h.ImportExport.Import)
		leads.GET("/export", middleware.RequirePermission("export-leads"), h.ImportExport.Export)
		leads.GET("/:id", h.Lead.Get)
		leads.PUT("/:id", h.Lead.Update)
		leads.POST("/:id/assign", middleware.RequirePermission("assign-leads"), h.Lead.Assign)
		leads.GET("/:id/assignments", h.Lead.Assignments)
		leads.POST("/:id/followups", h.Followup.Schedule)
		leads.GET("/:id/followups", h.Followup.ListByLead)
		leads.POST("/:id/logs", h.LeadLog.Record)
		leads.GET("/:id/logs", h.LeadLog.History)
	}
}

func registerFollowupRoutes(protected *gin.RouterGroup, h *Handlers) {
	followups := protected.Group("/followups")
	followups.Use(middleware.RequirePermission("manage-leads"))
	{
		followups.GET("/:type", h.Followup.ListByType)
	}
}

func registerLeadLogRoutes(protected *gin.RouterGroup, h *Handlers) {
	logs := protected.Group("/leadlogs")
	logs.Use(middleware.RequirePermission("manage-leads"))
	{
		logs.GET("", h.LeadLog.List)
	}
}

func registerReferenceRoutes(protected *gin.RouterGroup, h *Handlers) {
	divisions := protected.Group("/divisions")
	{
		divisions.GET("", h.Reference.ListDivisions)
		divisions.POST("", middleware.RequirePermission("manage-references"), h.Reference.CreateDivision)
		divisions.GET("/:id", h.Reference.GetDivision)
	}

	subdivisions := protected.Group("/subdivisions")
	{
		subdivisions.GET("", h.Reference.ListSubDivisions)
		subdivisions.POST("", middleware.RequirePermission("manage-references"), h.Reference.CreateSubDivision)
	}

	branches := protected.Group("/branches")
	{
		branches.GET("", h.Reference.ListBranches)
		branches.POST("", middleware.RequirePermission("manage-references"), h.Reference.CreateBranch)
	}

	protected.GET("/dealers", h.Reference.ListDealers)

	protected.GET("/users/:id/assignments",
		middleware.RequirePermission("manage-leads"), h.Lead.AssignmentsByUser)

	users := protected.Group("/users")
	users.Use(middleware.RequirePermission("manage-users"))
	{
		users.GET("", h.Reference.ListUsers)
	}

	roles := protected.Group("/roles")
	roles.Use(middleware.RequireRole("super-admin", "admin"))
	{
		roles.GET("", h.Reference.ListRoles)
	}
}
