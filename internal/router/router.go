package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"labelcheck/internal/domain"
	"labelcheck/internal/handler"
	"labelcheck/internal/middleware"
	"labelcheck/internal/service"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	corsOrigins []string,
	authSvc service.AuthService,
	authH *handler.AuthHandler,
	checkH *handler.CheckHandler,
	recordH *handler.RecordHandler,
	complaintH *handler.ComplaintHandler,
	userH *handler.UserHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(corsOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	// API documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/register", authH.Register)
	auth.POST("/login", authH.Login)
	auth.POST("/refresh", authH.RefreshToken)

	// Protected routes - require valid JWT
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authSvc))

	protected.GET("/auth/me", authH.Me)

	// Compliance checks
	checks := protected.Group("/checks")
	checks.POST("/text", checkH.CheckText)
	checks.POST("/image", checkH.CheckImage)
	checks.POST("/url", checkH.CheckURL)
	checks.POST("/barcode", checkH.CheckBarcode)
	checks.POST("/barcode-image", checkH.CheckBarcodeImage)

	// Persisted records and exports
	records := protected.Group("/records")
	records.GET("", recordH.List)
	records.GET("/export/csv", recordH.ExportCSV)
	records.GET("/export/xlsx", recordH.ExportXLSX)
	records.GET("/:id", recordH.GetByID)
	records.GET("/:id/image", recordH.GetImageURL)

	// Consumer complaints
	complaints := protected.Group("/complaints")
	complaints.POST("", complaintH.File)
	complaints.GET("", complaintH.List)
	complaints.GET("/:id", complaintH.GetByID)
	complaints.PATCH("/:id/status", middleware.RequireRole(domain.RoleOfficer), complaintH.UpdateStatus)

	// User management
	users := protected.Group("/users")
	users.POST("", middleware.RequireRole(domain.RoleOfficer), userH.Create)
	users.GET("", middleware.RequireRole(domain.RoleOfficer), userH.List)
	users.GET("/:id", userH.GetByID)
	users.PUT("/:id", userH.Update)
	users.DELETE("/:id", middleware.RequireRole(domain.RoleOfficer), userH.Delete)

	return r
}
