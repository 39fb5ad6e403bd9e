// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/equivet/backend/internal/domain/entity"
	"github.com/equivet/backend/internal/integration/entrypoint/controller"
	"github.com/equivet/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine               *gin.Engine
	healthController     *controller.HealthController
	authController       *controller.AuthController
	userController       *controller.UserController
	horseController      *controller.HorseController
	ownerController      *controller.OwnerController
	locationController   *controller.LocationController
	chargeCodeController *controller.ChargeCodeController
	chargeController     *controller.ChargeController
	invoiceController    *controller.InvoiceController
	vetController        *controller.VeterinarianController
	profileController    *controller.CompanyProfileController
	loginRateLimiter     *middleware.RateLimiter
	authMiddleware       *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	userController *controller.UserController,
	horseController *controller.HorseController,
	ownerController *controller.OwnerController,
	locationController *controller.LocationController,
	chargeCodeController *controller.ChargeCodeController,
	chargeController *controller.ChargeController,
	invoiceController *controller.InvoiceController,
	vetController *controller.VeterinarianController,
	profileController *controller.CompanyProfileController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:     healthController,
		authController:       authController,
		userController:       userController,
		horseController:      horseController,
		ownerController:      ownerController,
		locationController:   locationController,
		chargeCodeController: chargeCodeController,
		chargeController:     chargeController,
		invoiceController:    invoiceController,
		vetController:        vetController,
		profileController:    profileController,
		loginRateLimiter:     loginRateLimiter,
		authMiddleware:       authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		// Auth routes
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
				auth.POST("/refresh", r.authController.Refresh)
				auth.POST("/logout", r.authController.Logout)
				auth.POST("/change-password", r.authMiddleware.Authenticate(), r.authController.ChangePassword)
			}
		}

		// User routes (admin only)
		if r.userController != nil && r.authMiddleware != nil {
			users := v1.Group("/users")
			users.Use(r.authMiddleware.Authenticate(), r.authMiddleware.RequireRole(entity.RoleAdmin))
			{
				users.GET("", r.userController.List)
				users.POST("", r.userController.Create)
				users.PATCH("/:id", r.userController.Update)
				users.DELETE("/:id", r.userController.Delete)
			}
		}

		// Horse routes (require authentication)
		if r.horseController != nil && r.authMiddleware != nil {
			horses := v1.Group("/horses")
			horses.Use(r.authMiddleware.Authenticate())
			{
				horses.GET("", r.horseController.List)
				horses.POST("", r.horseController.Create)
				horses.GET("/:id", r.horseController.Get)
				horses.PATCH("/:id", r.horseController.Update)
				horses.DELETE("/:id", r.horseController.Delete)
				horses.PUT("/:id/owners", r.horseController.SetOwners)
				horses.POST("/:id/location", r.horseController.AssignLocation)

				// Charge and invoicing routes (nested under horses)
				if r.chargeController != nil {
					horses.POST("/:id/charges", r.chargeController.AddBatch)
					horses.GET("/:id/charges/pending", r.chargeController.ListPending)
				}
				if r.invoiceController != nil {
					horses.POST("/:id/invoices", r.invoiceController.Generate)
				}
			}
		}

		// Charge transaction routes (require authentication)
		if r.chargeController != nil && r.authMiddleware != nil {
			charges := v1.Group("/charges")
			charges.Use(r.authMiddleware.Authenticate())
			{
				charges.PATCH("/:id", r.chargeController.Update)
				charges.DELETE("/:id", r.chargeController.Delete)
			}
		}

		// Invoice routes (require authentication)
		if r.invoiceController != nil && r.authMiddleware != nil {
			invoices := v1.Group("/invoices")
			invoices.Use(r.authMiddleware.Authenticate())
			{
				invoices.GET("", r.invoiceController.List)
				invoices.GET("/:id", r.invoiceController.Get)
				invoices.POST("/:id/void", r.invoiceController.Void)
			}

			payments := v1.Group("/payments")
			payments.Use(r.authMiddleware.Authenticate())
			{
				payments.POST("", r.invoiceController.RecordPayment)
			}
		}

		// Owner routes (require authentication)
		if r.ownerController != nil && r.authMiddleware != nil {
			owners := v1.Group("/owners")
			owners.Use(r.authMiddleware.Authenticate())
			{
				owners.GET("", r.ownerController.List)
				owners.POST("", r.ownerController.Create)
				owners.GET("/:id", r.ownerController.Get)
				owners.PATCH("/:id", r.ownerController.Update)
			}
		}

		// Location routes (require authentication)
		if r.locationController != nil && r.authMiddleware != nil {
			locations := v1.Group("/locations")
			locations.Use(r.authMiddleware.Authenticate())
			{
				locations.GET("", r.locationController.List)
				locations.POST("", r.locationController.Create)
				locations.PATCH("/:id", r.locationController.Update)
				locations.DELETE("/:id", r.locationController.Delete)
			}
		}

		// Veterinarian reference-data routes (require authentication)
		if r.vetController != nil && r.authMiddleware != nil {
			vets := v1.Group("/veterinarians")
			vets.Use(r.authMiddleware.Authenticate())
			{
				vets.GET("", r.vetController.List)
				vets.POST("", r.vetController.Create)
				vets.GET("/:id", r.vetController.Get)
				vets.PATCH("/:id", r.vetController.Update)
			}
		}

		// Company profile routes (saving requires admin)
		if r.profileController != nil && r.authMiddleware != nil {
			profile := v1.Group("/company-profile")
			profile.Use(r.authMiddleware.Authenticate())
			{
				profile.GET("", r.profileController.Get)
				profile.PUT("", r.authMiddleware.RequireRole(entity.RoleAdmin), r.profileController.Update)
			}
		}

		// Charge code catalog routes (require authentication)
		if r.chargeCodeController != nil && r.authMiddleware != nil {
			chargeCodes := v1.Group("/charge-codes")
			chargeCodes.Use(r.authMiddleware.Authenticate())
			{
				chargeCodes.GET("", r.chargeCodeController.List)
				chargeCodes.POST("", r.chargeCodeController.Create)
				chargeCodes.PATCH("/:id", r.chargeCodeController.Update)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
