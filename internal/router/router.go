// Package router sets up HTTP routes for the API.
package router

import (
	"net/http"

	_ "boardinghouse/swagger" // Import generated swagger docs

	"boardinghouse/internal/authz"
	"boardinghouse/internal/handler"
	"boardinghouse/internal/middleware"
	"boardinghouse/pkg/auth"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Config holds all dependencies needed to set up routes.
type Config struct {
	AuthHandler           *handler.AuthHandler
	UserHandler           *handler.UserHandler
	WalletHandler         *handler.WalletHandler
	ContractHandler       *handler.ContractHandler
	OccupancyHandler      *handler.OccupancyHandler
	InvoiceHandler        *handler.InvoiceHandler
	SettingsHandler       *handler.SettingsHandler
	ServiceRequestHandler *handler.ServiceRequestHandler
	JWTManager            *auth.JWTManager
	Authorizer            authz.Authorizer
}

// Setup creates and configures the Gin router.
func Setup(cfg *Config) *gin.Engine {
	r := gin.Default()
	r.HandleMethodNotAllowed = true

	// Global middleware
	r.Use(middleware.CORS())

	// Swagger docs at /docs
	r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1
	v1 := r.Group("/api/v1")
	{
		// Auth routes (public)
		authRoutes := v1.Group("/auth")
		{
			authRoutes.POST("/signup", cfg.AuthHandler.Signup)
			authRoutes.POST("/login", cfg.AuthHandler.Login)
			authRoutes.POST("/refresh", cfg.AuthHandler.Refresh)
		}

		// Auth routes (protected)
		authProtected := v1.Group("/auth")
		authProtected.Use(middleware.Auth(cfg.JWTManager))
		{
			authProtected.POST("/logout", cfg.AuthHandler.Logout)
		}

		// User routes (protected). Staff manage accounts; each user can read
		// their own record.
		users := v1.Group("/users")
		users.Use(middleware.Auth(cfg.JWTManager))
		{
			users.POST("", middleware.RequireAction(cfg.Authorizer, authz.ActionUserManage), cfg.UserHandler.CreateUser)
			users.GET("", middleware.RequireAction(cfg.Authorizer, authz.ActionUserManage), cfg.UserHandler.GetAllUsers)
			users.GET("/:id", middleware.RequireSelfOrAction(cfg.Authorizer, "id", authz.ActionUserManage), cfg.UserHandler.GetUser)
			users.PUT("/:id", middleware.RequireAction(cfg.Authorizer, authz.ActionUserManage), cfg.UserHandler.UpdateUser)
			users.DELETE("/:id", middleware.RequireAction(cfg.Authorizer, authz.ActionUserManage), cfg.UserHandler.DeleteUser)

			// Wallet routes. Settlement is a staff operation.
			users.GET("/:id/wallet", middleware.RequireSelfOrAction(cfg.Authorizer, "id", authz.ActionWalletView), cfg.WalletHandler.GetWallet)
			users.POST("/:id/wallet/transactions", middleware.RequireSelfOrAction(cfg.Authorizer, "id", authz.ActionWalletTransact), cfg.WalletHandler.CreateTransaction)
			users.PUT("/:id/wallet/transactions", middleware.RequireAction(cfg.Authorizer, authz.ActionWalletSettle), cfg.WalletHandler.SettleTransaction)

			// Settings routes
			settings := users.Group("/:id/settings")
			{
				settings.GET("/home", middleware.RequireSelfOrAction(cfg.Authorizer, "id", authz.ActionSettingsView), cfg.SettingsHandler.GetHomeSettings)
				settings.POST("/home", middleware.RequireSelfOrAction(cfg.Authorizer, "id", authz.ActionSettingsUpdate), cfg.SettingsHandler.CreateHomeSettings)
				settings.PUT("/home", middleware.RequireSelfOrAction(cfg.Authorizer, "id", authz.ActionSettingsUpdate), cfg.SettingsHandler.UpdateHomeSettings)
				settings.GET("/profile", middleware.RequireSelfOrAction(cfg.Authorizer, "id", authz.ActionSettingsView), cfg.SettingsHandler.GetProfileSettings)
				settings.POST("/profile", middleware.RequireSelfOrAction(cfg.Authorizer, "id", authz.ActionSettingsUpdate), cfg.SettingsHandler.CreateProfileSettings)
				settings.PUT("/profile", middleware.RequireSelfOrAction(cfg.Authorizer, "id", authz.ActionSettingsUpdate), cfg.SettingsHandler.UpdateProfileSettings)
				settings.POST("/profile/avatar", middleware.RequireSelfOrAction(cfg.Authorizer, "id", authz.ActionSettingsUpdate), cfg.SettingsHandler.RequestAvatarUpload)
			}
		}

		// Contract routes (staff only)
		contracts := v1.Group("/contracts")
		contracts.Use(middleware.Auth(cfg.JWTManager), middleware.RequireAction(cfg.Authorizer, authz.ActionContractManage))
		{
			contracts.POST("", cfg.ContractHandler.CreateContract)
			contracts.GET("", cfg.ContractHandler.ListContracts)
			contracts.GET("/:id", cfg.ContractHandler.GetContract)
			contracts.PUT("/:id", cfg.ContractHandler.UpdateContract)
			contracts.DELETE("/:id", cfg.ContractHandler.TerminateContract)
		}

		// Occupancy routes (staff only)
		occupancy := v1.Group("/occupancy")
		occupancy.Use(middleware.Auth(cfg.JWTManager), middleware.RequireAction(cfg.Authorizer, authz.ActionOccupancyManage))
		{
			occupancy.POST("", cfg.OccupancyHandler.CreateOccupancy)
			occupancy.GET("", cfg.OccupancyHandler.ListOccupancies)
			occupancy.GET("/:id", cfg.OccupancyHandler.GetOccupancy)
			occupancy.PUT("/:id", cfg.OccupancyHandler.UpdateOccupancy)
			occupancy.DELETE("/:id", cfg.OccupancyHandler.DeleteOccupancy)
		}

		// Reservation shortcut, open to clients
		reservations := v1.Group("/reservations")
		reservations.Use(middleware.Auth(cfg.JWTManager))
		{
			reservations.POST("", middleware.RequireAction(cfg.Authorizer, authz.ActionReservationCreate), cfg.OccupancyHandler.CreateReservation)
		}

		// Billing routes (staff only)
		invoices := v1.Group("/invoices")
		invoices.Use(middleware.Auth(cfg.JWTManager), middleware.RequireAction(cfg.Authorizer, authz.ActionBillingManage))
		{
			invoices.POST("", cfg.InvoiceHandler.CreateInvoice)
			invoices.GET("", cfg.InvoiceHandler.ListInvoices)
			invoices.GET("/:id", cfg.InvoiceHandler.GetInvoice)
			invoices.PUT("/:id", cfg.InvoiceHandler.UpdateInvoice)
			invoices.DELETE("/:id", cfg.InvoiceHandler.VoidInvoice)
		}

		// Service request routes: anyone can open a ticket, staff manage them.
		serviceRequests := v1.Group("/service-requests")
		serviceRequests.Use(middleware.Auth(cfg.JWTManager))
		{
			serviceRequests.POST("", middleware.RequireAction(cfg.Authorizer, authz.ActionServiceRequestCreate), cfg.ServiceRequestHandler.CreateServiceRequest)
			serviceRequests.GET("", middleware.RequireAction(cfg.Authorizer, authz.ActionServiceRequestManage), cfg.ServiceRequestHandler.ListServiceRequests)
			serviceRequests.GET("/:id", middleware.RequireAction(cfg.Authorizer, authz.ActionServiceRequestManage), cfg.ServiceRequestHandler.GetServiceRequest)
			serviceRequests.PUT("/:id", middleware.RequireAction(cfg.Authorizer, authz.ActionServiceRequestManage), cfg.ServiceRequestHandler.UpdateServiceRequest)
			serviceRequests.DELETE("/:id", middleware.RequireAction(cfg.Authorizer, authz.ActionServiceRequestManage), cfg.ServiceRequestHandler.DeleteServiceRequest)
		}

		// Tenant oversight (staff only)
		tenantProfiles := v1.Group("/tenant-profiles")
		tenantProfiles.Use(middleware.Auth(cfg.JWTManager))
		{
			tenantProfiles.GET("", middleware.RequireAction(cfg.Authorizer, authz.ActionTenantProfilesView), cfg.SettingsHandler.TenantProfiles)
		}
	}

	return r
}
