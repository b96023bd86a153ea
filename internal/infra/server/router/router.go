// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/moneyboard/backend/internal/integration/entrypoint/controller"
	"github.com/moneyboard/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	transactionController *controller.TransactionController
	dashboardController   *controller.DashboardController
	recurringController   *controller.RecurringController
	budgetController      *controller.BudgetController
	settingsController    *controller.SettingsController
	rateLimiter           *middleware.RateLimiter
	authMiddleware        *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	transactionController *controller.TransactionController,
	dashboardController *controller.DashboardController,
	recurringController *controller.RecurringController,
	budgetController *controller.BudgetController,
	settingsController *controller.SettingsController,
	rateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:      healthController,
		transactionController: transactionController,
		dashboardController:   dashboardController,
		recurringController:   recurringController,
		budgetController:      budgetController,
		settingsController:    settingsController,
		rateLimiter:           rateLimiter,
		authMiddleware:        authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Default middleware: logger and recovery
	r.engine = gin.Default()

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
	v1 := r.engine.Group("/api/v1")

	if r.rateLimiter != nil {
		v1.Use(r.rateLimiter.Middleware())
	}

	// All API routes require authentication
	if r.authMiddleware == nil {
		return
	}
	v1.Use(r.authMiddleware.Authenticate())

	if r.transactionController != nil {
		transactions := v1.Group("/transactions")
		{
			transactions.GET("", r.transactionController.List)
			transactions.POST("", r.transactionController.Create)
			transactions.GET("/export", r.transactionController.Export)
			transactions.PATCH("/:id", r.transactionController.Update)
			transactions.DELETE("/:id", r.transactionController.Delete)
		}
	}

	if r.dashboardController != nil {
		dashboard := v1.Group("/dashboard")
		{
			dashboard.GET("/overview", r.dashboardController.Overview)
			dashboard.GET("/analytics", r.dashboardController.Analytics)
		}
	}

	if r.recurringController != nil {
		recurring := v1.Group("/recurring-transactions")
		{
			recurring.GET("", r.recurringController.List)
			recurring.POST("", r.recurringController.Create)
			recurring.PATCH("/:id", r.recurringController.Toggle)
		}
	}

	if r.budgetController != nil {
		budgets := v1.Group("/budgets")
		{
			budgets.GET("", r.budgetController.List)
			budgets.POST("", r.budgetController.Create)
			budgets.PATCH("/:id", r.budgetController.Update)
			budgets.DELETE("/:id", r.budgetController.Delete)
		}
	}

	if r.settingsController != nil {
		settings := v1.Group("/settings")
		{
			settings.GET("", r.settingsController.Get)
			settings.PUT("", r.settingsController.Update)
		}
	}
}
