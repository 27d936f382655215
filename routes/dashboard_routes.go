package routes

import (
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/litteagency/litteflux_backend/controllers"
	"github.com/litteagency/litteflux_backend/middleware"
	"github.com/litteagency/litteflux_backend/models"
)

// RegisterDashboardRoutes sets up the home screen aggregates and the finance
// views.
func RegisterDashboardRoutes(e *echo.Echo, db *mongo.Client) {
	dashboardController := controllers.NewDashboardController(db)
	financialController := controllers.NewFinancialController(db)

	r := e.Group("/api/dashboard")
	r.Use(middleware.JWTMiddleware())
	r.GET("/summary", dashboardController.GetStats)
	r.GET("/deadlines", dashboardController.GetDeadlines)

	finance := e.Group("/api/finance")
	finance.Use(middleware.JWTMiddleware())
	finance.Use(middleware.RequireRole(models.RoleAdmin))
	finance.GET("/summary", financialController.GetSummary)
	finance.GET("/split", financialController.GetSplitBreakdown)
}
