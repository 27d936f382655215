package routes

import (
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/litteagency/litteflux_backend/controllers"
	"github.com/litteagency/litteflux_backend/middleware"
	"github.com/litteagency/litteflux_backend/models"
)

// RegisterCampaignRoutes sets up campaign board routes
func RegisterCampaignRoutes(e *echo.Echo, db *mongo.Client) {
	campaignController := controllers.NewCampaignController(db)

	r := e.Group("/api/campaigns")
	r.Use(middleware.JWTMiddleware())

	r.GET("", campaignController.GetCampaigns)
	r.GET("/:id", campaignController.GetCampaign)

	admin := r.Group("")
	admin.Use(middleware.RequireRole(models.RoleAdmin))
	admin.POST("", campaignController.CreateCampaign)
	admin.PUT("/:id", campaignController.UpdateCampaign)
	admin.POST("/:id/timeline", campaignController.AddTimelineEntry)
	admin.DELETE("/:id", campaignController.DeleteCampaign)
}
