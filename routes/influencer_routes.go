package routes

import (
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/litteagency/litteflux_backend/controllers"
	"github.com/litteagency/litteflux_backend/middleware"
	"github.com/litteagency/litteflux_backend/models"
)

// RegisterInfluencerRoutes sets up creator profile routes. Self-registration
// stays public so the onboarding form works without a login.
func RegisterInfluencerRoutes(e *echo.Echo, db *mongo.Client) {
	influencerController := controllers.NewInfluencerController(db)

	e.POST("/api/influencers/self-registration", influencerController.CreateInfluencer)

	r := e.Group("/api/influencers")
	r.Use(middleware.JWTMiddleware())

	r.GET("", influencerController.GetInfluencers)
	r.GET("/:id", influencerController.GetInfluencer)
	r.PUT("/:id", influencerController.UpdateInfluencer)
	r.POST("/:id/avatar", influencerController.UploadAvatar)

	admin := r.Group("")
	admin.Use(middleware.RequireRole(models.RoleAdmin))
	admin.POST("", influencerController.CreateInfluencer)
	admin.DELETE("/:id", influencerController.DeleteInfluencer)
}
