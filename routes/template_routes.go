package routes

import (
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/litteagency/litteflux_backend/controllers"
	"github.com/litteagency/litteflux_backend/middleware"
	"github.com/litteagency/litteflux_backend/models"
)

// RegisterTemplateRoutes sets up checklist template routes
func RegisterTemplateRoutes(e *echo.Echo, db *mongo.Client) {
	templateController := controllers.NewTemplateController(db)

	r := e.Group("/api/templates")
	r.Use(middleware.JWTMiddleware())

	r.GET("", templateController.GetTemplates)

	admin := r.Group("")
	admin.Use(middleware.RequireRole(models.RoleAdmin))
	admin.POST("", templateController.CreateTemplate)
	admin.PUT("/:id", templateController.UpdateTemplate)
	admin.DELETE("/:id", templateController.DeleteTemplate)
}
