package routes

import (
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/litteagency/litteflux_backend/controllers"
	"github.com/litteagency/litteflux_backend/middleware"
	"github.com/litteagency/litteflux_backend/models"
	"github.com/litteagency/litteflux_backend/websocket"
)

// RegisterLeadRoutes sets up the prospecting pipeline routes. Reads are open
// to any approved account; mutations require administrator role.
func RegisterLeadRoutes(e *echo.Echo, db *mongo.Client, hub *websocket.Hub) {
	leadController := controllers.NewLeadController(db, hub)

	r := e.Group("/api/leads")
	r.Use(middleware.JWTMiddleware())

	r.GET("", leadController.GetLeads)
	r.GET("/:id", leadController.GetLead)

	admin := r.Group("")
	admin.Use(middleware.RequireRole(models.RoleAdmin))
	admin.POST("", leadController.CreateLead)
	admin.PUT("/:id", leadController.UpdateLead)
	admin.PUT("/:id/status", leadController.UpdateLeadStatus)
	admin.DELETE("/:id", leadController.DeleteLead)
}
