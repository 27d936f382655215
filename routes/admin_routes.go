package routes

import (
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/litteagency/litteflux_backend/controllers"
	"github.com/litteagency/litteflux_backend/middleware"
)

// RegisterAdminRoutes sets up the access manager, system settings, audit
// trail and shared notes. Everything here is administrator-only.
func RegisterAdminRoutes(e *echo.Echo, db *mongo.Client) {
	accessController := controllers.NewAccessController(db)
	settingsController := controllers.NewSettingsController(db)
	noteController := controllers.NewNoteController(db)

	r := e.Group("/api/admin")
	r.Use(middleware.JWTMiddleware())
	r.Use(middleware.RequireAdmin())

	r.GET("/profiles", accessController.GetUsers)
	r.PUT("/profiles/:id", accessController.UpdateUserProfile)

	r.GET("/pre-approved-emails", accessController.GetPreApprovedEmails)
	r.POST("/pre-approved-emails", accessController.AddPreApprovedEmail)
	r.DELETE("/pre-approved-emails/:id", accessController.RemovePreApprovedEmail)

	r.GET("/audit-logs", accessController.GetAuditLogs)

	settings := e.Group("/api/settings")
	settings.Use(middleware.JWTMiddleware())
	settings.Use(middleware.RequireAdmin())
	settings.GET("/split-rules", settingsController.GetSplitRules)
	settings.PUT("/split-rules", settingsController.UpdateSplitRules)

	notes := e.Group("/api/notes")
	notes.Use(middleware.JWTMiddleware())
	notes.Use(middleware.RequireAdmin())
	notes.GET("", noteController.GetNotes)
	notes.POST("", noteController.CreateNote)
	notes.PUT("/:id", noteController.UpdateNote)
	notes.DELETE("/:id", noteController.DeleteNote)
}
