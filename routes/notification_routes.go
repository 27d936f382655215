package routes

import (
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/litteagency/litteflux_backend/controllers"
	"github.com/litteagency/litteflux_backend/middleware"
	ws "github.com/litteagency/litteflux_backend/websocket"
)

// RegisterNotificationRoutes sets up the notification feed and the live
// websocket stream.
func RegisterNotificationRoutes(e *echo.Echo, db *mongo.Client, hub *ws.Hub) {
	notificationController := controllers.NewNotificationController(db, hub)

	r := e.Group("/api/notifications")
	r.Use(middleware.JWTMiddleware())

	r.GET("", notificationController.GetNotifications)
	r.PUT("/:id/read", notificationController.MarkAsRead)
	r.PUT("/read-all", notificationController.MarkAllAsRead)

	stream := e.Group("/api/ws")
	stream.Use(middleware.JWTMiddleware())
	stream.GET("", notificationController.HandleWebSocket)
}
