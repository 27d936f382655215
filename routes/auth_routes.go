package routes

import (
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/litteagency/litteflux_backend/controllers"
	"github.com/litteagency/litteflux_backend/middleware"
)

// RegisterAuthRoutes sets up authentication and account routes
func RegisterAuthRoutes(e *echo.Echo, db *mongo.Client) {
	authController := controllers.NewAuthController(db)

	public := e.Group("/api/auth")
	public.POST("/signup", authController.Signup)
	public.POST("/login", authController.Login)
	public.POST("/forgot-password", authController.ForgotPassword)
	public.POST("/reset-password", authController.ResetPassword)

	protected := e.Group("/api/auth")
	protected.Use(middleware.JWTMiddleware())
	protected.POST("/logout", authController.Logout)
	protected.GET("/me", authController.GetCurrentUser)
}
