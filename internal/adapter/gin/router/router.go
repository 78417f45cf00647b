package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"clinic-console/internal/adapter/gin/handler"
	"clinic-console/internal/adapter/gin/middleware"
	redisclient "clinic-console/pkg/redis"
)

// SetupRouter configures and returns a Gin router with all routes and middleware
func SetupRouter(
	authHandler *handler.AuthHandler,
	publicHandler *handler.PublicHandler,
	adminHandler *handler.AdminHandler,
	guard middleware.SessionChecker,
	rateLimit middleware.RateLimitConfig,
	redisClient *redisclient.Client,
	log *zap.Logger,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware
	router.Use(middleware.Recovery(log))
	router.Use(middleware.RequestLogger(log))
	if redisClient != nil {
		router.Use(middleware.RateLimiter(rateLimit, redisClient.Client))
	}

	// Health check endpoint
	router.GET("/health", publicHandler.Health)

	// Public site surface
	router.POST("/signup", publicHandler.Signup)
	router.POST("/appointments", publicHandler.BookAppointment)
	router.GET("/offers", publicHandler.Offers)
	router.GET("/slider", publicHandler.SliderImages)
	router.GET("/countries", publicHandler.Countries)

	// Session lifecycle
	auth := router.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)
		auth.POST("/logout", authHandler.Logout)
		auth.GET("/me", authHandler.Me)
	}

	// Control panel, admin session required
	admin := router.Group("/admin")
	admin.Use(middleware.SessionGuard(guard, log))
	{
		admin.GET("/dashboard", adminHandler.Dashboard)

		registrants := admin.Group("/registrants")
		{
			registrants.GET("", adminHandler.Registrants)
			registrants.PATCH("/:id/status", adminHandler.UpdateRegistrantStatus)
			registrants.DELETE("/:id", adminHandler.DeleteRegistrant)
		}

		appointments := admin.Group("/appointments")
		{
			appointments.GET("", adminHandler.Appointments)
			appointments.PATCH("/:id/status", adminHandler.UpdateAppointmentStatus)
		}

		offers := admin.Group("/offers")
		{
			offers.GET("", adminHandler.Offers)
			offers.POST("", adminHandler.CreateOffer)
			offers.PUT("/:id", adminHandler.UpdateOffer)
			offers.DELETE("/:id", adminHandler.DeleteOffer)
		}

		slider := admin.Group("/slider")
		{
			slider.GET("", adminHandler.SliderImages)
			slider.POST("", adminHandler.CreateSliderImage)
			slider.PUT("/:id", adminHandler.UpdateSliderImage)
			slider.DELETE("/:id", adminHandler.DeleteSliderImage)
		}
	}

	return router
}
