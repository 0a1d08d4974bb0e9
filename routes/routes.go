package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"urbanauto/handlers"
	"urbanauto/middleware"
)

// RegisterAuthRoutes registers signup, login, logout, and session endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/signup", hb.SignupHandler)
		api.POST("/login", hb.LoginHandler)
		api.POST("/logout", hb.LogoutHandler)
		api.GET("/session", hb.SessionHandler)
	}
}

// RegisterProfileRoutes registers the authenticated profile endpoints.
func RegisterProfileRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/profile")
	{
		api.Use(middleware.AuthMiddleware(hb.ProfileRepo))
		api.GET("", hb.GetProfileHandler)
		api.PUT("", hb.UpdateProfileHandler)
	}
}

// RegisterBookingRoutes registers the booking endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.AuthMiddleware(hb.ProfileRepo))
		api.GET("", hb.ListBookingsHandler)
		api.POST("", hb.CreateBookingHandler)
		api.DELETE("/:id", hb.CancelBookingHandler)
		api.PATCH("/:id/reschedule", hb.RescheduleBookingHandler)
	}
}

// RegisterServiceRoutes registers the public service catalog endpoints.
func RegisterServiceRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/services")
	{
		api.GET("", hb.ListServicesHandler)
		api.GET("/:id", hb.GetServiceByIDHandler)
	}
}

// RegisterLocationRoutes registers the geocoding endpoints.
func RegisterLocationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/location")
	{
		api.GET("/reverse-geocode", hb.ReverseGeocodeHandler)
		api.POST("/resolve", hb.ResolveLocationHandler)
	}
}

// RegisterNotificationRoutes registers device registration and the
// broadcast endpoints.
func RegisterNotificationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/notifications")
	{
		api.POST("/devices", hb.RegisterDeviceHandler)

		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(hb.ProfileRepo))
		protected.POST("/broadcast", hb.BroadcastHandler)
		protected.POST("/broadcast/async", hb.BroadcastAsyncHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Urban Auto"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterAuthRoutes(r, hb)
	RegisterProfileRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterServiceRoutes(r, hb)
	RegisterLocationRoutes(r, hb)
	RegisterNotificationRoutes(r, hb)
	RegisterHealthRoute(r)
}
