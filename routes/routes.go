package routes

import (
	"net/http"
	"time"

	"vetbuddy/handlers"
	"vetbuddy/middleware"
	"vetbuddy/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterSlotRoutes registers the public slot queries and the owner booking endpoint.
func RegisterSlotRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/clinics/:clinicID")
	{
		api.GET("/slots", hb.Availability.GetSlotsHandler)
		api.GET("/slots/validate", hb.Availability.ValidateSlotHandler)
		api.GET("/slots/suggest", hb.Availability.SuggestSlotsHandler)

		api.POST("/bookings", middleware.JWTAuthOwnerMiddleware(), hb.Booking.RequestBookingHandler)
	}
}

// RegisterClinicRoutes registers the authenticated clinic's settings endpoints.
func RegisterClinicRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/clinic")
	{
		api.Use(middleware.JWTAuthClinicMiddleware(hb.ClinicRepo, hb.AuthCache))
		api.GET("/availability", hb.Availability.GetAvailabilitySettingsHandler)
		api.PUT("/availability", hb.Availability.UpdateAvailabilitySettingsHandler)
	}
}

// RegisterHealthRoute reports the last dependency probe.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		status := utils.GetHealthStatus()
		code := http.StatusOK
		if !status.Healthy() {
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{"status": status, "healthy": status.Healthy()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterSlotRoutes(r, hb)
	RegisterClinicRoutes(r, hb)
}
