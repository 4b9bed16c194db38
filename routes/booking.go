package routes

import (
	"github.com/gin-gonic/gin"

	"lexbook/handlers"
)

// RegisterBookingRoutes registers all endpoints for the booking engine.
func RegisterBookingRoutes(r *gin.Engine, h *handlers.BookingHandler) {
	booking := r.Group("/api/booking")
	{
		booking.GET("/availability", h.CheckAvailability)
		booking.GET("/stats", h.GetBookingStats)
		booking.POST("", h.CreateBooking)
		booking.POST("/emergency", h.CreateEmergencyBooking)
		booking.GET("/:id", h.GetBooking)
		booking.PUT("/:id/status", h.UpdateBookingStatus)
	}
}
