package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"lexbook/handlers"
)

// RegisterServiceRoutes registers catalog endpoints.
func RegisterServiceRoutes(r *gin.Engine, h *handlers.ServiceHandler) {
	api := r.Group("/api/services")
	{
		api.GET("", h.ListServices)
		api.GET("/:id", h.GetService)
		api.GET("/:id/staff", h.GetServiceStaff)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, bh *handlers.BookingHandler, sh *handlers.ServiceHandler) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterBookingRoutes(r, bh)
	RegisterServiceRoutes(r, sh)
}
