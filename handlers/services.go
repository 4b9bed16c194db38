package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"lexbook/catalog"
	"lexbook/models"
	"lexbook/utils"
)

// ServiceHandler serves catalog lookups.
type ServiceHandler struct {
	Catalog catalog.Repository
}

func NewServiceHandler(repo catalog.Repository) *ServiceHandler {
	return &ServiceHandler{Catalog: repo}
}

// ListServices handles GET /api/services, optionally filtered by category.
func (h *ServiceHandler) ListServices(c *gin.Context) {
	if raw := c.Query("category"); raw != "" {
		cat := models.ServiceCategory(raw)
		if !cat.Valid() {
			utils.JSONError(c, http.StatusBadRequest, "unknown category", raw)
			return
		}
		c.JSON(http.StatusOK, gin.H{"services": h.Catalog.GetServicesByCategory(cat)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": h.Catalog.GetAllServices()})
}

// GetService handles GET /api/services/:id.
func (h *ServiceHandler) GetService(c *gin.Context) {
	svc, err := h.Catalog.GetService(c.Param("id"))
	if err != nil {
		if errors.Is(err, catalog.ErrServiceNotFound) {
			utils.JSONError(c, http.StatusNotFound, "unknown service", c.Param("id"))
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "internal", "")
		return
	}
	c.JSON(http.StatusOK, svc)
}

// GetServiceStaff handles GET /api/services/:id/staff.
func (h *ServiceHandler) GetServiceStaff(c *gin.Context) {
	staff, err := h.Catalog.GetAvailableStaff(c.Param("id"))
	if err != nil {
		if errors.Is(err, catalog.ErrServiceNotFound) {
			utils.JSONError(c, http.StatusNotFound, "unknown service", c.Param("id"))
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "internal", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"staff": staff})
}
