package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"urbanauto/models"
)

// ListServicesHandler returns the service catalog, optionally filtered
// by category.
func ListServicesHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if category := c.Query("category"); category != "" {
			c.JSON(http.StatusOK, gin.H{"services": models.GetServicesByCategory(category)})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"services":   models.Services,
			"categories": models.ServiceCategories,
		})
	}
}

// GetServiceByIDHandler returns a single catalog entry.
func GetServiceByIDHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		svc := models.GetServiceByID(c.Param("id"))
		if svc == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
			return
		}
		c.JSON(http.StatusOK, svc)
	}
}
