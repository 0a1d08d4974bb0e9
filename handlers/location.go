package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"urbanauto/models"
	"urbanauto/services/location"
)

// ReverseGeocodeHandler resolves a coordinate pair to an address.
func ReverseGeocodeHandler(geocoder location.Geocoder) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
		lon, lonErr := strconv.ParseFloat(c.Query("lon"), 64)
		if latErr != nil || lonErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "lat and lon query parameters are required"})
			return
		}

		addr, err := geocoder.ReverseGeocode(c.Request.Context(), lat, lon)
		if err != nil {
			logger.Error("Reverse geocode failed", zap.Float64("lat", lat), zap.Float64("lon", lon), zap.Error(err))
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to resolve address"})
			return
		}
		addr.Latitude = lat
		addr.Longitude = lon
		c.JSON(http.StatusOK, addr)
	}
}

// ResolveLocationHandler accepts the position fixes a device collected,
// picks the most accurate one, and resolves it to an address. The
// response carries an advisory when even the best fix is too coarse.
func ResolveLocationHandler(geocoder location.Geocoder) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var req struct {
			Samples []models.LocationSample `json:"samples" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			logger.Error("Invalid location resolve request", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		best, advisory := location.SelectBest(req.Samples)
		if best == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "at least one location sample is required"})
			return
		}

		addr, err := geocoder.ReverseGeocode(c.Request.Context(), best.Latitude, best.Longitude)
		if err != nil {
			logger.Error("Reverse geocode failed", zap.Error(err))
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to resolve address"})
			return
		}
		addr.Latitude = best.Latitude
		addr.Longitude = best.Longitude

		result := location.Result{Address: addr, Sample: *best}
		if advisory {
			result.Advisory = location.AdvisoryMessage
		}
		c.JSON(http.StatusOK, result)
	}
}
