package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"urbanauto/models"
	"urbanauto/services/session"
)

// GetProfileHandler returns the authenticated caller's profile.
func GetProfileHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		p, exists := c.Get("profile")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			return
		}
		profile, ok := p.(*models.Profile)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid profile in context"})
			return
		}
		c.JSON(http.StatusOK, profile)
	}
}

// UpdateProfileHandler rewrites the mutable profile fields and returns
// the refreshed identity.
func UpdateProfileHandler(store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var req struct {
			Name  string `json:"name"`
			Phone string `json:"phone"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			logger.Error("Invalid profile update request", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		if err := store.UpdateProfile(c.Request.Context(), req.Name, req.Phone); err != nil {
			logger.Error("Profile update failed", zap.Error(err))
			writeAuthError(c, err)
			return
		}
		c.JSON(http.StatusOK, store.Current())
	}
}
