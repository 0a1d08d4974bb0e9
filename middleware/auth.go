package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	profileRepo "urbanauto/database/repository/profile"
	"urbanauto/utils"
)

// AuthMiddleware validates the bearer token and resolves the caller's
// profile into the request context.
func AuthMiddleware(profiles profileRepo.ProfileRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		token, err := utils.ValidateToken(tokenString)
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		userID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		profile, err := profiles.GetByID(userID)
		if err != nil || profile == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Account not found"})
			return
		}

		c.Set("userID", profile.ID)
		c.Set("profile", profile)
		c.Next()
	}
}
