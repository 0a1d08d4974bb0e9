package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"urbanauto/services/identity"
	"urbanauto/services/session"
)

// authStatus maps an authentication failure code to an HTTP status.
func authStatus(code session.Code) int {
	switch code {
	case session.CodeValidation:
		return http.StatusBadRequest
	case session.CodeDuplicateAccount:
		return http.StatusConflict
	case session.CodeInvalidCredentials:
		return http.StatusUnauthorized
	case session.CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func writeAuthError(c *gin.Context, err error) {
	var authErr *session.AuthError
	if errors.As(err, &authErr) {
		c.JSON(authStatus(authErr.Code), gin.H{"error": authErr.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

// SignupHandler registers a new account and signs it in.
func SignupHandler(store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var req struct {
			Name     string `json:"name"`
			Email    string `json:"email"`
			Phone    string `json:"phone"`
			Password string `json:"password"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			logger.Error("Invalid signup request", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		if err := store.Signup(c.Request.Context(), req.Name, req.Email, req.Phone, req.Password); err != nil {
			logger.Error("Signup failed", zap.String("email", req.Email), zap.Error(err))
			writeAuthError(c, err)
			return
		}

		resp := gin.H{"success": true}
		if u := store.Current(); u != nil {
			resp["userId"] = u.ID
		}
		c.JSON(http.StatusCreated, resp)
	}
}

// LoginHandler signs in with email and password and returns the session
// token alongside the resolved identity.
func LoginHandler(store *session.Store, provider identity.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var req struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			logger.Error("Invalid login request", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		if err := store.Login(c.Request.Context(), req.Email, req.Password); err != nil {
			logger.Error("Login failed", zap.String("email", req.Email), zap.Error(err))
			writeAuthError(c, err)
			return
		}

		resp := gin.H{"user": store.Current()}
		if sess, err := provider.GetSession(c.Request.Context()); err == nil && sess != nil {
			resp["token"] = sess.Token
		}
		c.JSON(http.StatusOK, resp)
	}
}

// LogoutHandler ends the active session. Always succeeds from the
// caller's perspective.
func LogoutHandler(store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		store.Logout(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

// SessionHandler reports the current session state and identity.
func SessionHandler(store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		resp := gin.H{"state": store.State().String()}
		if u := store.Current(); u != nil {
			resp["user"] = u
		}
		c.JSON(http.StatusOK, resp)
	}
}
