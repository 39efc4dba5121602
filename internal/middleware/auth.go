package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/brewlog-app/brewlog/internal/services"
)

type AuthMiddleware struct {
	authService *services.AuthService
	testMode    bool
}

func NewAuthMiddleware(authService *services.AuthService, testMode bool) *AuthMiddleware {
	return &AuthMiddleware{
		authService: authService,
		testMode:    testMode,
	}
}

// Optional resolves the caller's identity when a credential is present but
// never rejects the request. Owner-scoped list endpoints rely on this: an
// anonymous caller gets an empty list from the service layer, not an error.
func (m *AuthMiddleware) Optional() gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID, ok := m.resolve(c); ok {
			c.Set("user_id", userID)
		}
		c.Next()
	}
}

// RequireAuth rejects requests without a valid identity.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := m.resolve(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
			c.Abort()
			return
		}
		c.Set("user_id", userID)
		c.Next()
	}
}

func (m *AuthMiddleware) resolve(c *gin.Context) (string, bool) {
	if m.testMode {
		userID := c.GetHeader("X-Test-User")
		return userID, userID != ""
	}

	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", false
	}

	claims, err := m.authService.ValidateToken(parts[1])
	if err != nil {
		return "", false
	}
	return claims.UserID, true
}

// GetUserID returns the authenticated user id, or "" for anonymous callers.
func GetUserID(c *gin.Context) string {
	userID, exists := c.Get("user_id")
	if !exists {
		return ""
	}
	return userID.(string)
}
