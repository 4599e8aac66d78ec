package middleware

import "github.com/gin-gonic/gin"

const userIDKey = contextKey("userID")

const authMethodKey = contextKey("authMethod")

const (
	authMethodJWT      = "jwt"
	authMethodAPIToken = "apiToken"
)

// GetUserIDFromContext retrieves the authenticated user ID set by the auth
// middleware. It checks the Gin context first, then the request context.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	if userID, exists := c.Get(string(userIDKey)); exists {
		if id, ok := userID.(string); ok {
			return id, true
		}
	}

	if userID, ok := c.Request.Context().Value(userIDKey).(string); ok {
		return userID, true
	}

	return "", false
}

// GetAuthMethodFromContext reports which authentication scheme satisfied the
// request, if any.
func GetAuthMethodFromContext(c *gin.Context) (string, bool) {
	if method, exists := c.Get(string(authMethodKey)); exists {
		if m, ok := method.(string); ok {
			return m, true
		}
	}
	return "", false
}
