package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/macrodyn/solow_model_app/internal/core/ports/services"
)

const apiTokenHeader = "X-API-Token"

// APITokenAuthMiddleware creates a Gin middleware handler that authenticates
// requests carrying an API token header. Requests without the header fall
// through to the JWT middleware.
func APITokenAuthMiddleware(tokenSvc portssvc.APITokenSvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader(apiTokenHeader)
		if tokenString == "" {
			c.Next()
			return
		}

		logger := GetLoggerFromContext(c)

		user, err := tokenSvc.ValidateToken(c.Request.Context(), tokenString)
		if err != nil {
			logger.Warn("API token validation failed", slog.Any("error", err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired API token"})
			return
		}

		requestLogger := logger.With(slog.String("user_id", user.UserID))

		c.Set(string(userIDKey), user.UserID)
		c.Set(string(authMethodKey), authMethodAPIToken)
		c.Set(string(loggerKey), requestLogger)

		ctx := context.WithValue(c.Request.Context(), userIDKey, user.UserID)
		ctx = context.WithValue(ctx, loggerCtxKey, requestLogger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
