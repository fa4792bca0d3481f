package middleware

import (
	"strings"

	"telefono-http-service/internal/domain/services"
	"telefono-http-service/internal/error/response"

	"github.com/gin-gonic/gin"
)

// SubjectKey is the context key holding the authenticated token subject
const SubjectKey = "subject"

// extractToken strips the Bearer prefix from the authorization header
func extractToken(authHeader string) string {
	if len(authHeader) > 7 && strings.EqualFold(authHeader[:7], "Bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}
	return ""
}

// Authenticate requires a valid bearer token. With a nil token service every
// request is let through.
func Authenticate(tokens services.InterfaceJWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokens == nil {
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "authorization header is required")
			c.Abort()
			return
		}

		tokenString := extractToken(authHeader)
		if tokenString == "" {
			response.Unauthorized(c, "authorization header must use the Bearer scheme")
			c.Abort()
			return
		}

		claims, err := tokens.ValidateToken(tokenString)
		if err != nil {
			response.Unauthorized(c, "invalid token: "+err.Error())
			c.Abort()
			return
		}

		c.Set(SubjectKey, claims.Subject)
		c.Next()
	}
}
