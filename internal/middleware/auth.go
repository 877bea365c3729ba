package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/arvandy/contacts-backend/internal/logger"
	"github.com/arvandy/contacts-backend/internal/requestdata"
	"github.com/arvandy/contacts-backend/internal/response"
	"github.com/arvandy/contacts-backend/internal/services"
)

type AuthMiddleware struct {
	log         *logger.Logger
	userService services.UserService
}

func NewAuthMiddleware(log *logger.Logger, userService services.UserService) *AuthMiddleware {
	middlewareLog := log.With("middleware", "AuthMiddleware")
	return &AuthMiddleware{log: middlewareLog, userService: userService}
}

// RequireAuth resolves the Authorization header to a user and attaches it to
// the request context. Missing, unknown and stale tokens all short-circuit
// with 401.
func (am *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			response.AbortUnauthorized(c, "Unauthorized")
			return
		}
		user, err := am.userService.Authenticate(c.Request.Context(), token)
		if err != nil {
			response.AbortUnauthorized(c, "Unauthorized")
			return
		}
		ctx := requestdata.WithRequestData(c.Request.Context(), &requestdata.RequestData{
			Token: token,
			User:  user,
		})
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// The API contract sends the raw token in the Authorization header; a
// conventional "Bearer " prefix is tolerated too.
func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if len(authHeader) > 7 && strings.EqualFold(authHeader[:7], "Bearer ") {
		return authHeader[7:]
	}
	return authHeader
}
