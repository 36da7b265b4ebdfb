package middleware

import (
	"net/http"
	"strings"

	"FitHub/pkg/context"
	"FitHub/pkg/jwt"
	"FitHub/pkg/response"

	"github.com/gin-gonic/gin"
)

// Auth resolves the caller identity from a Bearer access token and stores
// it on the request context. Every visibility- and existence-gated route
// sits behind this; the services never see unauthenticated callers.
func Auth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Abort(c, http.StatusUnauthorized, "missing Authorization header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Abort(c, http.StatusUnauthorized, "malformed Authorization header")
			return
		}

		claims, err := jwt.ParseToken(secret, "access", parts[1])
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, err.Error())
			return
		}

		c.Set(context.CtxUserID, claims.UserID)
		c.Set(context.CtxUsername, claims.Username)

		c.Next()
	}
}
