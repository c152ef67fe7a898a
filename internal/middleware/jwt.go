package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Abh2004/Variphi-assignment/internal/service"
	appErrors "github.com/Abh2004/Variphi-assignment/pkg/errors"
	"github.com/Abh2004/Variphi-assignment/pkg/response"
)

// ContextUserKey is the gin context key storing JWT claims.
const ContextUserKey = "currentUser"

// AccessTokenCookie is the cookie used as an alternate token ingress for
// browser clients. The cookie and the bearer header feed the same
// validation path.
const AccessTokenCookie = "access_token"

// JWT protects routes by requiring a valid access token, taken from the
// Authorization header or the access_token cookie.
func JWT(authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := extractToken(c)
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}

		claims, err := authService.ValidateToken(raw)
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}

		c.Set(ContextUserKey, claims)
		c.Next()
	}
}

func extractToken(c *gin.Context) (string, error) {
	header := c.GetHeader("Authorization")
	if header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return "", appErrors.Clone(appErrors.ErrUnauthorized, "invalid authorization header")
		}
		return parts[1], nil
	}

	if cookie, err := c.Cookie(AccessTokenCookie); err == nil && cookie != "" {
		return cookie, nil
	}

	return "", appErrors.Clone(appErrors.ErrUnauthorized, "Not authenticated")
}
