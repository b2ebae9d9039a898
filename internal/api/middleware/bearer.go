package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "csi-remedy.io/remediator/internal/pkg/errors"
)

// BearerAuth returns a Gin middleware that validates a static bearer secret.
// The token is an opaque shared secret, not a signed credential; comparison
// is constant-time so the check does not leak the secret by timing.
func BearerAuth(token string) gin.HandlerFunc {
	expected := []byte(token)

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code":    apperrors.CodeUnauthorized,
				"message": "missing authorization header",
			})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code":    apperrors.CodeUnauthorized,
				"message": "invalid authorization header format",
			})
			return
		}

		if subtle.ConstantTimeCompare([]byte(parts[1]), expected) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code":    apperrors.CodeUnauthorized,
				"message": "invalid bearer token",
			})
			return
		}

		c.Next()
	}
}
