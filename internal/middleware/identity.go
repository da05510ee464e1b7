package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "monevo/internal/errors"
)

// UserIDKey is the Gin context key under which the caller's user id is stored.
const UserIDKey = "userID"

// UserHeader is the header carrying the opaque user identifier supplied by
// the chat transport. No format is assumed beyond stability and uniqueness
// per human user; there is no authentication beyond its presence.
const UserHeader = "X-User-ID"

// UserIdentity returns a Gin middleware that requires the user header and
// stores its value in the context for handlers.
func UserIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := strings.TrimSpace(c.GetHeader(UserHeader))
		if userID == "" {
			c.AbortWithStatusJSON(apperrors.ErrMissingUser.StatusCode, gin.H{
				"error": gin.H{
					"code":    apperrors.ErrMissingUser.Code,
					"message": apperrors.ErrMissingUser.Message,
				},
			})
			return
		}
		c.Set(UserIDKey, userID)
		c.Next()
	}
}
