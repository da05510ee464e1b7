package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "monevo/internal/errors"
	"monevo/internal/logger"
	"monevo/internal/middleware"
)

// getUserID extracts the opaque transport-supplied user id from the Gin
// context. Returns ErrMissingUser if not present.
func getUserID(c *gin.Context) (string, error) {
	userID, exists := c.Get(middleware.UserIDKey)
	if !exists {
		return "", apperrors.ErrMissingUser
	}
	return userID.(string), nil
}

// respondWithError writes a consistent JSON error response. If the error is an
// *AppError it uses the error's status code, code, and message. Otherwise it
// logs the unexpected error and returns a generic storage apology.
func respondWithError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Internal != nil {
			logger.Get().Errorw("app error",
				"code", appErr.Code,
				"kind", appErr.Kind,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
			)
		}
		c.JSON(appErr.StatusCode, gin.H{
			"error": gin.H{
				"code":    appErr.Code,
				"message": appErr.Message,
			},
		})
		return
	}

	logger.Get().Errorw("unexpected error",
		"error", err.Error(),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
	c.JSON(apperrors.ErrStorage.StatusCode, gin.H{
		"error": gin.H{
			"code":    apperrors.ErrStorage.Code,
			"message": apperrors.ErrStorage.Message,
		},
	})
}

// respondWithResult writes the (ok, message) pair the services produce.
// Business-rule rejections keep their specific message; the client shows it
// either way.
func respondWithResult(c *gin.Context, ok bool, message string) {
	status := http.StatusOK
	if !ok {
		status = http.StatusUnprocessableEntity
	}
	c.JSON(status, gin.H{"ok": ok, "message": message})
}
