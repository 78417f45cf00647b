package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "clinic-console/pkg/errors"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string   `json:"error"`
	Message string   `json:"message,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

// handleError maps application errors to HTTP status codes. Validation
// errors carry their full message list so the form can show every
// violation at once.
func handleError(c *gin.Context, log *zap.Logger, err error) {
	status := apperrors.StatusOf(err)

	if verr, ok := err.(*apperrors.ValidationError); ok {
		c.JSON(status, ErrorResponse{
			Error:  "validation_error",
			Errors: verr.Messages,
		})
		return
	}

	kind := "internal_error"
	switch err.(type) {
	case *apperrors.NotFoundError:
		kind = "not_found"
	case *apperrors.AuthError:
		kind = "unauthorized"
	case *apperrors.UpstreamError:
		kind = "backend_rejected"
	case *apperrors.UnavailableError:
		kind = "backend_unavailable"
	}

	if status >= 500 {
		log.Error("request failed", zap.Int("status", status), zap.Error(err))
	} else {
		log.Warn("request rejected", zap.Int("status", status), zap.Error(err))
	}

	c.JSON(status, ErrorResponse{
		Error:   kind,
		Message: err.Error(),
	})
}
