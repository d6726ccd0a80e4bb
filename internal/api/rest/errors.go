package rest

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/feral-file/ff-assignment/internal/api/shared/constants"
	apierrors "github.com/feral-file/ff-assignment/internal/api/shared/errors"
	"github.com/feral-file/ff-assignment/internal/logger"
)

// errorResponse is the flat error body existing webhook clients already parse
type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// respondWithError sends an error response
func respondWithError(c *gin.Context, statusCode int, message string, details ...string) {
	c.JSON(statusCode, errorResponse{
		Error:   message,
		Message: strings.Join(details, ", "),
	})
}

// respondBadRequest sends a 400 Bad Request response
func respondBadRequest(c *gin.Context, message string, details ...string) {
	respondWithError(c, http.StatusBadRequest, message, details...)
}

// respondNotFound sends a 404 Not Found response
func respondNotFound(c *gin.Context, message string) {
	respondWithError(c, http.StatusNotFound, message)
}

// respondValidationError sends a 400 Bad Request with validation error
func respondValidationError(c *gin.Context, details string) {
	respondWithError(c, http.StatusBadRequest, "Validation failed", details)
}

// respondInternalError sends a 500 Internal Server Error response and logs the error
func respondInternalError(c *gin.Context, err error, fields ...zap.Field) {
	logger.ErrorCtx(c.Request.Context(), err, fields...)
	respondWithError(c, http.StatusInternalServerError, constants.MSG_INTERNAL_ERROR)
}

// respondAPIError sends the status an executor error carries.
// Server errors are logged; client errors are only reported back.
func respondAPIError(c *gin.Context, err error, fields ...zap.Field) {
	apiErr, ok := apierrors.AsAPIError(err)
	if !ok {
		respondInternalError(c, err, fields...)
		return
	}

	status := apiErr.StatusCode()
	if status >= http.StatusInternalServerError {
		respondInternalError(c, err, fields...)
		return
	}

	if apiErr.Details != "" {
		respondWithError(c, status, apiErr.Message, apiErr.Details)
		return
	}
	respondWithError(c, status, apiErr.Message)
}
