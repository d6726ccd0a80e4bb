package rest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"

	"github.com/feral-file/ff-assignment/internal/api/shared/constants"
	"github.com/feral-file/ff-assignment/internal/api/shared/dto"
	apierrors "github.com/feral-file/ff-assignment/internal/api/shared/errors"
	"github.com/feral-file/ff-assignment/internal/api/shared/executor"
	"github.com/feral-file/ff-assignment/internal/domain"
	"github.com/feral-file/ff-assignment/internal/logger"
)

// Handler defines the interface for REST API handlers
// This interface allows for easy mocking and testing
type Handler interface {
	// ContactWebhook applies a contact assignment webhook
	// POST /webhook/contact
	ContactWebhook(c *gin.Context)

	// ListAssignments retrieves all assignments
	// GET /assignments
	ListAssignments(c *gin.Context)

	// GetAssignment retrieves the assignment of a phone number, the leading + is optional
	// GET /assignments/:phone
	GetAssignment(c *gin.Context)

	// GetAssignmentChanges retrieves the change journal of a phone number, newest first
	// GET /assignments/:phone/changes?limit=<limit>&offset=<offset>
	GetAssignmentChanges(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)

	// ReadinessCheck reports whether the database can serve requests
	// GET /ready
	ReadinessCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	executor executor.Executor
}

// NewHandler creates a new REST API handler using the shared executor
func NewHandler(exec executor.Executor) Handler {
	return &handler{
		executor: exec,
	}
}

// ContactWebhook applies a contact assignment webhook
func (h *handler) ContactWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	raw, err := c.GetRawData()
	if err != nil || !isNonEmptyJSONObject(raw) {
		respondBadRequest(c, constants.MSG_NO_JSON_DATA)
		return
	}

	var req dto.ContactWebhookRequest
	if err := binding.JSON.BindBody(raw, &req); err != nil {
		respondBadRequest(c, constants.MSG_INVALID_PAYLOAD, err.Error())
		return
	}

	eventType := domain.UNKNOWN_EVENT_TYPE
	if req.EventType != nil {
		eventType = *req.EventType
	}
	logger.InfoCtx(ctx, "Received webhook", zap.String("event_type", eventType))

	response, err := h.executor.ProcessContactWebhook(ctx, &req, raw)
	if err != nil {
		apiErr, ok := apierrors.AsAPIError(err)
		if ok && apiErr.StatusCode() < http.StatusInternalServerError {
			respondAPIError(c, apiErr)
			return
		}

		detail := err.Error()
		if ok && apiErr.Details != "" {
			detail = apiErr.Details
		}
		logger.ErrorCtx(ctx, fmt.Errorf("failed to process webhook: %s", detail),
			zap.String("event_type", eventType),
			zap.String("phone", req.Phone()))
		respondWithError(c, http.StatusInternalServerError, constants.MSG_INTERNAL_ERROR, detail)
		return
	}

	c.JSON(http.StatusOK, response)
}

// ListAssignments retrieves all assignments
func (h *handler) ListAssignments(c *gin.Context) {
	response, err := h.executor.GetAssignments(c.Request.Context())
	if err != nil {
		respondInternalError(c, err, zap.String("path", c.FullPath()))
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetAssignment retrieves the assignment of a phone number
func (h *handler) GetAssignment(c *gin.Context) {
	phone := c.Param("phone")
	if phone == "" {
		respondBadRequest(c, constants.MSG_PHONE_REQUIRED)
		return
	}

	assignment, err := h.executor.GetAssignment(c.Request.Context(), phone)
	if err != nil {
		respondInternalError(c, err, zap.String("phone", phone))
		return
	}

	if assignment == nil {
		respondNotFound(c, constants.MSG_NOT_FOUND)
		return
	}

	c.JSON(http.StatusOK, assignment)
}

// GetAssignmentChanges retrieves the change journal of a phone number
func (h *handler) GetAssignmentChanges(c *gin.Context) {
	phone := c.Param("phone")
	if phone == "" {
		respondBadRequest(c, constants.MSG_PHONE_REQUIRED)
		return
	}

	// Parse query parameters
	queryParams, err := ParseGetAssignmentChangesQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	// Validate query parameters
	if err := queryParams.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	response, err := h.executor.GetAssignmentChanges(
		c.Request.Context(),
		phone,
		&queryParams.Limit,
		&queryParams.Offset,
	)
	if err != nil {
		respondInternalError(c, err, zap.String("phone", phone))
		return
	}

	c.JSON(http.StatusOK, response)
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": constants.STATUS_HEALTHY,
	})
}

// ReadinessCheck reports whether the database can serve requests
func (h *handler) ReadinessCheck(c *gin.Context) {
	if err := h.executor.CheckReadiness(c.Request.Context()); err != nil {
		logger.WarnCtx(c.Request.Context(), "Readiness check failed", zap.Error(err))
		respondWithError(c, http.StatusServiceUnavailable, constants.MSG_DATABASE_NOT_READY)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": constants.STATUS_READY,
	})
}

// isNonEmptyJSONObject reports whether body is a JSON object with at least one member.
// Empty bodies, null, {} and non-object values all mean no usable data was sent.
func isNonEmptyJSONObject(body []byte) bool {
	body = bytes.TrimSpace(body)
	if len(body) == 0 || body[0] != '{' {
		return false
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return false
	}
	return len(fields) > 0
}
