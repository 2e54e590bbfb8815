package handler

import (
	"errors"
	"net/http"

	"github.com/billymitchell/J-Charles-Shipment-Processing/internal/domain/shared"
	"github.com/billymitchell/J-Charles-Shipment-Processing/internal/interfaces/http/dto"
	"github.com/billymitchell/J-Charles-Shipment-Processing/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// BaseHandler provides common handler utilities
type BaseHandler struct{}

// Error sends an error response with the given status code
func (h *BaseHandler) Error(c *gin.Context, statusCode int, message string, details map[string]any) {
	requestID := middleware.GetRequestID(c)
	c.JSON(statusCode, dto.NewErrorResponse(message, requestID, details))
}

// BadRequest sends a 400 bad request response
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	h.Error(c, http.StatusBadRequest, message, nil)
}

// InternalError sends a 500 internal server error response
func (h *BaseHandler) InternalError(c *gin.Context, message string) {
	h.Error(c, http.StatusInternalServerError, message, nil)
}

// HandleError converts domain errors to HTTP responses, defaulting any
// unrecognized error to a generic 500.
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		statusCode := dto.GetHTTPStatus(domainErr.Code)
		h.Error(c, statusCode, domainErr.Message, domainErr.Details)
		return
	}

	h.InternalError(c, "An unexpected error occurred")
}
