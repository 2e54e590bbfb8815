package handler

import (
	"net/http"

	shipmentapp "github.com/billymitchell/J-Charles-Shipment-Processing/internal/application/shipment"
	"github.com/billymitchell/J-Charles-Shipment-Processing/internal/infrastructure/logger"
	"github.com/billymitchell/J-Charles-Shipment-Processing/internal/interfaces/http/dto"
	"github.com/billymitchell/J-Charles-Shipment-Processing/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ShipmentHandler handles the inbound shipment notification endpoint.
// The endpoint is called by the upstream mail-parsing source and does
// not require authentication.
type ShipmentHandler struct {
	BaseHandler
	submissionService *shipmentapp.SubmissionService
}

// NewShipmentHandler creates a new ShipmentHandler
func NewShipmentHandler(submissionService *shipmentapp.SubmissionService) *ShipmentHandler {
	return &ShipmentHandler{
		submissionService: submissionService,
	}
}

// RegisterRoutes registers the shipment routes
func (h *ShipmentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	shipments := rg.Group("/shipments")
	shipments.POST("/notifications", h.HandleNotification)
}

// HandleNotification receives one shipped-mail notification, normalizes
// its attachments into shipment records and submits them downstream in
// first-seen order.
func (h *ShipmentHandler) HandleNotification(c *gin.Context) {
	requestID := middleware.GetRequestID(c)

	var req dto.ShipmentNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Request body must be JSON with a mail_attachments field")
		return
	}

	results, err := h.submissionService.ProcessNotification(c.Request.Context(), req.MailAttachments, requestID)
	if err != nil {
		logger.GetGinLogger(c).Warn("shipment notification rejected", zap.Error(err))
		h.HandleError(c, err)
		return
	}

	responses := make([]dto.ShipmentResponse, 0, len(results))
	for _, result := range results {
		responses = append(responses, dto.ShipmentResponse{
			TrackingNumber: result.TrackingNumber,
			Response:       result.Response,
		})
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(responses, requestID))
}
