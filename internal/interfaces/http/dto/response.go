package dto

import (
	"encoding/json"
)

// ShipmentResponse pairs one submitted tracking number with the
// fulfillment service's response body.
type ShipmentResponse struct {
	TrackingNumber string          `json:"tracking_number"`
	Response       json.RawMessage `json:"response"`
}

// SuccessResponse is the envelope returned when every shipment in the
// batch was submitted.
type SuccessResponse struct {
	Success   bool               `json:"success"`
	Responses []ShipmentResponse `json:"responses"`
	RequestID string             `json:"request_id"`
}

// ErrorResponse is the envelope returned when the batch failed.
type ErrorResponse struct {
	Success   bool           `json:"success"`
	Message   string         `json:"message"`
	RequestID string         `json:"request_id"`
	Details   map[string]any `json:"details,omitempty"`
}

// NewSuccessResponse creates a success envelope
func NewSuccessResponse(responses []ShipmentResponse, requestID string) SuccessResponse {
	return SuccessResponse{
		Success:   true,
		Responses: responses,
		RequestID: requestID,
	}
}

// NewErrorResponse creates an error envelope
func NewErrorResponse(message, requestID string, details map[string]any) ErrorResponse {
	return ErrorResponse{
		Success:   false,
		Message:   message,
		RequestID: requestID,
		Details:   details,
	}
}

// ShipmentNotificationRequest is the inbound webhook body. The
// attachments value may be a single object or a list of objects, so it
// is decoded lazily by the application layer.
type ShipmentNotificationRequest struct {
	MailAttachments json.RawMessage `json:"mail_attachments" binding:"required,notnull"`
}
