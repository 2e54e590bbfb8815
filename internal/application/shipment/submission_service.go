package shipment

import (
	"context"
	"encoding/json"

	"github.com/billymitchell/J-Charles-Shipment-Processing/internal/domain/shared"
	"github.com/billymitchell/J-Charles-Shipment-Processing/internal/domain/shipment"
	"go.uber.org/zap"
)

// SubmissionService runs the normalization pipeline over one inbound
// notification and submits the resulting shipments downstream, one at a
// time, in first-seen order. Each call owns a fresh grouping fold;
// nothing is shared across requests.
type SubmissionService struct {
	gateway shipment.FulfillmentGateway
	logger  *zap.Logger
}

// SubmissionServiceConfig holds configuration for the submission service
type SubmissionServiceConfig struct {
	Gateway shipment.FulfillmentGateway
	Logger  *zap.Logger
}

// NewSubmissionService creates a new SubmissionService
func NewSubmissionService(config SubmissionServiceConfig) *SubmissionService {
	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &SubmissionService{
		gateway: config.Gateway,
		logger:  logger,
	}
}

// ShipmentResult pairs a submitted tracking number with the fulfillment
// service's response body.
type ShipmentResult struct {
	TrackingNumber string          `json:"tracking_number"`
	Response       json.RawMessage `json:"response"`
}

// ProcessNotification normalizes, groups, validates and submits the
// attachments of one inbound notification.
//
// Submission is strictly sequential and fail-fast: an error on shipment k
// aborts shipments k+1..n, and no partial-success result is returned.
// Per-attachment and per-item malformations never fail the batch; only a
// batch with no usable tracking number is rejected.
func (s *SubmissionService) ProcessNotification(ctx context.Context, rawAttachments json.RawMessage, requestID string) ([]ShipmentResult, error) {
	attachments, err := decodeAttachments(rawAttachments)
	if err != nil {
		return nil, err
	}

	shipments := shipment.BuildGroupedShipments(attachments)
	if len(shipments) == 0 {
		return nil, shared.ErrNoTrackingNumbers
	}

	results := make([]ShipmentResult, 0, len(shipments))
	for _, record := range shipments {
		s.logger.Info("shipment payload prepared",
			zap.String("request_id", requestID),
			zap.String("tracking_number", record.TrackingNumber),
			zap.Stringp("source_id", record.SourceID),
			zap.Stringp("carrier_code", record.CarrierCode),
			zap.Stringp("shipment_method", record.ShipmentMethod),
			zap.Int("item_count", len(record.OrderItems)),
		)

		response, err := s.gateway.SubmitShipment(ctx, record)
		if err != nil {
			s.logger.Error("shipment submission failed",
				zap.String("request_id", requestID),
				zap.String("tracking_number", record.TrackingNumber),
				zap.Error(err),
			)
			return nil, err
		}

		results = append(results, ShipmentResult{
			TrackingNumber: record.TrackingNumber,
			Response:       response,
		})
	}

	s.logger.Info("shipment batch sent",
		zap.String("request_id", requestID),
		zap.Int("shipment_count", len(results)),
	)

	return results, nil
}

// decodeAttachments accepts the `mail_attachments` value as either a
// single object or a list of objects. Any other shape is a fatal
// BadRequest; non-object list entries are dropped silently.
func decodeAttachments(raw json.RawMessage) ([]shipment.Attachment, error) {
	if len(raw) == 0 {
		return nil, shared.ErrBadRequest
	}

	var single shipment.Attachment
	if err := json.Unmarshal(raw, &single); err == nil {
		return []shipment.Attachment{single}, nil
	}

	var list []any
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, shared.NewDomainError("BAD_REQUEST", "mail_attachments must be an object or a list of objects")
	}

	attachments := make([]shipment.Attachment, 0, len(list))
	for _, elem := range list {
		if obj, ok := elem.(map[string]any); ok {
			attachments = append(attachments, shipment.Attachment(obj))
		}
	}
	return attachments, nil
}
