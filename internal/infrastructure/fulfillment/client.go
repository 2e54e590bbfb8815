package fulfillment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/billymitchell/J-Charles-Shipment-Processing/internal/domain/shared"
	"github.com/billymitchell/J-Charles-Shipment-Processing/internal/domain/shipment"
)

// maxResponseSize is the maximum allowed response size from the fulfillment API (1MB)
const maxResponseSize = 1 << 20

// Config holds fulfillment client configuration
type Config struct {
	Endpoint string
	Timeout  time.Duration
}

// Validate checks that the configuration is usable
func (c *Config) Validate() error {
	if c.Endpoint == "" {
		return fmt.Errorf("fulfillment: endpoint is required")
	}
	return nil
}

// Client submits shipment records to the downstream order-fulfillment
// API over HTTP, one JSON POST per record.
type Client struct {
	config     Config
	httpClient *http.Client
}

// NewClient creates a new fulfillment Client with the given configuration
func NewClient(config Config) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if config.Timeout == 0 {
		config.Timeout = 30 * time.Second
	}

	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
	}, nil
}

// SubmitShipment posts one shipment record and returns the upstream JSON
// response body.
//
// Non-2xx statuses wrap shared.ErrUpstreamRejected with details carrying
// the upstream status line, the exact request body sent and the parsed
// (or raw, if unparsable) upstream response. Transport failures wrap
// shared.ErrUpstreamUnavailable.
func (c *Client) SubmitShipment(ctx context.Context, record *shipment.ShipmentRecord) (json.RawMessage, error) {
	payload, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("fulfillment: failed to encode shipment %s: %w", record.TrackingNumber, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("fulfillment: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, shared.NewDomainErrorWithDetails(
			shared.ErrUpstreamUnavailable.Code,
			fmt.Sprintf("Fulfillment service unreachable for shipment %s", record.TrackingNumber),
			map[string]any{
				"tracking_number": record.TrackingNumber,
				"cause":           err.Error(),
			},
		)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("fulfillment: failed to read response for shipment %s: %w", record.TrackingNumber, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, shared.NewDomainErrorWithDetails(
			shared.ErrUpstreamRejected.Code,
			fmt.Sprintf("Fulfillment service rejected shipment %s", record.TrackingNumber),
			map[string]any{
				"tracking_number": record.TrackingNumber,
				"upstream_status": resp.Status,
				"request_body":    json.RawMessage(payload),
				"response_body":   decodeBody(body),
			},
		)
	}

	return normalizeResponse(body), nil
}

// decodeBody parses an upstream body as JSON, falling back to the raw
// text when it is not valid JSON.
func decodeBody(body []byte) any {
	var parsed any
	if err := json.Unmarshal(body, &parsed); err != nil {
		return string(body)
	}
	return parsed
}

// normalizeResponse returns the body as raw JSON, quoting it when the
// upstream returned something other than JSON.
func normalizeResponse(body []byte) json.RawMessage {
	if json.Valid(body) && len(bytes.TrimSpace(body)) > 0 {
		return json.RawMessage(body)
	}
	quoted, _ := json.Marshal(string(body))
	return json.RawMessage(quoted)
}

// Ensure Client implements the FulfillmentGateway port
var _ shipment.FulfillmentGateway = (*Client)(nil)
