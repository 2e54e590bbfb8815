package shipment

import (
	"context"
	"encoding/json"
)

// FulfillmentGateway submits one shipment record to the downstream
// order-fulfillment API and returns its JSON response body.
//
// Implementations wrap failures in shared.ErrUpstreamRejected (non-2xx
// status) or shared.ErrUpstreamUnavailable (transport failure) so callers
// can map them to boundary responses.
type FulfillmentGateway interface {
	SubmitShipment(ctx context.Context, record *ShipmentRecord) (json.RawMessage, error)
}
