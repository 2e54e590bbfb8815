package shipment

import (
	"math"
	"strconv"
	"strings"
)

// Attachment is one raw record from the upstream mail-parsing source.
// Fields are loosely structured and may appear under several legacy
// aliases, so it is kept as a decoded JSON object rather than a struct.
type Attachment map[string]any

// Alias lists per logical field, in priority order. First non-empty wins.
var (
	trackingNumberKeys = []string{"tracking_number"}
	sourceIDKeys       = []string{"source_id", "order_source_id", "order_id"}
	shippingMethodKeys = []string{"shipment_method", "brightstores_shipping_method"}
	itemIdentifierKeys = []string{"order_item_id", "item_id", "sku"}
	itemQuantityKeys   = []string{"quantity", "quantity_shipped", "qty"}
)

// ResolveSourceID returns the first non-empty source identifier alias,
// or nil when no alias carries a value.
func ResolveSourceID(att Attachment) *string {
	return firstNonEmptyString(att, sourceIDKeys)
}

// ResolveTrackingNumber returns the attachment's tracking number, or nil
// when absent. Attachments without one are skipped by the grouper.
func ResolveTrackingNumber(att Attachment) *string {
	return firstNonEmptyString(att, trackingNumberKeys)
}

// firstNonEmptyString walks keys in priority order and returns the first
// value that renders to a non-empty string. Numbers are accepted since
// upstream records interchange string and numeric identifiers freely.
func firstNonEmptyString(att Attachment, keys []string) *string {
	for _, key := range keys {
		v, ok := att[key]
		if !ok {
			continue
		}
		if s, ok := stringValue(v); ok {
			return &s
		}
	}
	return nil
}

// stringValue renders a raw JSON value as a non-empty string.
func stringValue(v any) (string, bool) {
	switch val := v.(type) {
	case string:
		trimmed := strings.TrimSpace(val)
		if trimmed == "" {
			return "", false
		}
		return trimmed, true
	case float64:
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return "", false
		}
		return strconv.FormatFloat(val, 'f', -1, 64), true
	case int:
		return strconv.Itoa(val), true
	case int64:
		return strconv.FormatInt(val, 10), true
	}
	return "", false
}
