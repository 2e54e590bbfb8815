package shipment

import (
	"math"
	"strconv"
	"strings"
)

// LineItem is one {identifier, quantity} pair to be marked shipped.
// Identifier keeps the original string or numeric form from the source.
type LineItem struct {
	Identifier any     `json:"id"`
	Quantity   float64 `json:"quantity"`
}

// BuildOrderItems converts an attachment's item representation into a
// normalized list of line items.
//
// When `order_items` is a list, each well-formed element is mapped
// independently and invalid elements are dropped, preserving order.
// Otherwise the attachment itself is treated as a single legacy flat
// item. The result is never nil and the function never fails; malformed
// item data yields an empty slice.
func BuildOrderItems(att Attachment) []LineItem {
	if raw, ok := att["order_items"]; ok {
		if list, ok := raw.([]any); ok {
			items := make([]LineItem, 0, len(list))
			for _, elem := range list {
				obj, ok := elem.(map[string]any)
				if !ok {
					continue
				}
				if item, ok := buildLineItem(Attachment(obj)); ok {
					items = append(items, item)
				}
			}
			return items
		}
	}

	// Legacy flat shape: the attachment carries the item fields directly.
	if item, ok := buildLineItem(att); ok {
		return []LineItem{item}
	}
	return []LineItem{}
}

// buildLineItem resolves identifier and quantity from the aliased fields
// of one record and validates the LineItem constraints.
func buildLineItem(record Attachment) (LineItem, bool) {
	identifier, ok := resolveIdentifier(record)
	if !ok {
		return LineItem{}, false
	}

	quantity, ok := resolveQuantity(record)
	if !ok || !(quantity > 0) {
		return LineItem{}, false
	}

	return LineItem{Identifier: identifier, Quantity: quantity}, true
}

// resolveIdentifier returns the first present, truthy identifier alias.
// Empty strings and zero numbers do not qualify.
func resolveIdentifier(record Attachment) (any, bool) {
	for _, key := range itemIdentifierKeys {
		switch v := record[key].(type) {
		case string:
			if v != "" {
				return v, true
			}
		case float64:
			if v != 0 && !math.IsNaN(v) && !math.IsInf(v, 0) {
				return v, true
			}
		}
	}
	return nil, false
}

// resolveQuantity returns the first quantity alias that coerces to a
// finite number. Numeric strings are accepted since legacy records carry
// quantities in either form.
func resolveQuantity(record Attachment) (float64, bool) {
	for _, key := range itemQuantityKeys {
		v, ok := record[key]
		if !ok {
			continue
		}
		if q, ok := numericValue(v); ok {
			return q, true
		}
	}
	return 0, false
}

// numericValue coerces a raw JSON value to a finite float64.
func numericValue(v any) (float64, bool) {
	switch val := v.(type) {
	case float64:
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return 0, false
		}
		return val, true
	case string:
		q, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil || math.IsNaN(q) || math.IsInf(q, 0) {
			return 0, false
		}
		return q, true
	case int:
		return float64(val), true
	case int64:
		return float64(val), true
	}
	return 0, false
}
