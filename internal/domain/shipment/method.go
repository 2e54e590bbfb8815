package shipment

import "strings"

// ParsedShippingMethod is the carrier/method pair extracted from a raw
// combined shipping-method string. Either side may be absent.
type ParsedShippingMethod struct {
	CarrierCode    *string
	ShipmentMethod *string
}

// shippingMethodLabels maps short carrier-method abbreviations to their
// human-readable labels. The table is a closed enumeration; labels not
// listed here pass through unchanged.
var shippingMethodLabels = map[string]string{
	"GRND": "Ground",
	"2DAY": "2-Day Air",
	"1DAY": "Next Day Air",
	"NDA":  "Next Day Air",
	"3DAY": "3 Day Select",
	"EXP":  "Express",
	"STD":  "Standard",
	"RES":  "Residential",
	"HOME": "Home Delivery",
	"INTL": "International Priority",
}

// ParseShippingMethod splits a raw shipping-method string into a carrier
// code and a normalized method label.
//
// With two or more whitespace-separated tokens the first token is the
// carrier and the remainder is the method label; with a single token the
// carrier is absent. The label is looked up in the normalization table
// as-is, then upper-cased; a miss passes the raw label through. Safe on
// any input, including empty and whitespace-only strings.
func ParseShippingMethod(raw string) ParsedShippingMethod {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return ParsedShippingMethod{}
	}

	var carrier *string
	label := strings.Join(fields, " ")
	if len(fields) >= 2 {
		carrier = &fields[0]
		label = strings.Join(fields[1:], " ")
	}

	method := normalizeMethodLabel(label)
	return ParsedShippingMethod{CarrierCode: carrier, ShipmentMethod: &method}
}

// ResolveShippingMethod selects the first non-empty shipping-method alias
// on the attachment and parses it. Returns an empty pair when no alias is
// present.
func ResolveShippingMethod(att Attachment) ParsedShippingMethod {
	raw := firstNonEmptyString(att, shippingMethodKeys)
	if raw == nil {
		return ParsedShippingMethod{}
	}
	return ParseShippingMethod(*raw)
}

// normalizeMethodLabel resolves a method label against the table, trying
// an exact match before the upper-cased form.
func normalizeMethodLabel(label string) string {
	if mapped, ok := shippingMethodLabels[label]; ok {
		return mapped
	}
	if mapped, ok := shippingMethodLabels[strings.ToUpper(label)]; ok {
		return mapped
	}
	return label
}
