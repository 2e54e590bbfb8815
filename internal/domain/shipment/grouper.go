package shipment

// ShipmentRecord is the canonical unit submitted to the fulfillment
// service: exactly one exists per distinct tracking number in a request.
type ShipmentRecord struct {
	TrackingNumber string     `json:"tracking_number"`
	SourceID       *string    `json:"source_id"`
	CarrierCode    *string    `json:"carrier_code"`
	ShipmentMethod *string    `json:"shipment_method"`
	OrderItems     []LineItem `json:"order_items"`
}

// BuildGroupedShipments folds a batch of raw attachments into shipment
// records deduplicated by tracking number, in first-seen order.
//
// The first attachment for a tracking number wins for every field it
// sets; later attachments with the same tracking number only fill fields
// that are still nil. Carrier code and shipment method backfill
// independently, so a later attachment may supply the carrier while an
// earlier one supplied only the method. Line items always append.
// Attachments without a tracking number are skipped.
func BuildGroupedShipments(attachments []Attachment) []*ShipmentRecord {
	byTracking := make(map[string]*ShipmentRecord)
	order := make([]string, 0, len(attachments))

	for _, att := range attachments {
		if att == nil {
			continue
		}
		tracking := ResolveTrackingNumber(att)
		if tracking == nil {
			continue
		}

		record, seen := byTracking[*tracking]
		if !seen {
			parsed := ResolveShippingMethod(att)
			record = &ShipmentRecord{
				TrackingNumber: *tracking,
				SourceID:       ResolveSourceID(att),
				CarrierCode:    parsed.CarrierCode,
				ShipmentMethod: parsed.ShipmentMethod,
				OrderItems:     []LineItem{},
			}
			byTracking[*tracking] = record
			order = append(order, *tracking)
		} else {
			if record.SourceID == nil {
				record.SourceID = ResolveSourceID(att)
			}
			parsed := ResolveShippingMethod(att)
			if record.CarrierCode == nil {
				record.CarrierCode = parsed.CarrierCode
			}
			if record.ShipmentMethod == nil {
				record.ShipmentMethod = parsed.ShipmentMethod
			}
		}

		record.OrderItems = append(record.OrderItems, BuildOrderItems(att)...)
	}

	shipments := make([]*ShipmentRecord, 0, len(order))
	for _, tracking := range order {
		shipments = append(shipments, byTracking[tracking])
	}
	return shipments
}
