// Package shipment contains the Shipment bounded context: the
// normalization and grouping pipeline that turns loosely-structured mail
// attachment records into canonical shipment records.
//
// Key concepts:
//   - Attachment: one raw record from the upstream mail-parsing source,
//     with fields spread across legacy aliases
//   - ParsedShippingMethod: carrier/method pair extracted from a combined
//     shipping-method string
//   - LineItem: one {identifier, quantity} pair to be marked shipped
//   - ShipmentRecord: deduplicated unit submitted downstream, one per
//     distinct tracking number per request
//   - FulfillmentGateway: port interface for the downstream
//     order-fulfillment API
//
// Design Pattern: Ports & Adapters
//   - Ports (interfaces) are defined here in the domain layer
//   - Adapters (implementations) are in the infrastructure layer
package shipment
