// Package order provides the Order entity of the depot.
//
// The package includes:
//   - Order: a delivery unit with an id, a destination label and a weight in kilograms
//   - Status: the Pending -> Delivered lifecycle
//   - IsWeightValid: the (0, 100] kg rule couriers apply before queueing an order
//
// Orders are owned by the depot for the whole process lifetime. Couriers only
// reference them while they sit in their queue.
package order
