// Package services provides domain services that operate on several
// aggregates at once.
//
// The package includes:
//   - DeliveryRound: executes the pending deliveries of every courier that
//     has a vehicle and something to deliver
package services
