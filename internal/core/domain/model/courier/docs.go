// Package courier holds the Courier entity: a named actor with at most one
// vehicle and a queue of orders waiting to be delivered.
//
// The package includes:
//   - Courier: identity, vehicle reference and pending-order queue
//   - IsValidName: the letters-and-spaces naming rule
//   - FromRecord: construction from a loosely typed record
//   - Report: rendering of a delivery run
//
// Key business rules:
//   - A courier accepts an order only with a vehicle assigned and only if
//     the order weight is in (0, 100] kg
//   - A delivery run empties the queue. Rejected orders are dropped from the
//     queue and remain Pending in the depot
//   - Vehicles and orders are shared references owned by the depot
package courier
