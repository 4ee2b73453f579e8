// Package vehicle provides the delivery vehicles of the depot.
//
// Vehicle is the capability interface; Truck and Motorbike are its two
// implementations:
//   - Truck refuses orders heavier than its capacity (tonnes, compared to the
//     order weight in kilograms as-is)
//   - Motorbike delivers everything
//
// A delivery attempt yields an Outcome. Refusals are outcomes too, never errors.
package vehicle
