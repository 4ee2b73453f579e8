// Package kernel holds the value objects shared by every depot aggregate.
//
// For now that is UUID, the surrogate identity given to vehicles and
// couriers so they can be told apart even when registrations or names repeat.
package kernel
