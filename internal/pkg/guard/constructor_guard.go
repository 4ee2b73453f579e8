// Package guard provides ConstructorGuard, a marker embedded in domain
// objects, commands and queries so that zero values can be told apart from
// values built through their constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate on a zero-value guard when
// no specific error was supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard records whether the enclosing value was built by its
// constructor. The zero value is "not constructed".
//
// Example:
//
//	type Truck struct {
//	    capacity float64
//	    guard    guard.ConstructorGuard
//	}
//
//	func NewTruck(capacity float64) *Truck {
//	    return &Truck{capacity: capacity, guard: guard.NewConstructorGuard()}
//	}
//
//	func (t *Truck) Validate() error {
//	    return t.guard.Validate(ErrTruckIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is
// nil) if the guard is a zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
