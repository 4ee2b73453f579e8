package vehicle

import (
	"errors"
	"fmt"

	"depot/internal/core/domain/model/order"
)

// ErrTruckIsNotConstructed is returned when a Truck was not built by NewTruck.
var ErrTruckIsNotConstructed = errors.New("Truck must be created via NewTruck constructor")

var _ Vehicle = (*Truck)(nil)

// Truck delivers orders up to its capacity.
//
// Capacity is expressed in tonnes while order weights are in kilograms. The
// comparison in Deliver uses both numbers as they are, without conversion.
type Truck struct {
	identity
	capacity float64
}

// NewTruck creates a truck.
//
// Parameters:
//   - vehicleMake, model, registration: required, non-blank
//   - capacityTonnes: must be greater than 0
//
// Returns the joined validation errors if any parameter is invalid.
//
// Example:
//
//	truck, err := vehicle.NewTruck("Renault", "Truck", "AB-123-CD", 10)
func NewTruck(vehicleMake, model, registration string, capacityTonnes float64) (*Truck, error) {
	ident, identErr := newIdentity(vehicleMake, model, registration)
	if err := errors.Join(identErr, requirePositive("capacity", capacityTonnes)); err != nil {
		return nil, err
	}

	return &Truck{
		identity: ident,
		capacity: capacityTonnes,
	}, nil
}

// Kind returns TruckKind.
func (t *Truck) Kind() Kind {
	return TruckKind
}

// Capacity returns the capacity in tonnes.
func (t *Truck) Capacity() float64 {
	return t.capacity
}

// Validate ensures the truck was built by NewTruck.
func (t *Truck) Validate() error {
	if t == nil {
		return ErrTruckIsNotConstructed
	}
	return t.guard.Validate(ErrTruckIsNotConstructed)
}

// Deliver marks o Delivered when its weight does not exceed the capacity.
// Otherwise o is left untouched and a rejection citing both numbers is
// returned.
func (t *Truck) Deliver(o *order.Order) (Outcome, error) {
	if err := o.Validate(); err != nil {
		return Outcome{}, err
	}

	if o.Weight() > t.capacity {
		return NewRejectedOutcome(o.ID(), fmt.Sprintf(
			"Error: capacity exceeded (%st > %st)",
			FormatNumber(o.Weight()), FormatNumber(t.capacity),
		)), nil
	}

	if err := o.MarkDelivered(); err != nil {
		return Outcome{}, err
	}

	return NewDeliveredOutcome(o.ID(), fmt.Sprintf(
		"Truck delivered %s (%st)", o.ID(), FormatNumber(o.Weight()),
	)), nil
}
