package vehicle

import (
	"errors"
	"fmt"

	"depot/internal/core/domain/model/order"
)

// ErrMotorbikeIsNotConstructed is returned when a Motorbike was not built by NewMotorbike.
var ErrMotorbikeIsNotConstructed = errors.New("Motorbike must be created via NewMotorbike constructor")

var _ Vehicle = (*Motorbike)(nil)

// Motorbike delivers any order regardless of its weight.
type Motorbike struct {
	identity
	maxSpeed float64
}

// NewMotorbike creates a motorbike whose top speed is maxSpeedKmh (> 0).
//
// Example:
//
//	bike, err := vehicle.NewMotorbike("Yamaha", "MT-07", "XYZ-987", 120)
func NewMotorbike(vehicleMake, model, registration string, maxSpeedKmh float64) (*Motorbike, error) {
	ident, identErr := newIdentity(vehicleMake, model, registration)
	if err := errors.Join(identErr, requirePositive("max speed", maxSpeedKmh)); err != nil {
		return nil, err
	}

	return &Motorbike{
		identity: ident,
		maxSpeed: maxSpeedKmh,
	}, nil
}

// Kind returns MotorbikeKind.
func (m *Motorbike) Kind() Kind {
	return MotorbikeKind
}

// MaxSpeed returns the top speed in km/h.
func (m *Motorbike) MaxSpeed() float64 {
	return m.maxSpeed
}

// Validate ensures the motorbike was built by NewMotorbike.
func (m *Motorbike) Validate() error {
	if m == nil {
		return ErrMotorbikeIsNotConstructed
	}
	return m.guard.Validate(ErrMotorbikeIsNotConstructed)
}

// Deliver always marks o Delivered.
func (m *Motorbike) Deliver(o *order.Order) (Outcome, error) {
	if err := o.Validate(); err != nil {
		return Outcome{}, err
	}

	if err := o.MarkDelivered(); err != nil {
		return Outcome{}, err
	}

	return NewDeliveredOutcome(o.ID(), fmt.Sprintf(
		"Motorbike delivered %s at %skm/h", o.ID(), FormatNumber(m.maxSpeed),
	)), nil
}
