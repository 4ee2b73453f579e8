package vehicle

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"depot/internal/core/domain/model/kernel"
	"depot/internal/core/domain/model/order"
	"depot/internal/pkg/errs"
	"depot/internal/pkg/guard"
)

var (
	// ErrMakeIsRequired is returned for an empty make.
	ErrMakeIsRequired = errs.NewValueIsRequiredError("make")
	// ErrModelIsRequired is returned for an empty model.
	ErrModelIsRequired = errs.NewValueIsRequiredError("model")
	// ErrRegistrationIsRequired is returned for an empty registration.
	ErrRegistrationIsRequired = errs.NewValueIsRequiredError("registration")
)

// Vehicle is the delivery capability shared by every vehicle kind.
//
// Implementations decide on their own whether an order can be delivered; the
// only side effect of Deliver is marking the order Delivered on success.
// A refused delivery is a normal Outcome, not an error. Errors are reserved
// for orders that were not built by order.NewOrder.
type Vehicle interface {
	ID() kernel.UUID
	Kind() Kind
	Make() string
	Model() string
	Registration() string
	Deliver(o *order.Order) (Outcome, error)
	Validate() error
	fmt.Stringer
}

// Kind enumerates the vehicle variants.
type Kind int

const (
	// UnknownKind is the zero value and never valid.
	UnknownKind Kind = iota
	// TruckKind identifies *Truck.
	TruckKind
	// MotorbikeKind identifies *Motorbike.
	MotorbikeKind
)

// String returns "Truck", "Motorbike" or "Unknown".
func (k Kind) String() string {
	switch k {
	case TruckKind:
		return "Truck"
	case MotorbikeKind:
		return "Motorbike"
	case UnknownKind:
		return "Unknown"
	default:
		return "Unknown"
	}
}

// ParseKind maps "Truck" or "Motorbike" (case-insensitive, surrounding
// spaces ignored) to a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "truck":
		return TruckKind, nil
	case "motorbike":
		return MotorbikeKind, nil
	default:
		return UnknownKind, errs.NewValueIsInvalidErrorWithCause(
			"kind",
			fmt.Errorf("%q is not one of Truck, Motorbike", s),
		)
	}
}

// identity holds the fields every vehicle kind shares. They are fixed once
// the vehicle is built.
type identity struct {
	id           kernel.UUID
	make         string
	model        string
	registration string
	guard        guard.ConstructorGuard
}

func newIdentity(vehicleMake, model, registration string) (identity, error) {
	var ident identity
	if err := errors.Join(
		ident.setMake(vehicleMake),
		ident.setModel(model),
		ident.setRegistration(registration),
	); err != nil {
		return identity{}, err
	}

	ident.id = kernel.NewUUID()
	ident.guard = guard.NewConstructorGuard()
	return ident, nil
}

// ID returns the surrogate identifier assigned at construction.
func (i *identity) ID() kernel.UUID {
	return i.id
}

// Make returns the manufacturer, e.g. "Renault".
func (i *identity) Make() string {
	return i.make
}

// Model returns the model name, e.g. "MT-07".
func (i *identity) Model() string {
	return i.model
}

// Registration returns the plate. It is not guaranteed to be unique.
func (i *identity) Registration() string {
	return i.registration
}

// String renders "Make Model (Registration)".
func (i *identity) String() string {
	return fmt.Sprintf("%s %s (%s)", i.make, i.model, i.registration)
}

func (i *identity) setMake(vehicleMake string) error {
	if strings.TrimSpace(vehicleMake) == "" {
		return ErrMakeIsRequired
	}
	i.make = vehicleMake
	return nil
}

func (i *identity) setModel(model string) error {
	if strings.TrimSpace(model) == "" {
		return ErrModelIsRequired
	}
	i.model = model
	return nil
}

func (i *identity) setRegistration(registration string) error {
	if strings.TrimSpace(registration) == "" {
		return ErrRegistrationIsRequired
	}
	i.registration = registration
	return nil
}

// requirePositive rejects zero, negative and NaN values.
func requirePositive(paramName string, value float64) error {
	if !(value > 0) {
		return errs.NewValueIsInvalidErrorWithCause(
			paramName,
			fmt.Errorf("%s is not greater than 0", FormatNumber(value)),
		)
	}
	return nil
}

// FormatNumber prints v without trailing zeros: 10 -> "10", 2.5 -> "2.5".
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
