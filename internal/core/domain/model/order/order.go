package order

import (
	"errors"
	"strings"

	"depot/internal/pkg/errs"
	"depot/internal/pkg/guard"
)

const (
	// MaxWeight is the heaviest order, in kilograms, a courier accepts.
	MaxWeight = 100.0
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not built by NewOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
	// ErrIDIsRequired is returned for an empty order id.
	ErrIDIsRequired = errs.NewValueIsRequiredError("id")
	// ErrDestinationIsRequired is returned for an empty destination.
	ErrDestinationIsRequired = errs.NewValueIsRequiredError("destination")
)

// Order is a unit of delivery work.
//
// Invariants:
//   - id and destination are non-empty
//   - status only moves from Pending to Delivered
//
// The weight is stored as given. Whether it is acceptable is decided by the
// courier taking the order (see IsWeightValid), not by the order itself, so a
// heavy order can exist in the depot and even be delivered by a vehicle that
// does not check weight.
//
// Ids are user supplied labels and are not required to be unique.
type Order struct {
	// id is the user facing order reference, e.g. "CMD001"
	id string

	// destination is an opaque delivery label
	destination string

	// weight in kilograms
	weight float64

	// status is the current lifecycle state
	status Status

	guard guard.ConstructorGuard
}

// NewOrder creates a Pending order.
//
// Parameters:
//   - id: order reference (required)
//   - destination: delivery label (required)
//   - weight: kilograms, not validated here
//
// Returns:
//   - *Order: the created order
//   - error: joined validation errors for id and destination
//
// Example:
//
//	o, err := order.NewOrder("CMD001", "Paris", 5)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(o.Status()) // Pending
func NewOrder(id, destination string, weight float64) (*Order, error) {
	o := &Order{
		weight: weight,
		status: Pending,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setDestination(destination),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// IsWeightValid reports whether weight lies in (0, MaxWeight].
func IsWeightValid(weight float64) bool {
	return weight > 0 && weight <= MaxWeight
}

// Validate ensures the order was built by NewOrder.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// ID returns the order reference.
func (o *Order) ID() string {
	return o.id
}

// Destination returns the delivery label.
func (o *Order) Destination() string {
	return o.destination
}

// Weight returns the weight in kilograms.
func (o *Order) Weight() float64 {
	return o.weight
}

// Status returns the current status.
func (o *Order) Status() Status {
	return o.status
}

// MarkDelivered moves the order to Delivered. Calling it on a delivered
// order changes nothing.
func (o *Order) MarkDelivered() error {
	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrIDIsRequired
	}
	o.id = id
	return nil
}

func (o *Order) setDestination(destination string) error {
	if strings.TrimSpace(destination) == "" {
		return ErrDestinationIsRequired
	}
	o.destination = destination
	return nil
}
