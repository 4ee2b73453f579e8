package courier

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"depot/internal/core/domain/model/kernel"
	"depot/internal/core/domain/model/order"
	"depot/internal/core/domain/model/vehicle"
	"depot/internal/pkg/errs"
	"depot/internal/pkg/guard"
)

const (
	// RecordNameKey is the record key holding the courier name.
	RecordNameKey = "name"
	// RecordVehicleKey is the optional record key holding a vehicle.Vehicle.
	RecordVehicleKey = "vehicle"

	// NoOrdersToDeliver is the report produced when a delivery run had nothing to do.
	NoOrdersToDeliver = "No orders to deliver"
)

// Domain errors for courier operations.
var (
	// ErrNameIsRequired is returned when the name is empty or blank.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrNameIsInvalid is returned when the name holds anything besides letters and spaces.
	ErrNameIsInvalid = errs.NewValueIsInvalidErrorWithCause("name", errors.New("only letters and spaces are allowed"))
	// ErrVehicleIsRequired is returned when assigning a nil vehicle.
	ErrVehicleIsRequired = errs.NewValueIsRequiredError("vehicle")
	// ErrCourierIsNotConstructed is returned when using an improperly initialized Courier.
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier constructor")
)

// Courier is an actor holding at most one vehicle and a queue of orders to
// deliver.
//
// The courier never owns what it references: the vehicle and the queued
// orders belong to the depot and stay visible there. Removing an order from
// the queue does not remove it from the depot.
//
// Business rules:
//   - The name consists of letters and spaces only (see IsValidName)
//   - An order is queued only if a vehicle is assigned and the order weight
//     passes order.IsWeightValid
//   - A delivery run attempts every queued order once, in queue order, and
//     empties the queue whether each attempt succeeded or not
//
// Example usage:
//
//	c, _ := courier.NewCourier("Jean Dupont", nil)
//	_ = c.AssignVehicle(truck)
//	accepted, _ := c.AcceptOrder(o)
//	outcomes, _ := c.ExecuteDeliveries()
//	fmt.Println(courier.Report(outcomes))
type Courier struct {
	// id distinguishes couriers sharing a name
	id kernel.UUID
	// name is the display name
	name string
	// vehicle is a non-owning reference, nil when none is assigned
	vehicle vehicle.Vehicle
	// pending holds accepted orders in acceptance order
	pending []*order.Order
	// guard ensures the courier was properly constructed
	guard guard.ConstructorGuard
}

// NewCourier creates a courier, optionally bound to v (nil for none).
//
// Parameters:
//   - name: must pass IsValidName
//   - v: initial vehicle, or nil
//
// Returns:
//   - *Courier: a courier with an empty queue
//   - error: validation errors for the name or the vehicle
//
// Example:
//
//	c, err := courier.NewCourier("Jean Dupont", nil)
//	if err != nil {
//	    return err
//	}
func NewCourier(name string, v vehicle.Vehicle) (*Courier, error) {
	c := &Courier{
		id:    kernel.NewUUID(),
		guard: guard.NewConstructorGuard(),
	}

	var vehicleErr error
	if v != nil {
		vehicleErr = c.AssignVehicle(v)
	}

	if err := errors.Join(
		c.setName(name),
		vehicleErr,
	); err != nil {
		return nil, err
	}

	return c, nil
}

// FromRecord builds a courier from a loosely typed record such as
//
//	map[string]any{"name": "Jean Dupont", "vehicle": truck}
//
// The "vehicle" entry is optional; when absent (or nil) the courier starts
// without a vehicle.
func FromRecord(record map[string]any) (*Courier, error) {
	name, ok := record[RecordNameKey].(string)
	if !ok {
		return nil, ErrNameIsRequired
	}

	var v vehicle.Vehicle
	if raw, present := record[RecordVehicleKey]; present && raw != nil {
		if v, ok = raw.(vehicle.Vehicle); !ok {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				RecordVehicleKey,
				fmt.Errorf("%T is not a vehicle", raw),
			)
		}
	}

	return NewCourier(name, v)
}

// IsValidName reports whether name, once every space is removed, is a
// non-empty run of letters. Digits, punctuation and other whitespace make it
// invalid.
func IsValidName(name string) bool {
	stripped := strings.ReplaceAll(name, " ", "")
	if stripped == "" {
		return false
	}

	for _, r := range stripped {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// Report joins the outcome messages one per line, or returns
// NoOrdersToDeliver when there are none.
func Report(outcomes []vehicle.Outcome) string {
	if len(outcomes) == 0 {
		return NoOrdersToDeliver
	}

	lines := make([]string, 0, len(outcomes))
	for _, o := range outcomes {
		lines = append(lines, o.Message())
	}
	return strings.Join(lines, "\n")
}

// Validate checks that the courier was built by NewCourier.
func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}
	return c.guard.Validate(ErrCourierIsNotConstructed)
}

// IsEqual compares couriers by identity.
func (c *Courier) IsEqual(other *Courier) bool {
	if other == nil {
		return false
	}
	return c.id.IsEqual(other.id)
}

// ID returns the surrogate identifier.
func (c *Courier) ID() kernel.UUID {
	return c.id
}

// Name returns the display name.
func (c *Courier) Name() string {
	return c.name
}

// Vehicle returns the assigned vehicle, or nil.
func (c *Courier) Vehicle() vehicle.Vehicle {
	return c.vehicle
}

// HasVehicle reports whether a vehicle is assigned.
func (c *Courier) HasVehicle() bool {
	return c.vehicle != nil
}

// PendingOrders returns a copy of the queue.
func (c *Courier) PendingOrders() []*order.Order {
	out := make([]*order.Order, len(c.pending))
	copy(out, c.pending)
	return out
}

// PendingCount returns the queue length.
func (c *Courier) PendingCount() int {
	return len(c.pending)
}

// AssignVehicle replaces the current vehicle reference with v. Whether v is
// already used by another courier is not checked.
func (c *Courier) AssignVehicle(v vehicle.Vehicle) error {
	if v == nil {
		return ErrVehicleIsRequired
	}
	if err := v.Validate(); err != nil {
		return err
	}

	c.vehicle = v
	return nil
}

// AcceptOrder appends o to the queue and returns true when a vehicle is
// assigned and o's weight is valid. Otherwise the queue is left as is and
// false is returned. The order itself is never modified.
//
// An error is returned only if o was not built by order.NewOrder.
func (c *Courier) AcceptOrder(o *order.Order) (bool, error) {
	if err := o.Validate(); err != nil {
		return false, err
	}

	if c.vehicle == nil || !order.IsWeightValid(o.Weight()) {
		return false, nil
	}

	c.pending = append(c.pending, o)
	return true, nil
}

// ExecuteDeliveries hands every queued order, in queue order, to the
// assigned vehicle and returns one outcome per order.
//
// Each attempted order leaves the queue whatever the outcome: a rejected
// order stays Pending in the depot but is no longer queued and will not be
// retried. An empty queue yields an empty result.
//
// If the vehicle returns an error the run stops; the failing order and the
// ones after it stay queued.
func (c *Courier) ExecuteDeliveries() ([]vehicle.Outcome, error) {
	outcomes := make([]vehicle.Outcome, 0, len(c.pending))
	if c.vehicle == nil {
		return outcomes, nil
	}

	for len(c.pending) > 0 {
		outcome, err := c.vehicle.Deliver(c.pending[0])
		if err != nil {
			return outcomes, err
		}

		c.pending[0] = nil
		c.pending = c.pending[1:]
		outcomes = append(outcomes, outcome)
	}

	c.pending = nil
	return outcomes, nil
}

// String renders "Name - Vehicle (n pending orders)", with "No vehicle" when
// none is assigned.
func (c *Courier) String() string {
	vehicleInfo := "No vehicle"
	if c.vehicle != nil {
		vehicleInfo = c.vehicle.String()
	}

	return fmt.Sprintf("%s - %s (%s)", c.name, vehicleInfo, pendingLabel(len(c.pending)))
}

func pendingLabel(n int) string {
	if n == 1 {
		return "1 pending order"
	}
	return fmt.Sprintf("%d pending orders", n)
}

func (c *Courier) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameIsRequired
	}
	if !IsValidName(name) {
		return ErrNameIsInvalid
	}

	c.name = name
	return nil
}
