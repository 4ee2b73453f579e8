package depot

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"depot/internal/core/domain/model/courier"
	"depot/internal/core/domain/model/order"
	"depot/internal/core/domain/model/vehicle"
	"depot/internal/pkg/errs"
	"depot/internal/pkg/guard"
)

// ErrDepotIsNotConstructed is returned when a Depot was not built by NewDepot.
var ErrDepotIsNotConstructed = errors.New("Depot must be created via NewDepot constructor")

// Depot is the aggregate root owning every vehicle, courier and order.
//
// Collections keep insertion order and are append-only. Nothing is ever
// removed: delivered orders stay in the order list with their final status.
// Duplicate registrations, names or order ids are accepted.
//
// Couriers reference vehicles and orders owned here; the depot is the only
// place they are created and stored.
type Depot struct {
	vehicles []vehicle.Vehicle
	couriers []*courier.Courier
	orders   []*order.Order

	guard guard.ConstructorGuard
}

// NewDepot returns an empty depot.
func NewDepot() *Depot {
	return &Depot{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the depot was built by NewDepot.
func (d *Depot) Validate() error {
	if d == nil {
		return ErrDepotIsNotConstructed
	}
	return d.guard.Validate(ErrDepotIsNotConstructed)
}

// AddVehicle appends v and returns its position.
func (d *Depot) AddVehicle(v vehicle.Vehicle) (int, error) {
	if v == nil {
		return 0, errs.NewValueIsRequiredError("vehicle")
	}
	if err := v.Validate(); err != nil {
		return 0, err
	}

	d.vehicles = append(d.vehicles, v)
	return len(d.vehicles) - 1, nil
}

// AddCourier appends c and returns its position.
func (d *Depot) AddCourier(c *courier.Courier) (int, error) {
	if err := c.Validate(); err != nil {
		return 0, err
	}

	d.couriers = append(d.couriers, c)
	return len(d.couriers) - 1, nil
}

// AddOrder appends o and returns its position.
func (d *Depot) AddOrder(o *order.Order) (int, error) {
	if err := o.Validate(); err != nil {
		return 0, err
	}

	d.orders = append(d.orders, o)
	return len(d.orders) - 1, nil
}

// AssignVehicle points c at v, replacing whatever c had. Neither argument has
// to belong to this depot and v may already be used by another courier.
func (d *Depot) AssignVehicle(c *courier.Courier, v vehicle.Vehicle) error {
	if err := c.Validate(); err != nil {
		return err
	}
	return c.AssignVehicle(v)
}

// Vehicles returns the vehicles in insertion order.
func (d *Depot) Vehicles() []vehicle.Vehicle {
	out := make([]vehicle.Vehicle, len(d.vehicles))
	copy(out, d.vehicles)
	return out
}

// Couriers returns the couriers in insertion order.
func (d *Depot) Couriers() []*courier.Courier {
	out := make([]*courier.Courier, len(d.couriers))
	copy(out, d.couriers)
	return out
}

// Orders returns every order ever added, in insertion order.
func (d *Depot) Orders() []*order.Order {
	out := make([]*order.Order, len(d.orders))
	copy(out, d.orders)
	return out
}

// PendingOrders returns the orders whose status is still Pending.
func (d *Depot) PendingOrders() []*order.Order {
	var out []*order.Order
	for _, o := range d.orders {
		if o.Status().IsPending() {
			out = append(out, o)
		}
	}
	return out
}

// Vehicle returns the vehicle at position i.
func (d *Depot) Vehicle(i int) (vehicle.Vehicle, error) {
	if err := checkIndex("vehicle", i, len(d.vehicles)); err != nil {
		return nil, err
	}
	return d.vehicles[i], nil
}

// Courier returns the courier at position i.
func (d *Depot) Courier(i int) (*courier.Courier, error) {
	if err := checkIndex("courier", i, len(d.couriers)); err != nil {
		return nil, err
	}
	return d.couriers[i], nil
}

// Order returns the order at position i.
func (d *Depot) Order(i int) (*order.Order, error) {
	if err := checkIndex("order", i, len(d.orders)); err != nil {
		return nil, err
	}
	return d.orders[i], nil
}

// RenderState returns a text snapshot of the depot:
//
//	=== Depot state ===
//
//	Vehicles:
//	Renault Truck (AB-123-CD)
//
//	Couriers:
//	Jean Dupont - No vehicle (0 pending orders)
//
//	Pending orders:
//	CMD001 - Paris (5kg)
//
// Only Pending orders are listed. Rendering does not modify anything.
func (d *Depot) RenderState() string {
	var b strings.Builder

	b.WriteString("=== Depot state ===\n")

	b.WriteString("\nVehicles:\n")
	writeLines(&b, d.vehicles, func(v vehicle.Vehicle) string { return v.String() })

	b.WriteString("\n\nCouriers:\n")
	writeLines(&b, d.couriers, func(c *courier.Courier) string { return c.String() })

	b.WriteString("\n\nPending orders:\n")
	writeLines(&b, d.PendingOrders(), func(o *order.Order) string {
		return fmt.Sprintf("%s - %s (%skg)", o.ID(), o.Destination(), vehicle.FormatNumber(o.Weight()))
	})

	return b.String()
}

func writeLines[T any](b *strings.Builder, items []T, render func(T) string) {
	for i, item := range items {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(render(item))
	}
}

func checkIndex(paramName string, i, length int) error {
	if i < 0 || i >= length {
		return errs.NewObjectNotFoundErrorWithCause(
			paramName,
			strconv.Itoa(i),
			fmt.Errorf("depot holds %d %s(s)", length, paramName),
		)
	}
	return nil
}
