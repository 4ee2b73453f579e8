package http

import (
	"depot/internal/core/application/usecases/commands"
	"depot/internal/core/application/usecases/queries"
)

// Error is the body of every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Created reports the list position of a newly added item.
type Created struct {
	Position int `json:"position"`
}

// NewVehicle is the body of POST /vehicles.
type NewVehicle struct {
	Kind         string  `json:"kind"`
	Make         string  `json:"make"`
	Model        string  `json:"model"`
	Registration string  `json:"registration"`
	Attribute    float64 `json:"attribute"`
}

// NewCourier is the body of POST /couriers.
type NewCourier struct {
	Name string `json:"name"`
}

// NewOrder is the body of POST /orders.
type NewOrder struct {
	ID          string  `json:"id"`
	Destination string  `json:"destination"`
	Weight      float64 `json:"weight"`
}

// Assignment is the body of POST /assignments. A missing field means nothing
// was selected.
type Assignment struct {
	Courier *int `json:"courier"`
	Vehicle *int `json:"vehicle"`
}

// CourierSelection is the body of POST /deliveries.
type CourierSelection struct {
	Courier *int `json:"courier"`
}

// OrderSelection is the body of POST /couriers/{courierIndex}/orders.
type OrderSelection struct {
	Order *int `json:"order"`
}

// Vehicle is an item of GET /vehicles.
type Vehicle struct {
	Position       int      `json:"position"`
	ID             string   `json:"id"`
	Kind           string   `json:"kind"`
	Make           string   `json:"make"`
	Model          string   `json:"model"`
	Registration   string   `json:"registration"`
	CapacityTonnes *float64 `json:"capacityTonnes,omitempty"`
	MaxSpeedKmh    *float64 `json:"maxSpeedKmh,omitempty"`
	Description    string   `json:"description"`
}

// Courier is an item of GET /couriers.
type Courier struct {
	Position        int      `json:"position"`
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Vehicle         string   `json:"vehicle,omitempty"`
	VehiclePosition *int     `json:"vehiclePosition,omitempty"`
	PendingOrders   []string `json:"pendingOrders"`
	Description     string   `json:"description"`
}

// Order is an item of GET /orders.
type Order struct {
	Position    int     `json:"position"`
	ID          string  `json:"id"`
	Destination string  `json:"destination"`
	Weight      float64 `json:"weight"`
	Status      string  `json:"status"`
}

// DeliveryReport is the result of one courier's delivery run.
type DeliveryReport struct {
	CourierPosition int      `json:"courierPosition"`
	CourierName     string   `json:"courierName"`
	Delivered       int      `json:"delivered"`
	Rejected        int      `json:"rejected"`
	Messages        []string `json:"messages"`
	Report          string   `json:"report"`
}

func toVehicle(v queries.GetAllVehiclesQueryResponse) Vehicle {
	return Vehicle{
		Position:       v.Position,
		ID:             v.ID.String(),
		Kind:           v.Kind,
		Make:           v.Make,
		Model:          v.Model,
		Registration:   v.Registration,
		CapacityTonnes: v.CapacityTonnes,
		MaxSpeedKmh:    v.MaxSpeedKmh,
		Description:    v.Description,
	}
}

func toCourier(c queries.GetAllCouriersQueryResponse) Courier {
	return Courier{
		Position:        c.Position,
		ID:              c.ID.String(),
		Name:            c.Name,
		Vehicle:         c.Vehicle,
		VehiclePosition: c.VehiclePosition,
		PendingOrders:   c.PendingOrderIDs,
		Description:     c.Description,
	}
}

func toOrder(o queries.GetAllOrdersQueryResponse) Order {
	return Order{
		Position:    o.Position,
		ID:          o.ID,
		Destination: o.Destination,
		Weight:      o.Weight,
		Status:      o.Status,
	}
}

func toDeliveryReport(r commands.DeliveryReport) DeliveryReport {
	return DeliveryReport{
		CourierPosition: r.CourierPosition,
		CourierName:     r.CourierName,
		Delivered:       r.Delivered,
		Rejected:        r.Rejected,
		Messages:        r.Messages,
		Report:          r.Report,
	}
}
