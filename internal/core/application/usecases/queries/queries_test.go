package queries_test

import (
	"context"
	"testing"

	"depot/internal/adapters/out/memory"
	"depot/internal/core/application/usecases/queries"
	"depot/internal/core/domain/model/courier"
	"depot/internal/core/domain/model/depot"
	"depot/internal/core/domain/model/order"
	"depot/internal/core/domain/model/vehicle"
	"depot/internal/core/ports"

	"github.com/stretchr/testify/suite"
)

type readFactory struct {
	factory ports.UnitOfWorkFactory
}

func (f readFactory) Create() queries.ReadUoW {
	return f.factory.Create()
}

type QueryHandlersTestSuite struct {
	suite.Suite
	depot   *depot.Depot
	factory queries.ReadUoWFactory

	truck *vehicle.Truck
	bike  *vehicle.Motorbike
	jean  *courier.Courier
	cmd1  *order.Order
	cmd2  *order.Order
}

func (suite *QueryHandlersTestSuite) SetupTest() {
	suite.depot = depot.NewDepot()

	store, err := memory.NewStore(suite.depot)
	suite.Require().NoError(err)
	suite.factory = readFactory{factory: memory.NewUnitOfWorkFactory(store)}

	suite.truck, err = vehicle.NewTruck("Renault", "Truck", "AB-123-CD", 10)
	suite.Require().NoError(err)
	suite.bike, err = vehicle.NewMotorbike("Yamaha", "MT-07", "XYZ-987", 120)
	suite.Require().NoError(err)
	suite.jean, err = courier.NewCourier("Jean Dupont", nil)
	suite.Require().NoError(err)
	suite.cmd1, err = order.NewOrder("CMD001", "Paris", 5)
	suite.Require().NoError(err)
	suite.cmd2, err = order.NewOrder("CMD002", "Lyon", 8)
	suite.Require().NoError(err)

	_, err = suite.depot.AddVehicle(suite.truck)
	suite.Require().NoError(err)
	_, err = suite.depot.AddVehicle(suite.bike)
	suite.Require().NoError(err)
	_, err = suite.depot.AddCourier(suite.jean)
	suite.Require().NoError(err)
	_, err = suite.depot.AddOrder(suite.cmd1)
	suite.Require().NoError(err)
	_, err = suite.depot.AddOrder(suite.cmd2)
	suite.Require().NoError(err)
}

func (suite *QueryHandlersTestSuite) TestGetAllVehicles_ReturnsKindSpecificAttributes() {
	handler := queries.NewGetAllVehiclesQueryHandler(suite.factory)

	result, err := handler.Handle(context.Background(), queries.NewGetAllVehiclesQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)

	suite.Equal(0, result[0].Position)
	suite.Equal(suite.truck.ID(), result[0].ID)
	suite.Equal("Truck", result[0].Kind)
	suite.Equal("Renault Truck (AB-123-CD)", result[0].Description)
	suite.Require().NotNil(result[0].CapacityTonnes)
	suite.InDelta(10.0, *result[0].CapacityTonnes, 0)
	suite.Nil(result[0].MaxSpeedKmh)

	suite.Equal("Motorbike", result[1].Kind)
	suite.Equal("XYZ-987", result[1].Registration)
	suite.Require().NotNil(result[1].MaxSpeedKmh)
	suite.InDelta(120.0, *result[1].MaxSpeedKmh, 0)
	suite.Nil(result[1].CapacityTonnes)
}

func (suite *QueryHandlersTestSuite) TestGetAllCouriers_WithoutVehicle() {
	handler := queries.NewGetAllCouriersQueryHandler(suite.factory)

	result, err := handler.Handle(context.Background(), queries.NewGetAllCouriersQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal("Jean Dupont", result[0].Name)
	suite.Equal(suite.jean.ID(), result[0].ID)
	suite.Empty(result[0].Vehicle)
	suite.Nil(result[0].VehiclePosition)
	suite.Empty(result[0].PendingOrderIDs)
	suite.Equal("Jean Dupont - No vehicle (0 pending orders)", result[0].Description)
}

func (suite *QueryHandlersTestSuite) TestGetAllCouriers_WithVehicleAndQueue() {
	suite.Require().NoError(suite.depot.AssignVehicle(suite.jean, suite.bike))
	_, err := suite.jean.AcceptOrder(suite.cmd2)
	suite.Require().NoError(err)

	handler := queries.NewGetAllCouriersQueryHandler(suite.factory)
	result, err := handler.Handle(context.Background(), queries.NewGetAllCouriersQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal("Yamaha MT-07 (XYZ-987)", result[0].Vehicle)
	suite.Require().NotNil(result[0].VehiclePosition)
	suite.Equal(1, *result[0].VehiclePosition)
	suite.Equal([]string{"CMD002"}, result[0].PendingOrderIDs)
}

func (suite *QueryHandlersTestSuite) TestGetAllOrders_IncludesDeliveredUnlessFiltered() {
	suite.Require().NoError(suite.cmd1.MarkDelivered())
	handler := queries.NewGetAllOrdersQueryHandler(suite.factory)

	all, err := handler.Handle(context.Background(), queries.NewGetAllOrdersQuery(false))
	suite.Require().NoError(err)
	suite.Require().Len(all, 2)
	suite.Equal("Delivered", all[0].Status)
	suite.Equal("Pending", all[1].Status)
	suite.Equal("Lyon", all[1].Destination)
	suite.InDelta(8.0, all[1].Weight, 0)

	pending, err := handler.Handle(context.Background(), queries.NewGetAllOrdersQuery(true))
	suite.Require().NoError(err)
	suite.Require().Len(pending, 1)
	suite.Equal("CMD002", pending[0].ID)
	suite.Equal(1, pending[0].Position)
}

func (suite *QueryHandlersTestSuite) TestGetDepotState_RendersVerbatim() {
	handler := queries.NewGetDepotStateQueryHandler(suite.factory)

	state, err := handler.Handle(context.Background(), queries.NewGetDepotStateQuery())

	suite.Require().NoError(err)
	suite.Equal(suite.depot.RenderState(), state)
	suite.Contains(state, "CMD001 - Paris (5kg)")
}

func (suite *QueryHandlersTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	_, err := queries.NewGetAllVehiclesQueryHandler(suite.factory).Handle(context.Background(), queries.GetAllVehiclesQuery{})
	suite.Require().ErrorIs(err, queries.ErrGetAllVehiclesQueryIsNotConstructed)

	_, err = queries.NewGetAllCouriersQueryHandler(suite.factory).Handle(context.Background(), queries.GetAllCouriersQuery{})
	suite.Require().ErrorIs(err, queries.ErrGetAllCouriersQueryIsNotConstructed)

	_, err = queries.NewGetAllOrdersQueryHandler(suite.factory).Handle(context.Background(), queries.GetAllOrdersQuery{})
	suite.Require().ErrorIs(err, queries.ErrGetAllOrdersQueryIsNotConstructed)

	_, err = queries.NewGetDepotStateQueryHandler(suite.factory).Handle(context.Background(), queries.GetDepotStateQuery{})
	suite.Require().ErrorIs(err, queries.ErrGetDepotStateQueryIsNotConstructed)
}

func (suite *QueryHandlersTestSuite) TestHandle_ContextCancellation_ReturnsError() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := queries.NewGetAllOrdersQueryHandler(suite.factory).Handle(ctx, queries.NewGetAllOrdersQuery(false))

	suite.Require().Error(err)
	suite.Nil(result)
}

func (suite *QueryHandlersTestSuite) TestHandle_ReleasesDepotAfterRead() {
	handler := queries.NewGetDepotStateQueryHandler(suite.factory)

	for i := 0; i < 3; i++ {
		_, err := handler.Handle(context.Background(), queries.NewGetDepotStateQuery())
		suite.Require().NoError(err)
	}
}

func TestQueryHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(QueryHandlersTestSuite))
}
