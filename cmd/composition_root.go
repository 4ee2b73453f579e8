package cmd

import (
	httpadapter "depot/internal/adapters/in/http"
	"depot/internal/adapters/out/memory"
	"depot/internal/core/application/usecases/commands"
	"depot/internal/core/application/usecases/queries"
	"depot/internal/jobs"

	"go.uber.org/zap"
)

type CompositionRoot struct {
	config     Config
	uowFactory *memory.UnitOfWorkFactory
	logger     *zap.Logger
}

func NewCompositionRoot(config Config, store *memory.Store, logger *zap.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		uowFactory: memory.NewUnitOfWorkFactory(store),
		logger:     logger,
	}
}

func (c *CompositionRoot) commandFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) queryFactory() queries.ReadUoWFactory {
	return FuncReadUoWFactory(func() queries.ReadUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateAddVehicleCommandHandler() commands.AddVehicleCommandHandler {
	return commands.NewAddVehicleCommandHandler(c.commandFactory())
}

func (c *CompositionRoot) CreateAddCourierCommandHandler() commands.AddCourierCommandHandler {
	return commands.NewAddCourierCommandHandler(c.commandFactory())
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.commandFactory())
}

func (c *CompositionRoot) CreateAssignVehicleCommandHandler() commands.AssignVehicleCommandHandler {
	return commands.NewAssignVehicleCommandHandler(c.commandFactory())
}

func (c *CompositionRoot) CreateAcceptOrderCommandHandler() commands.AcceptOrderCommandHandler {
	return commands.NewAcceptOrderCommandHandler(c.commandFactory())
}

func (c *CompositionRoot) CreateExecuteDeliveriesCommandHandler() commands.ExecuteDeliveriesCommandHandler {
	return commands.NewExecuteDeliveriesCommandHandler(c.commandFactory())
}

func (c *CompositionRoot) CreateRunDeliveryRoundCommandHandler() commands.RunDeliveryRoundCommandHandler {
	return commands.NewRunDeliveryRoundCommandHandler(c.commandFactory())
}

func (c *CompositionRoot) CreateGetAllVehiclesQueryHandler() queries.GetAllVehiclesQueryHandler {
	return queries.NewGetAllVehiclesQueryHandler(c.queryFactory())
}

func (c *CompositionRoot) CreateGetAllCouriersQueryHandler() queries.GetAllCouriersQueryHandler {
	return queries.NewGetAllCouriersQueryHandler(c.queryFactory())
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.queryFactory())
}

func (c *CompositionRoot) CreateGetDepotStateQueryHandler() queries.GetDepotStateQueryHandler {
	return queries.NewGetDepotStateQueryHandler(c.queryFactory())
}

// CreateHTTPHandlers gathers every use case the HTTP API exposes.
func (c *CompositionRoot) CreateHTTPHandlers() httpadapter.Handlers {
	return httpadapter.Handlers{
		AddVehicle:        c.CreateAddVehicleCommandHandler(),
		AddCourier:        c.CreateAddCourierCommandHandler(),
		CreateOrder:       c.CreateCreateOrderCommandHandler(),
		AssignVehicle:     c.CreateAssignVehicleCommandHandler(),
		AcceptOrder:       c.CreateAcceptOrderCommandHandler(),
		ExecuteDeliveries: c.CreateExecuteDeliveriesCommandHandler(),
		RunDeliveryRound:  c.CreateRunDeliveryRoundCommandHandler(),
		GetAllVehicles:    c.CreateGetAllVehiclesQueryHandler(),
		GetAllCouriers:    c.CreateGetAllCouriersQueryHandler(),
		GetAllOrders:      c.CreateGetAllOrdersQueryHandler(),
		GetDepotState:     c.CreateGetDepotStateQueryHandler(),
	}
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateRunDeliveryRoundCommandHandler(),
		c.CreateGetDepotStateQueryHandler(),
		jobs.Schedules{
			DeliveryRound: c.config.DeliveryRoundSchedule,
			StateReport:   c.config.StateReportSchedule,
		},
		c.logger,
	)
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncReadUoWFactory func() queries.ReadUoW

func (f FuncReadUoWFactory) Create() queries.ReadUoW {
	return f()
}
