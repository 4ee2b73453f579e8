package http

import (
	"errors"
	"net/http"

	"depot/internal/core/application/usecases/commands"
	"depot/internal/core/application/usecases/queries"
	"depot/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	"go.uber.org/zap"
)

// Handlers groups the use cases the HTTP API exposes.
type Handlers struct {
	AddVehicle        commands.AddVehicleCommandHandler
	AddCourier        commands.AddCourierCommandHandler
	CreateOrder       commands.CreateOrderCommandHandler
	AssignVehicle     commands.AssignVehicleCommandHandler
	AcceptOrder       commands.AcceptOrderCommandHandler
	ExecuteDeliveries commands.ExecuteDeliveriesCommandHandler
	RunDeliveryRound  commands.RunDeliveryRoundCommandHandler

	GetAllVehicles queries.GetAllVehiclesQueryHandler
	GetAllCouriers queries.GetAllCouriersQueryHandler
	GetAllOrders   queries.GetAllOrdersQueryHandler
	GetDepotState  queries.GetDepotStateQueryHandler
}

// Server translates HTTP requests into commands and queries.
type Server struct {
	handlers Handlers
	apiDoc   *APIDoc
	logger   *zap.Logger
}

// NewServer creates a server over the given use cases.
func NewServer(handlers Handlers, apiDoc *APIDoc, logger *zap.Logger) *Server {
	return &Server{
		handlers: handlers,
		apiDoc:   apiDoc,
		logger:   logger,
	}
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// GetAPIDocument handles GET /openapi.json.
func (s *Server) GetAPIDocument(ctx echo.Context) error {
	return ctx.JSONBlob(http.StatusOK, s.apiDoc.JSON())
}

// ListVehicles handles GET /vehicles.
func (s *Server) ListVehicles(ctx echo.Context) error {
	vehicles, err := s.handlers.GetAllVehicles.Handle(ctx.Request().Context(), queries.NewGetAllVehiclesQuery())
	if err != nil {
		return s.writeError(ctx, err)
	}

	response := make([]Vehicle, len(vehicles))
	for i, v := range vehicles {
		response[i] = toVehicle(v)
	}

	return ctx.JSON(http.StatusOK, response)
}

// AddVehicle handles POST /vehicles.
func (s *Server) AddVehicle(ctx echo.Context) error {
	var body NewVehicle
	if err := s.apiDoc.bindBody(ctx, "NewVehicle", &body); err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewAddVehicleCommand(body.Kind, body.Make, body.Model, body.Registration, body.Attribute)
	if err != nil {
		return s.writeError(ctx, err)
	}

	position, err := s.handlers.AddVehicle.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{Position: position})
}

// ListCouriers handles GET /couriers.
func (s *Server) ListCouriers(ctx echo.Context) error {
	couriers, err := s.handlers.GetAllCouriers.Handle(ctx.Request().Context(), queries.NewGetAllCouriersQuery())
	if err != nil {
		return s.writeError(ctx, err)
	}

	response := make([]Courier, len(couriers))
	for i, c := range couriers {
		response[i] = toCourier(c)
	}

	return ctx.JSON(http.StatusOK, response)
}

// AddCourier handles POST /couriers.
func (s *Server) AddCourier(ctx echo.Context) error {
	var body NewCourier
	if err := s.apiDoc.bindBody(ctx, "NewCourier", &body); err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewAddCourierCommand(body.Name)
	if err != nil {
		return s.writeError(ctx, err)
	}

	position, err := s.handlers.AddCourier.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{Position: position})
}

// AcceptOrder handles POST /couriers/{courierIndex}/orders.
func (s *Server) AcceptOrder(ctx echo.Context) error {
	var courierIndex int
	err := runtime.BindStyledParameterWithOptions(
		"simple", "courierIndex", ctx.Param("courierIndex"), &courierIndex,
		runtime.BindStyledParameterOptions{
			ParamLocation: runtime.ParamLocationPath,
			Explode:       false,
			Required:      true,
		},
	)
	if err != nil {
		return s.writeError(ctx, &requestError{cause: err})
	}

	var body OrderSelection
	if err = s.apiDoc.bindBody(ctx, "OrderSelection", &body); err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewAcceptOrderCommand(&courierIndex, body.Order)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.handlers.AcceptOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ListOrders handles GET /orders, optionally filtered with ?pending=true.
func (s *Server) ListOrders(ctx echo.Context) error {
	var pending *bool
	if err := runtime.BindQueryParameter("form", true, false, "pending", ctx.QueryParams(), &pending); err != nil {
		return s.writeError(ctx, &requestError{cause: err})
	}

	query := queries.NewGetAllOrdersQuery(pending != nil && *pending)
	orders, err := s.handlers.GetAllOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	response := make([]Order, len(orders))
	for i, o := range orders {
		response[i] = toOrder(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body NewOrder
	if err := s.apiDoc.bindBody(ctx, "NewOrder", &body); err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(body.ID, body.Destination, body.Weight)
	if err != nil {
		return s.writeError(ctx, err)
	}

	position, err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{Position: position})
}

// AssignVehicle handles POST /assignments.
func (s *Server) AssignVehicle(ctx echo.Context) error {
	var body Assignment
	if err := s.apiDoc.bindBody(ctx, "Assignment", &body); err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewAssignVehicleCommand(body.Courier, body.Vehicle)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.handlers.AssignVehicle.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ExecuteDeliveries handles POST /deliveries.
func (s *Server) ExecuteDeliveries(ctx echo.Context) error {
	var body CourierSelection
	if err := s.apiDoc.bindBody(ctx, "CourierSelection", &body); err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewExecuteDeliveriesCommand(body.Courier)
	if err != nil {
		return s.writeError(ctx, err)
	}

	report, err := s.handlers.ExecuteDeliveries.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toDeliveryReport(report))
}

// RunDeliveryRound handles POST /deliveries/rounds.
func (s *Server) RunDeliveryRound(ctx echo.Context) error {
	reports, err := s.handlers.RunDeliveryRound.Handle(ctx.Request().Context(), commands.NewRunDeliveryRoundCommand())
	if err != nil {
		return s.writeError(ctx, err)
	}

	response := make([]DeliveryReport, len(reports))
	for i, r := range reports {
		response[i] = toDeliveryReport(r)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetState handles GET /state.
func (s *Server) GetState(ctx echo.Context) error {
	state, err := s.handlers.GetDepotState.Handle(ctx.Request().Context(), queries.NewGetDepotStateQuery())
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.String(http.StatusOK, state)
}

func (s *Server) writeError(ctx echo.Context, err error) error {
	code := statusFor(err)

	message := err.Error()
	if code == http.StatusInternalServerError {
		s.logger.Error("request failed",
			zap.String("method", ctx.Request().Method),
			zap.String("path", ctx.Path()),
			zap.Error(err),
		)
		message = http.StatusText(code)
	}

	return ctx.JSON(code, Error{Code: code, Message: message})
}

// statusFor maps use case errors onto HTTP status codes.
func statusFor(err error) int {
	var reqErr *requestError

	switch {
	case errors.As(err, &reqErr),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, commands.ErrCourierHasNoVehicle),
		errors.Is(err, commands.ErrNoPendingOrders):
		return http.StatusConflict
	case errors.Is(err, commands.ErrOrderNotAccepted):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
