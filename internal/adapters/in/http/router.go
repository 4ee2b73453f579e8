// Package http exposes the depot use cases over a JSON API served by echo.
package http

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

// NewEcho builds the echo instance serving s. Requests are logged through
// logger; echo's own logger is silenced.
func NewEcho(s *Server, logger *zap.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(log.OFF)

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
			}

			if v.Error != nil {
				logger.Error("request", append(fields, zap.Error(v.Error))...)
				return nil
			}
			logger.Info("request", fields...)
			return nil
		},
	}))

	RegisterRoutes(e, s)
	return e
}

// RegisterRoutes mounts every endpoint of s on e.
func RegisterRoutes(e *echo.Echo, s *Server) {
	e.GET("/health", s.GetHealth)
	e.GET("/openapi.json", s.GetAPIDocument)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	e.GET("/vehicles", s.ListVehicles)
	e.POST("/vehicles", s.AddVehicle)

	e.GET("/couriers", s.ListCouriers)
	e.POST("/couriers", s.AddCourier)
	e.POST("/couriers/:courierIndex/orders", s.AcceptOrder)

	e.GET("/orders", s.ListOrders)
	e.POST("/orders", s.CreateOrder)

	e.POST("/assignments", s.AssignVehicle)

	e.POST("/deliveries", s.ExecuteDeliveries)
	e.POST("/deliveries/rounds", s.RunDeliveryRound)

	e.GET("/state", s.GetState)
}
