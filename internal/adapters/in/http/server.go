// Package http is the REST adapter of the back office: sales orders, purchases
// and the transition tables behind them.
package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"backoffice/internal/adapters/in/http/docs"
	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/application/usecases/queries"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/core/domain/model/purchase"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

type (
	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) error
	}
	ChangeOrderStatusHandler interface {
		Handle(ctx context.Context, cmd commands.ChangeOrderStatusCommand) error
	}
	ChangeOrderTrackingStatusHandler interface {
		Handle(ctx context.Context, cmd commands.ChangeOrderTrackingStatusCommand) error
	}
	CreatePurchaseHandler interface {
		Handle(ctx context.Context, cmd commands.CreatePurchaseCommand) error
	}
	ChangePurchaseStatusHandler interface {
		Handle(ctx context.Context, cmd commands.ChangePurchaseStatusCommand) error
	}
	PurgeActivityLogsHandler interface {
		Handle(ctx context.Context, cmd commands.PurgeActivityLogsCommand) (commands.PurgeActivityLogsResult, error)
	}

	ListOrdersHandler interface {
		Handle(ctx context.Context, query queries.ListOrdersQuery) (queries.ListOrdersQueryResponse, error)
	}
	GetOrderHandler interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (queries.GetOrderQueryResponse, error)
	}
	CountOrdersByStatusHandler interface {
		Handle(ctx context.Context, query queries.CountOrdersByStatusQuery) (map[order.Status]int64, error)
	}
	ListPurchasesHandler interface {
		Handle(ctx context.Context, query queries.ListPurchasesQuery) (queries.ListPurchasesQueryResponse, error)
	}
	GetPurchaseHandler interface {
		Handle(ctx context.Context, query queries.GetPurchaseQuery) (queries.GetPurchaseQueryResponse, error)
	}
	CountPurchasesByStatusHandler interface {
		Handle(ctx context.Context, query queries.CountPurchasesByStatusQuery) (map[purchase.Status]int64, error)
	}
)

// Handlers groups the use cases served over HTTP. Metrics is optional.
type Handlers struct {
	CreateOrder               CreateOrderHandler
	ChangeOrderStatus         ChangeOrderStatusHandler
	ChangeOrderTrackingStatus ChangeOrderTrackingStatusHandler
	ListOrders                ListOrdersHandler
	GetOrder                  GetOrderHandler
	CountOrdersByStatus       CountOrdersByStatusHandler

	CreatePurchase         CreatePurchaseHandler
	ChangePurchaseStatus   ChangePurchaseStatusHandler
	ListPurchases          ListPurchasesHandler
	GetPurchase            GetPurchaseHandler
	CountPurchasesByStatus CountPurchasesByStatusHandler

	PurgeActivityLogs PurgeActivityLogsHandler

	Metrics http.Handler
}

// Server translates HTTP requests into commands and queries.
type Server struct {
	h      Handlers
	now    func() time.Time
	logger *slog.Logger
}

func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{h: handlers, now: time.Now, logger: logger.With("component", "http")}
}

// NewEcho returns an echo instance with validation, panic recovery and request
// logging through logger.
func NewEcho(logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = NewRequestValidator()

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			logger.LogAttrs(c.Request().Context(), level, "request",
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency))
			return nil
		},
	}))
	return e
}

var _ ServerInterface = (*Server)(nil)

// Register mounts the operational routes, the swagger UI and every API
// operation on e. API requests are checked against the OpenAPI document first.
func (s *Server) Register(e *echo.Echo) error {
	doc, err := docs.Load()
	if err != nil {
		return err
	}
	validate, err := OpenAPIValidator(doc)
	if err != nil {
		return err
	}

	e.HTTPErrorHandler = s.handleError

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	if s.h.Metrics != nil {
		e.GET("/metrics", echo.WrapHandler(s.h.Metrics))
	}
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	RegisterHandlers(e.Group("", validate), s, "")
	return nil
}

// bind decodes and validates the request body into req.
func bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return err
	}
	return c.Validate(req)
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
