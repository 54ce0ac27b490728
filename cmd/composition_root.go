package cmd

import (
	"log/slog"

	"backoffice/internal/adapters/in/http"
	"backoffice/internal/adapters/out/metrics"
	"backoffice/internal/adapters/out/postgres"
	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/application/usecases/queries"
	"backoffice/internal/core/ports"
	"backoffice/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	metrics    *metrics.Collector
	logger     *slog.Logger
}

func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	publisher ports.StatusEventPublisher,
	collector *metrics.Collector,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, publisher, logger),
		metrics:    collector,
		logger:     logger,
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) purchaseUoWFactory() commands.PurchaseUoWFactory {
	return FuncPurchaseUoWFactory(func() commands.PurchaseUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.orderUoWFactory(), c.metrics)
}

func (c *CompositionRoot) CreateChangeOrderTrackingStatusCommandHandler() commands.ChangeOrderTrackingStatusCommandHandler {
	return commands.NewChangeOrderTrackingStatusCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCreatePurchaseCommandHandler() commands.CreatePurchaseCommandHandler {
	return commands.NewCreatePurchaseCommandHandler(c.purchaseUoWFactory())
}

func (c *CompositionRoot) CreateChangePurchaseStatusCommandHandler() commands.ChangePurchaseStatusCommandHandler {
	return commands.NewChangePurchaseStatusCommandHandler(c.purchaseUoWFactory(), c.metrics)
}

func (c *CompositionRoot) CreatePurgeActivityLogsCommandHandler() commands.PurgeActivityLogsCommandHandler {
	var f commands.ActivityLogUoWFactory = FuncActivityLogUoWFactory(func() commands.ActivityLogUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPurgeActivityLogsCommandHandler(f, c.metrics)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateCountOrdersByStatusQueryHandler() queries.CountOrdersByStatusQueryHandler {
	return queries.NewCountOrdersByStatusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListPurchasesQueryHandler() queries.ListPurchasesQueryHandler {
	return queries.NewListPurchasesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPurchaseQueryHandler() queries.GetPurchaseQueryHandler {
	return queries.NewGetPurchaseQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateCountPurchasesByStatusQueryHandler() queries.CountPurchasesByStatusQueryHandler {
	return queries.NewCountPurchasesByStatusQueryHandler(c.gormDB)
}

// HTTPHandlers wires every use case served by the REST adapter.
func (c *CompositionRoot) HTTPHandlers() http.Handlers {
	return http.Handlers{
		CreateOrder:               c.CreateCreateOrderCommandHandler(),
		ChangeOrderStatus:         c.CreateChangeOrderStatusCommandHandler(),
		ChangeOrderTrackingStatus: c.CreateChangeOrderTrackingStatusCommandHandler(),
		ListOrders:                c.CreateListOrdersQueryHandler(),
		GetOrder:                  c.CreateGetOrderQueryHandler(),
		CountOrdersByStatus:       c.CreateCountOrdersByStatusQueryHandler(),

		CreatePurchase:         c.CreateCreatePurchaseCommandHandler(),
		ChangePurchaseStatus:   c.CreateChangePurchaseStatusCommandHandler(),
		ListPurchases:          c.CreateListPurchasesQueryHandler(),
		GetPurchase:            c.CreateGetPurchaseQueryHandler(),
		CountPurchasesByStatus: c.CreateCountPurchasesByStatusQueryHandler(),

		PurgeActivityLogs: c.CreatePurgeActivityLogsCommandHandler(),
	}
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreatePurgeActivityLogsCommandHandler(), jobs.RetentionConfig{
		Schedule:   c.config.RetentionCron,
		Days:       c.config.RetentionDays,
		BatchSize:  c.config.RetentionBatchSize,
		MaxBatches: c.config.RetentionMaxBatches,
		DryRun:     c.config.RetentionDryRun,
	}, c.logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncPurchaseUoWFactory func() commands.PurchaseUoW

func (f FuncPurchaseUoWFactory) Create() commands.PurchaseUoW {
	return f()
}

type FuncActivityLogUoWFactory func() commands.ActivityLogUoW

func (f FuncActivityLogUoWFactory) Create() commands.ActivityLogUoW {
	return f()
}
