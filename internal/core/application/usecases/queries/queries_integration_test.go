package queries_test

import (
	"context"
	"testing"
	"time"

	"backoffice/internal/adapters/out/postgres/orderrepo"
	"backoffice/internal/adapters/out/postgres/purchaserepo"
	"backoffice/internal/adapters/out/postgres/statushistory"
	"backoffice/internal/core/application/usecases/queries"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/core/domain/model/purchase"
	"backoffice/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type nopTracker struct{}

func (nopTracker) TrackAggregate(kernel.UUID, any) {}

type QueriesIntegrationTestSuite struct {
	suite.Suite
	container    *postgres.PostgresContainer
	db           *gorm.DB
	orderRepo    *orderrepo.GormOrderRepository
	purchaseRepo *purchaserepo.GormPurchaseRepository
	base         time.Time
}

func (suite *QueriesIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderLineDTO{},
		&purchaserepo.PurchaseDTO{},
		&purchaserepo.PurchaseLineDTO{},
		&statushistory.EntryDTO{},
	)
	suite.Require().NoError(err)

	suite.orderRepo = orderrepo.NewGormOrderRepository(db, nopTracker{})
	suite.purchaseRepo = purchaserepo.NewGormPurchaseRepository(db, nopTracker{})
}

func (suite *QueriesIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *QueriesIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_lines, purchases, purchase_lines, status_history").Error
	suite.Require().NoError(err)
	suite.base = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
}

func (suite *QueriesIntegrationTestSuite) TestListOrders_EmptyDatabase_ReturnsEmptyPage() {
	query, err := queries.NewListOrdersQuery("", 0, "")
	suite.Require().NoError(err)

	page, err := queries.NewListOrdersQueryHandler(suite.db).Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Empty(page.Items)
	suite.Empty(page.NextCursor)
}

func (suite *QueriesIntegrationTestSuite) TestListOrders_WalksAllPagesNewestFirst() {
	var want []kernel.UUID
	for i := 0; i < 5; i++ {
		o := suite.addOrder(suite.base.Add(time.Duration(i) * time.Minute))
		want = append([]kernel.UUID{o.ID()}, want...)
	}
	// identical timestamps fall back to id ordering
	twinA := suite.addOrder(suite.base.Add(-time.Hour))
	twinB := suite.addOrder(suite.base.Add(-time.Hour))

	handler := queries.NewListOrdersQueryHandler(suite.db)
	var got []kernel.UUID
	cursor := ""
	pages := 0
	for {
		query, err := queries.NewListOrdersQuery("", 2, cursor)
		suite.Require().NoError(err)

		page, err := handler.Handle(context.Background(), query)
		suite.Require().NoError(err)
		pages++

		for _, item := range page.Items {
			got = append(got, item.ID)
		}
		if page.NextCursor == "" {
			break
		}
		cursor = page.NextCursor
	}

	suite.Equal(4, pages)
	suite.Require().Len(got, 7)
	suite.Equal(want, got[:5])
	suite.ElementsMatch([]kernel.UUID{twinA.ID(), twinB.ID()}, got[5:])
}

func (suite *QueriesIntegrationTestSuite) TestListOrders_FiltersByStatus() {
	ctx := context.Background()
	shipping := suite.addOrder(suite.base)
	suite.addOrder(suite.base.Add(time.Minute))

	suite.Require().NoError(shipping.ChangeStatus(order.Shipping, "alice", suite.base.Add(time.Hour)))
	suite.Require().NoError(suite.orderRepo.Update(ctx, shipping))

	query, err := queries.NewListOrdersQuery("SHIPPING", 10, "")
	suite.Require().NoError(err)

	page, err := queries.NewListOrdersQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Require().Len(page.Items, 1)
	suite.Equal(shipping.ID(), page.Items[0].ID)
	suite.Equal(order.Shipping, page.Items[0].Status)
	suite.Equal(int64(2), page.Items[0].Version)
	suite.Equal(suite.base.Add(time.Hour), page.Items[0].UpdatedAt)
}

func (suite *QueriesIntegrationTestSuite) TestListOrders_InvalidQuery_ReturnsError() {
	_, err := queries.NewListOrdersQueryHandler(suite.db).Handle(context.Background(), queries.ListOrdersQuery{})

	suite.Require().Error(err)
	suite.Contains(err.Error(), "must be created via NewListOrdersQuery constructor")
}

func (suite *QueriesIntegrationTestSuite) TestGetOrder_ReturnsLinesHistoryAndNextStatuses() {
	ctx := context.Background()
	o := suite.addOrder(suite.base)
	suite.Require().NoError(o.ChangeStatus(order.Shipping, "alice", suite.base.Add(time.Minute)))
	_, err := o.ChangePaymentStatus(order.Paid, "bob", suite.base.Add(2*time.Minute))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Update(ctx, o))

	query, err := queries.NewGetOrderQuery(o.ID())
	suite.Require().NoError(err)

	result, err := queries.NewGetOrderQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal(o.ID(), result.ID)
	suite.Equal("Acme Ltd", result.Customer)
	suite.Equal(int64(3*700), result.Total)
	suite.Equal(order.Paid, result.PaymentStatus)
	suite.Equal([]queries.LineView{{SKU: "SKU-7", Quantity: 3, UnitPrice: 700, Subtotal: 2100}}, result.Lines)
	suite.Equal([]order.Status{order.Shipped, order.PickedUp, order.Cancelled}, result.AllowedNextStatuses)

	suite.Require().Len(result.History, 2)
	suite.Equal(queries.HistoryView{
		Seq:        0,
		Timestamp:  suite.base.Add(time.Minute),
		Actor:      "alice",
		StatusType: "order",
		OldStatus:  "PENDING",
		NewStatus:  "SHIPPING",
	}, result.History[0])
	suite.Equal("payment", result.History[1].StatusType)
	suite.Equal(1, result.History[1].Seq)
}

func (suite *QueriesIntegrationTestSuite) TestGetOrder_Unknown_ReturnsNotFound() {
	query, err := queries.NewGetOrderQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = queries.NewGetOrderQueryHandler(suite.db).Handle(context.Background(), query)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueriesIntegrationTestSuite) TestCountOrdersByStatus_ZeroFilled() {
	ctx := context.Background()
	suite.addOrder(suite.base)
	suite.addOrder(suite.base)
	cancelled := suite.addOrder(suite.base)
	suite.Require().NoError(cancelled.ChangeStatus(order.Cancelled, "carol", suite.base.Add(time.Minute)))
	suite.Require().NoError(suite.orderRepo.Update(ctx, cancelled))

	counts, err := queries.NewCountOrdersByStatusQueryHandler(suite.db).
		Handle(ctx, queries.NewCountOrdersByStatusQuery())
	suite.Require().NoError(err)

	suite.Equal(map[order.Status]int64{
		order.Pending:   2,
		order.Shipping:  0,
		order.Shipped:   0,
		order.PickedUp:  0,
		order.Cancelled: 1,
		order.Failed:    0,
	}, counts)
}

func (suite *QueriesIntegrationTestSuite) TestPurchases_ListGetAndCount() {
	ctx := context.Background()
	older := suite.addPurchase(suite.base)
	newer := suite.addPurchase(suite.base.Add(time.Minute))
	suite.Require().NoError(newer.ChangeStatus(purchase.Completed, "dave", suite.base.Add(time.Hour)))
	suite.Require().NoError(suite.purchaseRepo.Update(ctx, newer))

	listQuery, err := queries.NewListPurchasesQuery("", 0, "")
	suite.Require().NoError(err)
	page, err := queries.NewListPurchasesQueryHandler(suite.db).Handle(ctx, listQuery)
	suite.Require().NoError(err)
	suite.Require().Len(page.Items, 2)
	suite.Equal(newer.ID(), page.Items[0].ID)
	suite.Equal(older.ID(), page.Items[1].ID)

	filtered, err := queries.NewListPurchasesQuery("PENDING", 0, "")
	suite.Require().NoError(err)
	page, err = queries.NewListPurchasesQueryHandler(suite.db).Handle(ctx, filtered)
	suite.Require().NoError(err)
	suite.Require().Len(page.Items, 1)
	suite.Equal(older.ID(), page.Items[0].ID)

	getQuery, err := queries.NewGetPurchaseQuery(newer.ID())
	suite.Require().NoError(err)
	detail, err := queries.NewGetPurchaseQueryHandler(suite.db).Handle(ctx, getQuery)
	suite.Require().NoError(err)
	suite.Equal(purchase.Completed, detail.Status)
	suite.Empty(detail.AllowedNextStatuses)
	suite.Require().Len(detail.History, 1)
	suite.Equal("dave", detail.History[0].Actor)

	counts, err := queries.NewCountPurchasesByStatusQueryHandler(suite.db).
		Handle(ctx, queries.NewCountPurchasesByStatusQuery())
	suite.Require().NoError(err)
	suite.Equal(int64(1), counts[purchase.Pending])
	suite.Equal(int64(1), counts[purchase.Completed])
	suite.Equal(int64(0), counts[purchase.Failed])
}

func (suite *QueriesIntegrationTestSuite) addOrder(createdAt time.Time) *order.Order {
	price, err := kernel.NewMoney(700)
	suite.Require().NoError(err)
	line, err := kernel.NewLineItem("SKU-7", 3, price)
	suite.Require().NoError(err)

	o, err := order.NewOrder(kernel.NewUUID(), "Acme Ltd", []kernel.LineItem{line}, createdAt)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(context.Background(), o))
	return o
}

func (suite *QueriesIntegrationTestSuite) addPurchase(createdAt time.Time) *purchase.Purchase {
	price, err := kernel.NewMoney(120)
	suite.Require().NoError(err)
	line, err := kernel.NewLineItem("NUT-4", 10, price)
	suite.Require().NoError(err)

	p, err := purchase.NewPurchase(kernel.NewUUID(), "Globex", []kernel.LineItem{line}, createdAt)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.purchaseRepo.Add(context.Background(), p))
	return p
}

func TestQueriesIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(QueriesIntegrationTestSuite))
}
