package commands_test

import (
	"context"
	"time"

	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/domain/model/activity"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/core/domain/model/purchase"
	"backoffice/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type MockPurchaseRepository struct{ mock.Mock }

func (m *MockPurchaseRepository) Add(ctx context.Context, p *purchase.Purchase) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockPurchaseRepository) Update(ctx context.Context, p *purchase.Purchase) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockPurchaseRepository) Get(ctx context.Context, id kernel.UUID) (*purchase.Purchase, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*purchase.Purchase)
	return p, args.Error(1)
}

type MockActivityLogRepository struct{ mock.Mock }

func (m *MockActivityLogRepository) Add(ctx context.Context, l *activity.Log) error {
	return m.Called(ctx, l).Error(0)
}

func (m *MockActivityLogRepository) ListIDsOlderThan(ctx context.Context, cutoff time.Time, limit int) ([]kernel.UUID, error) {
	args := m.Called(ctx, cutoff, limit)
	ids, _ := args.Get(0).([]kernel.UUID)
	return ids, args.Error(1)
}

func (m *MockActivityLogRepository) CountOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockActivityLogRepository) DeleteByIDs(ctx context.Context, ids []kernel.UUID) (int64, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(int64), args.Error(1)
}

// MockUoW satisfies every unit-of-work flavour used by the handlers.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockUoW) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}

func (m *MockUoW) PurchaseRepository() ports.PurchaseRepository {
	return m.Called().Get(0).(ports.PurchaseRepository)
}

func (m *MockUoW) ActivityLogRepository() ports.ActivityLogRepository {
	return m.Called().Get(0).(ports.ActivityLogRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	return m.Called().Get(0).(commands.OrderUoW)
}

type MockPurchaseUoWFactory struct{ mock.Mock }

func (m *MockPurchaseUoWFactory) Create() commands.PurchaseUoW {
	return m.Called().Get(0).(commands.PurchaseUoW)
}

type MockActivityLogUoWFactory struct{ mock.Mock }

func (m *MockActivityLogUoWFactory) Create() commands.ActivityLogUoW {
	return m.Called().Get(0).(commands.ActivityLogUoW)
}

type MockTransitionObserver struct{ mock.Mock }

func (m *MockTransitionObserver) TransitionAccepted(entityType, from, to string) {
	m.Called(entityType, from, to)
}

func (m *MockTransitionObserver) TransitionRejected(entityType, from, to string) {
	m.Called(entityType, from, to)
}

type MockPurgeObserver struct{ mock.Mock }

func (m *MockPurgeObserver) ActivityLogsPurged(count int64) {
	m.Called(count)
}
