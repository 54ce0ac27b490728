package commands_test

import (
	"testing"
	"time"

	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/domain/model/activity"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/purchase"
	"backoffice/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func pendingPurchase(t *testing.T) *purchase.Purchase {
	t.Helper()
	price, _ := kernel.NewMoney(120)
	li, _ := kernel.NewLineItem("NUT-M8", 50, price)
	p, err := purchase.NewPurchase(kernel.NewUUID(), "Steel Co", []kernel.LineItem{li}, time.Now())
	require.NoError(t, err)
	return p
}

func TestCreatePurchaseCommandHandler_Handle(t *testing.T) {
	ctx := testContext(t)
	id := kernel.NewUUID()
	cmd, err := commands.NewCreatePurchaseCommand(id, "Steel Co", "dave", validLines)
	require.NoError(t, err)

	repo := new(MockPurchaseRepository)
	logs := new(MockActivityLogRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PurchaseRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.MatchedBy(func(p *purchase.Purchase) bool {
			return p.ID().IsEqual(id) && p.Supplier() == "Steel Co"
		})).Return(nil).Once(),
		uow.On("ActivityLogRepository").Return(logs).Once(),
		logs.On("Add", ctx, mock.MatchedBy(func(l *activity.Log) bool {
			return l.EntityType() == purchase.EntityType && l.Action() == activity.ActionCreated
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockPurchaseUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreatePurchaseCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	uow.AssertExpectations(t)
	repo.AssertExpectations(t)
	logs.AssertExpectations(t)
}

func TestNewCreatePurchaseCommand_Invalid(t *testing.T) {
	_, err := commands.NewCreatePurchaseCommand(kernel.NewUUID(), " ", "dave", validLines)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Contains(t, err.Error(), "supplier")
}

func TestChangePurchaseStatusCommandHandler_Handle(t *testing.T) {
	t.Run("dave completes a pending purchase", func(t *testing.T) {
		ctx := testContext(t)
		aggregate := pendingPurchase(t)
		cmd, err := commands.NewChangePurchaseStatusCommand(aggregate.ID(), "COMPLETED", "dave")
		require.NoError(t, err)

		repo := new(MockPurchaseRepository)
		logs := new(MockActivityLogRepository)
		uow := new(MockUoW)
		observer := new(MockTransitionObserver)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("PurchaseRepository").Return(repo).Once(),
			repo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
			repo.On("Update", ctx, aggregate).Return(nil).Once(),
			uow.On("ActivityLogRepository").Return(logs).Once(),
			logs.On("Add", ctx, mock.AnythingOfType("*activity.Log")).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			observer.On("TransitionAccepted", purchase.EntityType, "PENDING", "COMPLETED").Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)
		factory := new(MockPurchaseUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewChangePurchaseStatusCommandHandler(factory, observer)
		require.NoError(t, h.Handle(ctx, cmd))

		assert.Equal(t, purchase.Completed, aggregate.Status())
		observer.AssertExpectations(t)
		uow.AssertExpectations(t)
	})

	t.Run("completed purchase is terminal", func(t *testing.T) {
		ctx := testContext(t)
		aggregate := pendingPurchase(t)
		require.NoError(t, aggregate.ChangeStatus(purchase.Completed, "dave", time.Now()))
		cmd, _ := commands.NewChangePurchaseStatusCommand(aggregate.ID(), "CANCELLED", "erin")

		repo := new(MockPurchaseRepository)
		uow := new(MockUoW)
		observer := new(MockTransitionObserver)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("PurchaseRepository").Return(repo).Once()
		repo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		observer.On("TransitionRejected", purchase.EntityType, "COMPLETED", "CANCELLED").Once()
		factory := new(MockPurchaseUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewChangePurchaseStatusCommandHandler(factory, observer)

		require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrInvalidTransition)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		observer.AssertExpectations(t)
	})
}
