package commands_test

import (
	"testing"

	"dinesmart/internal/core/application/usecases/commands"
	"dinesmart/internal/core/domain/model/order"
	"dinesmart/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateOrderStatusCommand(t *testing.T) {
	cmd, err := commands.NewUpdateOrderStatusCommand(3, order.Preparing)
	require.NoError(t, err)
	assert.Equal(t, int64(3), cmd.OrderID())
	assert.Equal(t, order.Preparing, cmd.Status())

	_, err = commands.NewUpdateOrderStatusCommand(-3, order.Unknown)
	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))
}

func TestUpdateOrderStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewUpdateOrderStatusCommand(3, order.Preparing)
	current := orderIn(t, 3, order.Pending)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, int64(3)).Return(current, nil).Once(),
		repo.On("Update", ctx, mock.MatchedBy(func(o *order.Order) bool {
			return o.Status() == order.Preparing && o.Version() == current.Version()+1
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory, noDelay)
	updated, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Preparing, updated.Status())
	assert.Equal(t, order.Pending, current.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_InvalidTransition(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewUpdateOrderStatusCommand(3, order.Paid)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	repo.On("Get", ctx, int64(3)).Return(orderIn(t, 3, order.Preparing), nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory, noDelay)
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	factory.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewUpdateOrderStatusCommand(404, order.Preparing)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	repo.On("Get", ctx, int64(404)).Return(nil, errs.NewObjectNotFoundError("order", int64(404))).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory, noDelay)
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	factory.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_ConcurrentModificationExhaustsRetries(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewUpdateOrderStatusCommand(3, order.Preparing)
	conflict := errs.NewConcurrentModificationError("order", int64(3), 1)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("OrderRepository").Return(repo)
	repo.On("Get", ctx, int64(3)).Return(orderIn(t, 3, order.Pending), nil)
	repo.On("Update", ctx, mock.Anything).Return(conflict)
	uow.On("Rollback", ctx).Return(nil)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow)

	h := commands.NewUpdateOrderStatusCommandHandler(factory, noDelay)
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrConcurrentModification)
	factory.AssertNumberOfCalls(t, "Create", noDelay.MaxAttempts)
	repo.AssertNumberOfCalls(t, "Update", noDelay.MaxAttempts)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
