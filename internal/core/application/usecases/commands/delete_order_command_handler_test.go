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

func TestNewDeleteOrderCommand(t *testing.T) {
	cmd, err := commands.NewDeleteOrderCommand(0)
	require.NoError(t, err)
	assert.Equal(t, int64(0), cmd.OrderID())

	_, err = commands.NewDeleteOrderCommand(-1)
	require.Error(t, err)
}

func TestDeleteOrderCommandHandler_Handle_TerminalOrders(t *testing.T) {
	for _, status := range []order.Status{order.Paid, order.Cancelled} {
		t.Run(status.String(), func(t *testing.T) {
			ctx := t.Context()
			cmd, _ := commands.NewDeleteOrderCommand(3)
			current := orderIn(t, 3, status)

			repo := new(MockOrderRepository)
			uow := new(MockUoW)
			mock.InOrder(
				uow.On("Begin", ctx).Return(nil).Once(),
				uow.On("OrderRepository").Return(repo).Once(),
				repo.On("Get", ctx, int64(3)).Return(current, nil).Once(),
				repo.On("Delete", ctx, current).Return(nil).Once(),
				uow.On("Commit", ctx).Return(nil).Once(),
				uow.On("Rollback", ctx).Return(nil).Once(),
			)
			factory := new(MockOrderUoWFactory)
			factory.On("Create").Return(uow).Once()

			h := commands.NewDeleteOrderCommandHandler(factory, noDelay)

			require.NoError(t, h.Handle(ctx, cmd))
			repo.AssertExpectations(t)
			uow.AssertExpectations(t)
		})
	}
}

func TestDeleteOrderCommandHandler_Handle_ActiveOrders(t *testing.T) {
	for _, status := range []order.Status{order.Pending, order.Preparing, order.ReadyForServe, order.Served} {
		t.Run(status.String(), func(t *testing.T) {
			ctx := t.Context()
			cmd, _ := commands.NewDeleteOrderCommand(3)

			repo := new(MockOrderRepository)
			uow := new(MockUoW)
			uow.On("Begin", ctx).Return(nil).Once()
			uow.On("OrderRepository").Return(repo).Once()
			repo.On("Get", ctx, int64(3)).Return(orderIn(t, 3, status), nil).Once()
			uow.On("Rollback", ctx).Return(nil).Once()
			factory := new(MockOrderUoWFactory)
			factory.On("Create").Return(uow).Once()

			h := commands.NewDeleteOrderCommandHandler(factory, noDelay)
			err := h.Handle(ctx, cmd)

			require.ErrorIs(t, err, errs.ErrInvalidState)
			repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
			uow.AssertNotCalled(t, "Commit", mock.Anything)
		})
	}
}

func TestDeleteOrderCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewDeleteOrderCommand(404)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	repo.On("Get", ctx, int64(404)).Return(nil, errs.NewObjectNotFoundError("order", int64(404))).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteOrderCommandHandler(factory, noDelay)

	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrObjectNotFound)
}
