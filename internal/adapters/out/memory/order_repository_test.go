package memory_test

import (
	"errors"
	"testing"
	"time"

	"dinesmart/internal/adapters/out/memory"
	"dinesmart/internal/core/domain/model/order"
	"dinesmart/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOrderRepository_WithoutTransaction(t *testing.T) {
	ctx := t.Context()
	publisher := &recordingPublisher{}
	repo := newFactory(publisher).Create().OrderRepository()
	burger := newItem(t, 1, "Burger", 8.50)

	first, err := repo.NextID(ctx)
	require.NoError(t, err)
	second, err := repo.NextID(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), first)
	assert.Equal(t, int64(2), second)

	created := newOrder(t, first, burger)
	require.NoError(t, repo.Add(ctx, created))

	got, err := repo.Get(ctx, first)
	require.NoError(t, err)
	assert.Same(t, created, got)

	_, err = repo.Get(ctx, 99)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	require.ErrorIs(t, repo.Add(ctx, created), errs.ErrObjectAlreadyExists)

	preparing := advance(t, created, order.Preparing)
	require.NoError(t, repo.Update(ctx, preparing))

	assert.Equal(t, []order.EventKind{order.EventCreated, order.EventUpdated}, publisher.kinds())
}

func TestOrderRepository_VersionCheck(t *testing.T) {
	ctx := t.Context()
	repo := newFactory(nil).Create().OrderRepository()
	burger := newItem(t, 1, "Burger", 8.50)

	created := newOrder(t, 1, burger)
	require.NoError(t, repo.Add(ctx, created))

	fromFirstReader := advance(t, created, order.Preparing)
	fromSecondReader, err := created.AddItems([]order.ItemRequest{{MenuItem: burger, Quantity: 1}})
	require.NoError(t, err)

	require.NoError(t, repo.Update(ctx, fromFirstReader))

	err = repo.Update(ctx, fromSecondReader)
	var conflict *errs.ConcurrentModificationError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, 1, conflict.ExpectedVersion)

	stored, err := repo.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, order.Preparing, stored.Status())
	assert.Equal(t, 2, stored.Version())

	t.Run("should not update a missing order", func(t *testing.T) {
		err := repo.Update(ctx, advance(t, newOrder(t, 42, burger), order.Preparing))
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should not delete from a stale snapshot", func(t *testing.T) {
		err := repo.Delete(ctx, created)
		require.ErrorIs(t, err, errs.ErrConcurrentModification)
	})
}

func TestOrderRepository_Transaction(t *testing.T) {
	ctx := t.Context()
	publisher := &recordingPublisher{}
	factory := newFactory(publisher)
	burger := newItem(t, 1, "Burger", 8.50)

	t.Run("should hide staged writes until commit", func(t *testing.T) {
		uow := factory.Create()
		require.NoError(t, uow.Begin(ctx))
		require.NoError(t, uow.OrderRepository().Add(ctx, newOrder(t, 1, burger)))

		_, err := uow.OrderRepository().Get(ctx, 1)
		require.NoError(t, err, "the transaction sees its own writes")

		_, err = factory.Create().OrderRepository().Get(ctx, 1)
		require.ErrorIs(t, err, errs.ErrObjectNotFound, "other units of work do not")
		assert.Empty(t, publisher.kinds())

		require.NoError(t, uow.Commit(ctx))

		_, err = factory.Create().OrderRepository().Get(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, []order.EventKind{order.EventCreated}, publisher.kinds())
	})

	t.Run("should discard staged writes on rollback", func(t *testing.T) {
		uow := factory.Create()
		require.NoError(t, uow.Begin(ctx))
		require.NoError(t, uow.OrderRepository().Add(ctx, newOrder(t, 2, burger)))
		require.NoError(t, uow.Rollback(ctx))

		_, err := factory.Create().OrderRepository().Get(ctx, 2)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.Len(t, publisher.kinds(), 1)
	})

	t.Run("should reject commit after a concurrent update", func(t *testing.T) {
		stored, err := factory.Create().OrderRepository().Get(ctx, 1)
		require.NoError(t, err)

		slow := factory.Create()
		require.NoError(t, slow.Begin(ctx))
		require.NoError(t, slow.OrderRepository().Update(ctx, advance(t, stored, order.Preparing)))

		require.NoError(t, factory.Create().OrderRepository().Update(ctx, advance(t, stored, order.Cancelled)))

		err = slow.Commit(ctx)
		require.ErrorIs(t, err, errs.ErrConcurrentModification)

		current, err := factory.Create().OrderRepository().Get(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, order.Cancelled, current.Status())
	})

	t.Run("should fail commit and rollback without begin", func(t *testing.T) {
		uow := factory.Create()
		require.Error(t, uow.Commit(ctx))
		require.Error(t, uow.Rollback(ctx))
	})
}

func TestOrderRepository_Listing(t *testing.T) {
	ctx := t.Context()
	repo := newFactory(nil).Create().OrderRepository()
	burger := newItem(t, 1, "Burger", 8.50)
	soda := newItem(t, 2, "Soda", 2.00)

	require.NoError(t, repo.Add(ctx, advance(t, newOrder(t, 3, burger), order.Cancelled)))
	require.NoError(t, repo.Add(ctx, newOrder(t, 1, burger, soda)))
	require.NoError(t, repo.Add(ctx, advance(t, newOrder(t, 2, soda),
		order.Preparing, order.ReadyForServe, order.Served, order.Paid)))

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []int64{1, 2, 3}, []int64{all[0].ID(), all[1].ID(), all[2].ID()})

	active, err := repo.GetAllActive(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, int64(1), active[0].ID())

	terminal, err := repo.GetAllTerminalCreatedBefore(ctx, testClock.Now().Add(time.Minute))
	require.NoError(t, err)
	assert.Len(t, terminal, 2)

	none, err := repo.GetAllTerminalCreatedBefore(ctx, testClock.Now())
	require.NoError(t, err)
	assert.Empty(t, none)

	inUse, err := repo.HasActiveWithMenuItem(ctx, soda.ID())
	require.NoError(t, err)
	assert.True(t, inUse)

	require.NoError(t, repo.Update(ctx, advance(t, active[0], order.Cancelled)))

	inUse, err = repo.HasActiveWithMenuItem(ctx, soda.ID())
	require.NoError(t, err)
	assert.False(t, inUse)
}

func TestOrderRepository_PublishFailureKeepsCommit(t *testing.T) {
	ctx := t.Context()
	publisher := new(MockPublisher)
	publisher.On("Publish", mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()
	factory := memory.NewUnitOfWorkFactory(memory.NewStore(), publisher, discardLogger())

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.OrderRepository().Add(ctx, newOrder(t, 1, newItem(t, 1, "Burger", 8.50))))
	require.NoError(t, uow.Commit(ctx))

	_, err := factory.Create().OrderRepository().Get(ctx, 1)
	require.NoError(t, err)
	publisher.AssertExpectations(t)
}
