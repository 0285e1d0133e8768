package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/ports"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockExpireOrderRepository struct{ mock.Mock }

func (m *MockExpireOrderRepository) Add(_ context.Context, _ *order.Order) error {
	return errors.New("not implemented in mock")
}
func (m *MockExpireOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockExpireOrderRepository) Get(_ context.Context, _ kernel.UUID) (*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockExpireOrderRepository) GetForUpdate(_ context.Context, _ kernel.UUID) (*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockExpireOrderRepository) Delete(_ context.Context, _ *order.Order) error {
	return errors.New("not implemented in mock")
}
func (m *MockExpireOrderRepository) GetStalePendingForUpdate(ctx context.Context, olderThan time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, olderThan)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockExpireUoW struct{ mock.Mock }

func (m *MockExpireUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockExpireUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockExpireUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockExpireUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockExpireUoWFactory struct{ mock.Mock }

func (m *MockExpireUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

func TestNewExpirePendingOrdersCommand_ValidMaxAge(t *testing.T) {
	cmd, err := commands.NewExpirePendingOrdersCommand(30 * time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 30*time.Minute, cmd.MaxAge())
}

func TestNewExpirePendingOrdersCommand_NonPositiveMaxAge(t *testing.T) {
	_, err := commands.NewExpirePendingOrdersCommand(0)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = commands.NewExpirePendingOrdersCommand(-time.Minute)
	require.Error(t, err)
}

func TestExpirePendingOrdersCommandHandler_Handle_CancelsStaleOrders(t *testing.T) {
	ctx := t.Context()

	first := restoredPickupOrder(t, order.Pending)
	second := restoredPickupOrder(t, order.Pending)
	cmd, err := commands.NewExpirePendingOrdersCommand(30 * time.Minute)
	require.NoError(t, err)

	repo := new(MockExpireOrderRepository)
	uow := new(MockExpireUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetStalePendingForUpdate", mock.Anything, mock.AnythingOfType("time.Time")).
			Return([]*order.Order{first, second}, nil).Once(),
		repo.On("Update", mock.Anything, first).Return(nil).Once(),
		repo.On("Update", mock.Anything, second).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockExpireUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewExpirePendingOrdersCommandHandler(factory)
	expired, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, 2, expired)
	assert.Equal(t, order.Cancelled, first.Status())
	assert.Equal(t, order.Cancelled, second.Status())

	cutoff := repo.Calls[0].Arguments.Get(1).(time.Time)
	assert.WithinDuration(t, time.Now().UTC().Add(-30*time.Minute), cutoff, 5*time.Second)

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestExpirePendingOrdersCommandHandler_Handle_NothingStale(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewExpirePendingOrdersCommand(30 * time.Minute)
	require.NoError(t, err)

	repo := new(MockExpireOrderRepository)
	uow := new(MockExpireUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetStalePendingForUpdate", mock.Anything, mock.AnythingOfType("time.Time")).
			Return([]*order.Order{}, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockExpireUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewExpirePendingOrdersCommandHandler(factory)
	expired, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Zero(t, expired)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestExpirePendingOrdersCommandHandler_Handle_UpdateFailureAbortsSweep(t *testing.T) {
	ctx := t.Context()

	first := restoredPickupOrder(t, order.Pending)
	cmd, err := commands.NewExpirePendingOrdersCommand(30 * time.Minute)
	require.NoError(t, err)

	repo := new(MockExpireOrderRepository)
	uow := new(MockExpireUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetStalePendingForUpdate", mock.Anything, mock.AnythingOfType("time.Time")).
			Return([]*order.Order{first}, nil).Once(),
		repo.On("Update", mock.Anything, first).
			Return(errs.NewConcurrencyConflictError("order", first.ID(), first.Version())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockExpireUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewExpirePendingOrdersCommandHandler(factory)
	expired, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrConcurrencyConflict)
	assert.Zero(t, expired)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
