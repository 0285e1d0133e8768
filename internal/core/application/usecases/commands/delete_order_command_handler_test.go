package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/delivery"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/ports"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDeleteOrderRepository struct{ mock.Mock }

func (m *MockDeleteOrderRepository) Add(_ context.Context, _ *order.Order) error {
	return errors.New("not implemented in mock")
}
func (m *MockDeleteOrderRepository) Update(_ context.Context, _ *order.Order) error {
	return errors.New("not implemented in mock")
}
func (m *MockDeleteOrderRepository) Get(_ context.Context, _ kernel.UUID) (*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockDeleteOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
func (m *MockDeleteOrderRepository) Delete(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockDeleteOrderRepository) GetStalePendingForUpdate(_ context.Context, _ time.Time) ([]*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}

type MockDeleteDeliveryRepository struct{ mock.Mock }

func (m *MockDeleteDeliveryRepository) Add(_ context.Context, _ *delivery.Delivery) error {
	return errors.New("not implemented in mock")
}
func (m *MockDeleteDeliveryRepository) Update(_ context.Context, _ *delivery.Delivery) error {
	return errors.New("not implemented in mock")
}
func (m *MockDeleteDeliveryRepository) Get(_ context.Context, _ kernel.UUID) (*delivery.Delivery, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockDeleteDeliveryRepository) GetForUpdate(_ context.Context, _ kernel.UUID) (*delivery.Delivery, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockDeleteDeliveryRepository) GetByOrderID(ctx context.Context, orderID kernel.UUID) (*delivery.Delivery, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Delivery), args.Error(1)
}
func (m *MockDeleteDeliveryRepository) Delete(ctx context.Context, d *delivery.Delivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

type MockDeleteUoW struct{ mock.Mock }

func (m *MockDeleteUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockDeleteUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockDeleteUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDeleteUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockDeleteUoW) DeliveryRepository() ports.DeliveryRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryRepository)
}

type MockDeleteUoWFactory struct{ mock.Mock }

func (m *MockDeleteUoWFactory) Create() commands.DeliveryUoW {
	args := m.Called()
	return args.Get(0).(commands.DeliveryUoW)
}

func TestDeleteOrderCommandHandler_Handle_PendingOrder(t *testing.T) {
	ctx := t.Context()

	target := restoredPickupOrder(t, order.Pending)
	cmd, err := commands.NewDeleteOrderCommand(target.ID())
	require.NoError(t, err)

	orderRepo := new(MockDeleteOrderRepository)
	deliveryRepo := new(MockDeleteDeliveryRepository)
	uow := new(MockDeleteUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		orderRepo.On("GetForUpdate", mock.Anything, target.ID()).Return(target, nil).Once(),
		deliveryRepo.On("GetByOrderID", mock.Anything, target.ID()).
			Return(nil, errs.NewObjectNotFoundError("delivery for order", target.ID())).Once(),
		orderRepo.On("Delete", mock.Anything, target).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeleteUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteOrderCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	deliveryRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDeleteOrderCommandHandler_Handle_CancelledOrderCascadesDelivery(t *testing.T) {
	ctx := t.Context()

	target := restoredDeliveryOrder(t, order.Cancelled)
	attached := restoredDelivery(t, target.ID(), delivery.Assigned)
	cmd, err := commands.NewDeleteOrderCommand(target.ID())
	require.NoError(t, err)

	orderRepo := new(MockDeleteOrderRepository)
	deliveryRepo := new(MockDeleteDeliveryRepository)
	uow := new(MockDeleteUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		orderRepo.On("GetForUpdate", mock.Anything, target.ID()).Return(target, nil).Once(),
		deliveryRepo.On("GetByOrderID", mock.Anything, target.ID()).Return(attached, nil).Once(),
		deliveryRepo.On("Delete", mock.Anything, attached).Return(nil).Once(),
		orderRepo.On("Delete", mock.Anything, target).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeleteUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteOrderCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	orderRepo.AssertExpectations(t)
	deliveryRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDeleteOrderCommandHandler_Handle_ActiveOrderRefused(t *testing.T) {
	ctx := t.Context()

	target := restoredPickupOrder(t, order.Preparing)
	cmd, err := commands.NewDeleteOrderCommand(target.ID())
	require.NoError(t, err)

	orderRepo := new(MockDeleteOrderRepository)
	deliveryRepo := new(MockDeleteDeliveryRepository)
	uow := new(MockDeleteUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		orderRepo.On("GetForUpdate", mock.Anything, target.ID()).Return(target, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeleteUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidState)
	orderRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
