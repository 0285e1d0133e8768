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

type MockCancelOrderRepository struct{ mock.Mock }

func (m *MockCancelOrderRepository) Add(_ context.Context, _ *order.Order) error {
	return errors.New("not implemented in mock")
}
func (m *MockCancelOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockCancelOrderRepository) Get(_ context.Context, _ kernel.UUID) (*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockCancelOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
func (m *MockCancelOrderRepository) Delete(_ context.Context, _ *order.Order) error {
	return errors.New("not implemented in mock")
}
func (m *MockCancelOrderRepository) GetStalePendingForUpdate(_ context.Context, _ time.Time) ([]*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}

type MockCancelDeliveryRepository struct{ mock.Mock }

func (m *MockCancelDeliveryRepository) Add(_ context.Context, _ *delivery.Delivery) error {
	return errors.New("not implemented in mock")
}
func (m *MockCancelDeliveryRepository) Update(_ context.Context, _ *delivery.Delivery) error {
	return errors.New("not implemented in mock")
}
func (m *MockCancelDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Delivery), args.Error(1)
}
func (m *MockCancelDeliveryRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Delivery), args.Error(1)
}
func (m *MockCancelDeliveryRepository) GetByOrderID(_ context.Context, _ kernel.UUID) (*delivery.Delivery, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockCancelDeliveryRepository) Delete(ctx context.Context, d *delivery.Delivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

type MockCancelUoW struct{ mock.Mock }

func (m *MockCancelUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCancelUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCancelUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCancelUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockCancelUoW) DeliveryRepository() ports.DeliveryRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryRepository)
}

type MockCancelUoWFactory struct{ mock.Mock }

func (m *MockCancelUoWFactory) Create() commands.DeliveryUoW {
	args := m.Called()
	return args.Get(0).(commands.DeliveryUoW)
}

func TestCancelDeliveryCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	pairedOrder := restoredDeliveryOrder(t, order.OutForDelivery)
	target := restoredDelivery(t, pairedOrder.ID(), delivery.Assigned)
	cmd, err := commands.NewCancelDeliveryCommand(target.ID())
	require.NoError(t, err)

	orderRepo := new(MockCancelOrderRepository)
	deliveryRepo := new(MockCancelDeliveryRepository)
	uow := new(MockCancelUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Get", mock.Anything, target.ID()).Return(target, nil).Once(),
		orderRepo.On("GetForUpdate", mock.Anything, pairedOrder.ID()).Return(pairedOrder, nil).Once(),
		deliveryRepo.On("GetForUpdate", mock.Anything, target.ID()).Return(target, nil).Once(),
		deliveryRepo.On("Delete", mock.Anything, target).Return(nil).Once(),
		orderRepo.On("Update", mock.Anything, pairedOrder).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCancelUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelDeliveryCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, delivery.Cancelled, target.Status())
	assert.Equal(t, order.ReadyForDelivery, pairedOrder.Status())
	orderRepo.AssertExpectations(t)
	deliveryRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCancelDeliveryCommandHandler_Handle_DeliveredCannotBeCancelled(t *testing.T) {
	ctx := t.Context()

	pairedOrder := restoredDeliveryOrder(t, order.Completed)
	target := restoredDelivery(t, pairedOrder.ID(), delivery.Delivered)
	cmd, err := commands.NewCancelDeliveryCommand(target.ID())
	require.NoError(t, err)

	orderRepo := new(MockCancelOrderRepository)
	deliveryRepo := new(MockCancelDeliveryRepository)
	uow := new(MockCancelUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Get", mock.Anything, target.ID()).Return(target, nil).Once(),
		orderRepo.On("GetForUpdate", mock.Anything, pairedOrder.ID()).Return(pairedOrder, nil).Once(),
		deliveryRepo.On("GetForUpdate", mock.Anything, target.ID()).Return(target, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCancelUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelDeliveryCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidState)
	assert.Equal(t, delivery.Delivered, target.Status())
	deliveryRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCancelDeliveryCommandHandler_Handle_DeliveryNotFound(t *testing.T) {
	ctx := t.Context()

	missingID := kernel.NewUUID()
	cmd, err := commands.NewCancelDeliveryCommand(missingID)
	require.NoError(t, err)

	orderRepo := new(MockCancelOrderRepository)
	deliveryRepo := new(MockCancelDeliveryRepository)
	uow := new(MockCancelUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Get", mock.Anything, missingID).
			Return(nil, errs.NewObjectNotFoundError("delivery", missingID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCancelUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelDeliveryCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}
