package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/delivery"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/ports"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDetailsDeliveryRepository struct{ mock.Mock }

func (m *MockDetailsDeliveryRepository) Add(_ context.Context, _ *delivery.Delivery) error {
	return errors.New("not implemented in mock")
}
func (m *MockDetailsDeliveryRepository) Update(ctx context.Context, d *delivery.Delivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}
func (m *MockDetailsDeliveryRepository) Get(_ context.Context, _ kernel.UUID) (*delivery.Delivery, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockDetailsDeliveryRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Delivery), args.Error(1)
}
func (m *MockDetailsDeliveryRepository) GetByOrderID(_ context.Context, _ kernel.UUID) (*delivery.Delivery, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockDetailsDeliveryRepository) Delete(_ context.Context, _ *delivery.Delivery) error {
	return errors.New("not implemented in mock")
}

type MockDetailsUoW struct{ mock.Mock }

func (m *MockDetailsUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockDetailsUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockDetailsUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// OrderRepository is part of the delivery unit of work but detail edits
// never touch the order side.
func (m *MockDetailsUoW) OrderRepository() ports.OrderRepository {
	return nil
}

func (m *MockDetailsUoW) DeliveryRepository() ports.DeliveryRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryRepository)
}

type MockDetailsUoWFactory struct{ mock.Mock }

func (m *MockDetailsUoWFactory) Create() commands.DeliveryUoW {
	args := m.Called()
	return args.Get(0).(commands.DeliveryUoW)
}

func completedDelivery(t *testing.T) *delivery.Delivery {
	t.Helper()

	now := time.Now().UTC()
	dispatched := now.Add(-40 * time.Minute)
	delivered := now.Add(-5 * time.Minute)
	restored, err := delivery.RestoreDelivery(delivery.RestoreDeliveryParams{
		ID:           kernel.NewUUID(),
		OrderID:      kernel.NewUUID(),
		DriverID:     kernel.NewUUID(),
		Status:       delivery.Delivered,
		Address:      "221B Baker Street",
		DispatchedAt: &dispatched,
		DeliveredAt:  &delivered,
		Version:      3,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	require.NoError(t, err)
	return restored
}

func TestUpdateDeliveryDetailsCommandHandler_Handle_UpdatesAddressAndNotes(t *testing.T) {
	ctx := t.Context()
	target := assignedDelivery(t)
	cmd, err := commands.NewUpdateDeliveryDetailsCommand(target.ID(), "10 Downing Street", "leave at reception")
	require.NoError(t, err)

	deliveryRepo := new(MockDetailsDeliveryRepository)
	uow := new(MockDetailsUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("GetForUpdate", mock.Anything, target.ID()).Return(target, nil).Once(),
		deliveryRepo.On("Update", mock.Anything, target).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDetailsUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateDeliveryDetailsCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, "10 Downing Street", target.Address())
	assert.Equal(t, "leave at reception", target.Notes())
	deliveryRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestUpdateDeliveryDetailsCommandHandler_Handle_DeliveredDeliveryIsImmutable(t *testing.T) {
	ctx := t.Context()
	target := completedDelivery(t)
	cmd, err := commands.NewUpdateDeliveryDetailsCommand(target.ID(), "10 Downing Street", "")
	require.NoError(t, err)

	deliveryRepo := new(MockDetailsDeliveryRepository)
	uow := new(MockDetailsUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("GetForUpdate", mock.Anything, target.ID()).Return(target, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDetailsUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateDeliveryDetailsCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidState)
	assert.Equal(t, "221B Baker Street", target.Address())
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	deliveryRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateDeliveryDetailsCommandHandler_Handle_EmptyAddressRejected(t *testing.T) {
	ctx := t.Context()
	target := assignedDelivery(t)
	cmd, err := commands.NewUpdateDeliveryDetailsCommand(target.ID(), "   ", "")
	require.NoError(t, err)

	deliveryRepo := new(MockDetailsDeliveryRepository)
	uow := new(MockDetailsUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("GetForUpdate", mock.Anything, target.ID()).Return(target, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDetailsUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateDeliveryDetailsCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Equal(t, "221B Baker Street", target.Address())
}

func TestUpdateDeliveryDetailsCommandHandler_Handle_DeliveryNotFound(t *testing.T) {
	ctx := t.Context()
	missingID := kernel.NewUUID()
	cmd, err := commands.NewUpdateDeliveryDetailsCommand(missingID, "10 Downing Street", "")
	require.NoError(t, err)

	deliveryRepo := new(MockDetailsDeliveryRepository)
	uow := new(MockDetailsUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("GetForUpdate", mock.Anything, missingID).
			Return(nil, errs.NewObjectNotFoundError("delivery", missingID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDetailsUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateDeliveryDetailsCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestUpdateDeliveryDetailsCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.UpdateDeliveryDetailsCommand{} // not constructed properly
	factory := new(MockDetailsUoWFactory)
	h := commands.NewUpdateDeliveryDetailsCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrUpdateDeliveryDetailsCommandIsNotConstructed)
}
