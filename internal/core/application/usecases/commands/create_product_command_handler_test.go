package commands_test

import (
	"context"
	"errors"
	"testing"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/product"
	"restaurant/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCreateProductRepository struct{ mock.Mock }

func (m *MockCreateProductRepository) Add(ctx context.Context, p *product.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockCreateProductRepository) Update(_ context.Context, _ *product.Product) error {
	return errors.New("not implemented in mock")
}
func (m *MockCreateProductRepository) Get(_ context.Context, _ kernel.UUID) (*product.Product, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockCreateProductRepository) GetByIDs(_ context.Context, _ []kernel.UUID) ([]*product.Product, error) {
	return nil, errors.New("not implemented in mock")
}

type MockCreateProductUoW struct{ mock.Mock }

func (m *MockCreateProductUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCreateProductUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCreateProductUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCreateProductUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}

type MockCreateProductUoWFactory struct{ mock.Mock }

func (m *MockCreateProductUoWFactory) Create() commands.ProductUoW {
	args := m.Called()
	return args.Get(0).(commands.ProductUoW)
}

func TestCreateProductCommandHandler_Handle_AddsProductToMenu(t *testing.T) {
	ctx := t.Context()
	price, err := kernel.NewMoneyFromString("12.50")
	require.NoError(t, err)
	cmd, err := commands.NewCreateProductCommand("Margherita", "tomato and mozzarella", price, true)
	require.NoError(t, err)

	var added *product.Product
	repo := new(MockCreateProductRepository)
	uow := new(MockCreateProductUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*product.Product")).
			Run(func(args mock.Arguments) {
				added = args.Get(1).(*product.Product)
			}).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCreateProductUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateProductCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	require.NotNil(t, added)
	assert.Equal(t, cmd.ProductID(), added.ID())
	assert.Equal(t, "Margherita", added.Name())
	assert.Equal(t, "12.50", added.Price().String())
	assert.True(t, added.IsAvailable())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateProductCommandHandler_Handle_AddFailureRollsBack(t *testing.T) {
	ctx := t.Context()
	price, err := kernel.NewMoneyFromString("4.50")
	require.NoError(t, err)
	cmd, err := commands.NewCreateProductCommand("Fries", "", price, true)
	require.NoError(t, err)

	storageErr := errors.New("insert failed")
	repo := new(MockCreateProductRepository)
	uow := new(MockCreateProductUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*product.Product")).Return(storageErr).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCreateProductUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateProductCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, storageErr)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCreateProductCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateProductCommand{} // not constructed properly
	factory := new(MockCreateProductUoWFactory)
	h := commands.NewCreateProductCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCreateProductCommandIsNotConstructed)
}

func TestCreateProductCommandHandler_Handle_BeginFailure(t *testing.T) {
	ctx := t.Context()
	price, err := kernel.NewMoneyFromString("4.50")
	require.NoError(t, err)
	cmd, err := commands.NewCreateProductCommand("Fries", "", price, true)
	require.NoError(t, err)

	beginErr := errors.New("begin failed")
	uow := new(MockCreateProductUoW)
	uow.On("Begin", ctx).Return(beginErr).Once()

	factory := new(MockCreateProductUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateProductCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, beginErr)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
