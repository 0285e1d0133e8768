package commands_test

import (
	"testing"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateOrderPaymentCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewUpdateOrderPaymentCommand(id, true, order.Card)
	require.NoError(t, err)
	assert.Equal(t, id, cmd.OrderID())
	assert.True(t, cmd.IsPaid())
	assert.Equal(t, order.Card, cmd.Method())
}

func TestNewUpdateOrderPaymentCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewUpdateOrderPaymentCommand(kernel.UUID{}, true, order.Card)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewUpdateOrderPaymentCommand_UnknownMethod(t *testing.T) {
	_, err := commands.NewUpdateOrderPaymentCommand(kernel.NewUUID(), true, order.PaymentMethod("CHEQUE"))
	require.Error(t, err)
}

func TestUpdateOrderPaymentCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.UpdateOrderPaymentCommand{}
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrUpdateOrderPaymentCommandIsNotConstructed)
}
