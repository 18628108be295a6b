package commands_test

import (
	"testing"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRequestWithdrawalCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	deliveryPersonID := kernel.NewUUID()
	aggregate := acceptedOrder(t, deliveryPersonID)
	acc := accountWithBalance(t, deliveryPersonID, 5000)
	cmd, _ := commands.NewRequestWithdrawalCommand(aggregate.ID(), deliveryPersonID, 3000)

	orderRepo := new(MockOrderRepository)
	accountRepo := new(MockAccountRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("AccountRepository").Return(accountRepo).Once(),
		accountRepo.On("Get", mock.Anything, deliveryPersonID).Return(acc, nil).Once(),
		orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRequestWithdrawalCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Len(t, aggregate.Transactions(), 1)
	require.Equal(t, order.TransactionTypeWithdrawal, aggregate.Transactions()[0].Type())
	// The balance only moves on approval.
	require.Equal(t, int64(5000), acc.Balance().Amount())
	orderRepo.AssertExpectations(t)
	accountRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestRequestWithdrawalCommandHandler_Handle_InsufficientBalance(t *testing.T) {
	ctx := t.Context()
	deliveryPersonID := kernel.NewUUID()
	aggregate := acceptedOrder(t, deliveryPersonID)
	acc := accountWithBalance(t, deliveryPersonID, 1000)
	cmd, _ := commands.NewRequestWithdrawalCommand(aggregate.ID(), deliveryPersonID, 3000)

	orderRepo := new(MockOrderRepository)
	accountRepo := new(MockAccountRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("AccountRepository").Return(accountRepo).Once(),
		accountRepo.On("Get", mock.Anything, deliveryPersonID).Return(acc, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRequestWithdrawalCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrInsufficientBalance)
	require.Empty(t, aggregate.Transactions())
	orderRepo.AssertExpectations(t)
	accountRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
