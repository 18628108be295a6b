package commands_test

import (
	"testing"
	"time"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestConfirmDepositCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	deliveryPersonID := kernel.NewUUID()
	aggregate := acceptedOrder(t, deliveryPersonID)
	transaction, err := aggregate.RequestDeposit(deliveryPersonID, mustMoney(t, 2000), time.Now())
	require.NoError(t, err)
	acc := accountWithBalance(t, deliveryPersonID, 500)
	adminID := kernel.NewUUID()
	cmd, _ := commands.NewConfirmDepositCommand(aggregate.ID(), transaction.ID(), adminID)

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
		accountRepo.On("Update", mock.Anything, acc).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewConfirmDepositCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, order.TransactionStatusApproved, transaction.Status())
	require.NotNil(t, transaction.ApprovedBy())
	require.True(t, transaction.ApprovedBy().IsEqual(adminID))
	require.Equal(t, int64(2500), acc.Balance().Amount())
	orderRepo.AssertExpectations(t)
	accountRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestConfirmDepositCommandHandler_Handle_AlreadyDecided(t *testing.T) {
	ctx := t.Context()
	deliveryPersonID := kernel.NewUUID()
	aggregate := acceptedOrder(t, deliveryPersonID)
	transaction, err := aggregate.RequestDeposit(deliveryPersonID, mustMoney(t, 2000), time.Now())
	require.NoError(t, err)
	require.NoError(t, transaction.Approve(kernel.NewUUID()))
	cmd, _ := commands.NewConfirmDepositCommand(aggregate.ID(), transaction.ID(), kernel.NewUUID())

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewConfirmDepositCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestConfirmDepositCommandHandler_Handle_NotADeposit(t *testing.T) {
	ctx := t.Context()
	deliveryPersonID := kernel.NewUUID()
	aggregate := acceptedOrder(t, deliveryPersonID)
	transaction, err := aggregate.RequestWithdrawal(deliveryPersonID, mustMoney(t, 2000), time.Now())
	require.NoError(t, err)
	cmd, _ := commands.NewConfirmDepositCommand(aggregate.ID(), transaction.ID(), kernel.NewUUID())

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewConfirmDepositCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	require.True(t, transaction.IsPending())
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestConfirmDepositCommandHandler_Handle_UnknownTransaction(t *testing.T) {
	ctx := t.Context()
	aggregate := acceptedOrder(t, kernel.NewUUID())
	cmd, _ := commands.NewConfirmDepositCommand(aggregate.ID(), kernel.NewUUID(), kernel.NewUUID())

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewConfirmDepositCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
