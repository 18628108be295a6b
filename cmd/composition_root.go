package cmd

import (
	"storefront/internal/adapters/out/postgres"
	"storefront/internal/adapters/out/postgres/outboxrepo"
	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	publisher  ports.NotificationPublisher
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, publisher ports.NotificationPublisher) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		publisher:  publisher,
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) notifyUoWFactory() commands.NotifyUoWFactory {
	return FuncNotifyUoWFactory(func() commands.NotifyUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) uowFactoryForLedger() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateAssignOrderCommandHandler() commands.AssignOrderCommandHandler {
	return commands.NewAssignOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAcceptOrderCommandHandler() commands.AcceptOrderCommandHandler {
	return commands.NewAcceptOrderCommandHandler(c.notifyUoWFactory())
}

func (c *CompositionRoot) CreateRejectOrderCommandHandler() commands.RejectOrderCommandHandler {
	return commands.NewRejectOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	return commands.NewCompleteOrderCommandHandler(c.notifyUoWFactory())
}

func (c *CompositionRoot) CreateReturnOrderCommandHandler() commands.ReturnOrderCommandHandler {
	return commands.NewReturnOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateOverrideOrderStatusCommandHandler() commands.OverrideOrderStatusCommandHandler {
	return commands.NewOverrideOrderStatusCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateRequestDepositCommandHandler() commands.RequestDepositCommandHandler {
	return commands.NewRequestDepositCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateRequestWithdrawalCommandHandler() commands.RequestWithdrawalCommandHandler {
	return commands.NewRequestWithdrawalCommandHandler(c.uowFactoryForLedger())
}

func (c *CompositionRoot) CreateConfirmDepositCommandHandler() commands.ConfirmDepositCommandHandler {
	return commands.NewConfirmDepositCommandHandler(c.uowFactoryForLedger())
}

func (c *CompositionRoot) CreateApproveWithdrawalCommandHandler() commands.ApproveWithdrawalCommandHandler {
	return commands.NewApproveWithdrawalCommandHandler(c.uowFactoryForLedger())
}

func (c *CompositionRoot) CreateRejectWithdrawalCommandHandler() commands.RejectWithdrawalCommandHandler {
	return commands.NewRejectWithdrawalCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateGetPendingDepositsQueryHandler() queries.GetPendingDepositsQueryHandler {
	return queries.NewGetPendingDepositsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPendingWithdrawalsQueryHandler() queries.GetPendingWithdrawalsQueryHandler {
	return queries.NewGetPendingWithdrawalsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetMyTransactionsQueryHandler() queries.GetMyTransactionsQueryHandler {
	return queries.NewGetMyTransactionsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUndeliveredOrdersQueryHandler() queries.GetUndeliveredOrdersQueryHandler {
	return queries.NewGetUndeliveredOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderStatusCountsQueryHandler() queries.GetOrderStatusCountsQueryHandler {
	return queries.NewGetOrderStatusCountsQueryHandler(c.gormDB)
}

// CreateNotificationOutboxRepository builds an outbox repository bound to the
// main connection, for the relay job that runs outside business transactions.
func (c *CompositionRoot) CreateNotificationOutboxRepository() ports.NotificationOutboxRepository {
	return outboxrepo.NewGormNotificationOutboxRepository(c.gormDB)
}

// NotificationPublisher returns the broker publisher shared by the relay job.
func (c *CompositionRoot) NotificationPublisher() ports.NotificationPublisher {
	return c.publisher
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncNotifyUoWFactory func() commands.NotifyUoW

func (f FuncNotifyUoWFactory) Create() commands.NotifyUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
