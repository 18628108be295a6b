package queries_test

import (
	"context"
	"testing"
	"time"

	"storefront/internal/adapters/out/postgres/orderrepo"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type LedgerQueriesHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *LedgerQueriesHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.TransactionDTO{})
	suite.Require().NoError(err)

	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
}

func (suite *LedgerQueriesHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *LedgerQueriesHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error
	suite.Require().NoError(err)
}

// deliveredOrderWithDeposit persists a delivered order carrying one pending
// deposit for the given delivery person.
func (suite *LedgerQueriesHandlerTestSuite) deliveredOrderWithDeposit(
	deliveryPersonID kernel.UUID,
	amount int64,
) (*order.Order, *order.Transaction) {
	testOrder, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), order.PaymentMethodCOD)
	suite.Require().NoError(err)
	suite.Require().NoError(testOrder.Assign(deliveryPersonID))
	suite.Require().NoError(testOrder.Accept())
	suite.Require().NoError(testOrder.Complete(time.Now().UTC()))

	money, err := kernel.NewMoney(amount)
	suite.Require().NoError(err)
	deposit, err := testOrder.RequestDeposit(deliveryPersonID, money, time.Now().UTC())
	suite.Require().NoError(err)

	suite.Require().NoError(suite.orderRepo.Add(context.Background(), testOrder))
	return testOrder, deposit
}

// orderWithWithdrawal persists a delivered order carrying one pending
// withdrawal for the given delivery person.
func (suite *LedgerQueriesHandlerTestSuite) orderWithWithdrawal(
	deliveryPersonID kernel.UUID,
	amount int64,
) (*order.Order, *order.Transaction) {
	testOrder, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), order.PaymentMethodPrepaid)
	suite.Require().NoError(err)
	suite.Require().NoError(testOrder.Assign(deliveryPersonID))
	suite.Require().NoError(testOrder.Accept())
	suite.Require().NoError(testOrder.Complete(time.Now().UTC()))

	money, err := kernel.NewMoney(amount)
	suite.Require().NoError(err)
	withdrawal, err := testOrder.RequestWithdrawal(deliveryPersonID, money, time.Now().UTC())
	suite.Require().NoError(err)

	suite.Require().NoError(suite.orderRepo.Add(context.Background(), testOrder))
	return testOrder, withdrawal
}

func (suite *LedgerQueriesHandlerTestSuite) TestPendingDeposits_EmptyDatabase_ReturnsEmptySlice() {
	handler := queries.NewGetPendingDepositsQueryHandler(suite.db)

	result, err := handler.Handle(context.Background(), queries.NewGetPendingDepositsQuery())

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *LedgerQueriesHandlerTestSuite) TestPendingDeposits_ReturnsOnlyPendingDeposits() {
	ctx := context.Background()
	deliveryPersonID := kernel.NewUUID()
	adminID := kernel.NewUUID()

	_, pendingDeposit := suite.deliveredOrderWithDeposit(deliveryPersonID, 1500)

	// An approved deposit must not show up
	approvedOrder, approvedDeposit := suite.deliveredOrderWithDeposit(deliveryPersonID, 900)
	suite.Require().NoError(approvedDeposit.Approve(adminID))
	suite.Require().NoError(suite.orderRepo.Update(ctx, approvedOrder))

	// A pending withdrawal must not show up either
	suite.orderWithWithdrawal(deliveryPersonID, 400)

	handler := queries.NewGetPendingDepositsQueryHandler(suite.db)
	result, err := handler.Handle(ctx, queries.NewGetPendingDepositsQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.True(pendingDeposit.ID().IsEqual(result[0].TransactionID))
	suite.True(deliveryPersonID.IsEqual(result[0].DeliveryPersonID))
	suite.Equal(int64(1500), result[0].Amount)
}

func (suite *LedgerQueriesHandlerTestSuite) TestPendingDeposits_OrderedNewestFirst() {
	ctx := context.Background()
	deliveryPersonID := kernel.NewUUID()

	_, older := suite.deliveredOrderWithDeposit(deliveryPersonID, 100)
	_, newer := suite.deliveredOrderWithDeposit(deliveryPersonID, 200)

	handler := queries.NewGetPendingDepositsQueryHandler(suite.db)
	result, err := handler.Handle(ctx, queries.NewGetPendingDepositsQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.True(newer.ID().IsEqual(result[0].TransactionID))
	suite.True(older.ID().IsEqual(result[1].TransactionID))
}

func (suite *LedgerQueriesHandlerTestSuite) TestPendingWithdrawals_ReturnsOnlyPendingWithdrawals() {
	ctx := context.Background()
	deliveryPersonID := kernel.NewUUID()
	adminID := kernel.NewUUID()

	_, pendingWithdrawal := suite.orderWithWithdrawal(deliveryPersonID, 2000)

	// A rejected withdrawal must not show up
	rejectedOrder, rejectedWithdrawal := suite.orderWithWithdrawal(deliveryPersonID, 800)
	suite.Require().NoError(rejectedWithdrawal.Reject(adminID, "amount disputed"))
	suite.Require().NoError(suite.orderRepo.Update(ctx, rejectedOrder))

	// A pending deposit must not show up either
	suite.deliveredOrderWithDeposit(deliveryPersonID, 300)

	handler := queries.NewGetPendingWithdrawalsQueryHandler(suite.db)
	result, err := handler.Handle(ctx, queries.NewGetPendingWithdrawalsQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.True(pendingWithdrawal.ID().IsEqual(result[0].TransactionID))
	suite.Equal(int64(2000), result[0].Amount)
}

func (suite *LedgerQueriesHandlerTestSuite) TestMyTransactions_ScopedToDeliveryPerson() {
	ctx := context.Background()
	mine := kernel.NewUUID()
	someoneElse := kernel.NewUUID()

	suite.deliveredOrderWithDeposit(mine, 1000)
	suite.orderWithWithdrawal(mine, 500)
	suite.deliveredOrderWithDeposit(someoneElse, 700)

	query, err := queries.NewGetMyTransactionsQuery(mine)
	suite.Require().NoError(err)

	handler := queries.NewGetMyTransactionsQueryHandler(suite.db)
	result, err := handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	for _, tx := range result {
		suite.Contains([]int64{1000, 500}, tx.Amount)
	}
}

func (suite *LedgerQueriesHandlerTestSuite) TestMyTransactions_IncludesDecidedTransactions() {
	ctx := context.Background()
	deliveryPersonID := kernel.NewUUID()
	adminID := kernel.NewUUID()

	rejectedOrder, rejectedWithdrawal := suite.orderWithWithdrawal(deliveryPersonID, 600)
	suite.Require().NoError(rejectedWithdrawal.Reject(adminID, "insufficient funds collected"))
	suite.Require().NoError(suite.orderRepo.Update(ctx, rejectedOrder))

	query, err := queries.NewGetMyTransactionsQuery(deliveryPersonID)
	suite.Require().NoError(err)

	handler := queries.NewGetMyTransactionsQueryHandler(suite.db)
	result, err := handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(string(order.TransactionStatusRejected), result[0].Status)
	suite.Equal("insufficient funds collected", result[0].RejectionReason)
}

func (suite *LedgerQueriesHandlerTestSuite) TestMyTransactions_EmptyHistory_ReturnsEmptySlice() {
	query, err := queries.NewGetMyTransactionsQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	handler := queries.NewGetMyTransactionsQueryHandler(suite.db)
	result, err := handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func TestLedgerQueriesHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerQueriesHandlerTestSuite))
}

// mockAggregateTracker is a no-op tracker for query tests.
type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {
	// No-op for query tests
}
