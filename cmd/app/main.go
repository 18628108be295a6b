package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"storefront/cmd"
	httpin "storefront/internal/adapters/in/http"
	"storefront/internal/adapters/out/postgres/accountrepo"
	"storefront/internal/adapters/out/postgres/orderrepo"
	"storefront/internal/adapters/out/postgres/outboxrepo"
	"storefront/internal/adapters/out/rabbitmq"
	"storefront/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)
	publisher := mustConnectBroker(configs)
	defer publisher.Close()

	app := cmd.NewCompositionRoot(configs, gormDB, publisher)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(
		app.CreateNotificationOutboxRepository(),
		app.NotificationPublisher(),
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:             goDotEnvVariable("HTTP_PORT"),
		DBHost:               goDotEnvVariable("DB_HOST"),
		DBPort:               goDotEnvVariable("DB_PORT"),
		DBUser:               goDotEnvVariable("DB_USER"),
		DBPassword:           goDotEnvVariable("DB_PASSWORD"),
		DBName:               goDotEnvVariable("DB_NAME"),
		DBSslMode:            goDotEnvVariable("DB_SSLMODE"),
		AmqpURL:              goDotEnvVariable("AMQP_URL"),
		NotificationExchange: goDotEnvVariable("NOTIFICATION_EXCHANGE"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode,
	)

	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.TransactionDTO{},
		&accountrepo.AccountDTO{},
		&outboxrepo.NotificationDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database schema: %v", err)
	}

	return gormDB
}

func mustConnectBroker(configs cmd.Config) *rabbitmq.NotificationPublisher {
	publisher, err := rabbitmq.NewNotificationPublisher(configs.AmqpURL, configs.NotificationExchange)
	if err != nil {
		log.Fatalf("Error connecting to message broker: %v", err)
	}
	return publisher
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpin.NewServer(
		httpin.CommandHandlers{
			AssignOrder:         app.CreateAssignOrderCommandHandler(),
			AcceptOrder:         app.CreateAcceptOrderCommandHandler(),
			RejectOrder:         app.CreateRejectOrderCommandHandler(),
			CompleteOrder:       app.CreateCompleteOrderCommandHandler(),
			ReturnOrder:         app.CreateReturnOrderCommandHandler(),
			OverrideOrderStatus: app.CreateOverrideOrderStatusCommandHandler(),
			RequestDeposit:      app.CreateRequestDepositCommandHandler(),
			RequestWithdrawal:   app.CreateRequestWithdrawalCommandHandler(),
			ConfirmDeposit:      app.CreateConfirmDepositCommandHandler(),
			ApproveWithdrawal:   app.CreateApproveWithdrawalCommandHandler(),
			RejectWithdrawal:    app.CreateRejectWithdrawalCommandHandler(),
		},
		httpin.QueryHandlers{
			PendingDeposits:    app.CreateGetPendingDepositsQueryHandler(),
			PendingWithdrawals: app.CreateGetPendingWithdrawalsQueryHandler(),
			MyTransactions:     app.CreateGetMyTransactionsQueryHandler(),
			UndeliveredOrders:  app.CreateGetUndeliveredOrdersQueryHandler(),
			OrderStatusCounts:  app.CreateGetOrderStatusCountsQueryHandler(),
		},
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
