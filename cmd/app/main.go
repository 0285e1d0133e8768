package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"restaurant/cmd"
	restauranthttp "restaurant/internal/adapters/in/http"
	"restaurant/internal/adapters/out/postgres/deliveryrepo"
	"restaurant/internal/adapters/out/postgres/orderrepo"
	"restaurant/internal/adapters/out/postgres/productrepo"
	"restaurant/internal/adapters/out/postgres/staffrepo"
	"restaurant/internal/adapters/out/rabbitmq"
	"restaurant/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)
	migrateSchema(gormDB)

	publisher, err := rabbitmq.NewPublisher(configs.RabbitMQURL, configs.RabbitMQExchange, logger)
	if err != nil {
		log.Fatalf("Error connecting to RabbitMQ: %v", err)
	}
	defer publisher.Close()

	root := cmd.NewCompositionRoot(configs, gormDB, publisher)

	jobManager := jobs.NewJobManager(
		root.CreateExpirePendingOrdersCommandHandler(),
		configs.PendingOrderMaxAge,
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting scheduled jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&root, configs)
}

func getConfigs() cmd.Config {
	// A .env file is optional, real deployments set the environment directly.
	_ = godotenv.Load(".env")

	return cmd.Config{
		HTTPPort:           envOrDefault("HTTP_PORT", "8080"),
		DBHost:             requiredEnv("DB_HOST"),
		DBPort:             envOrDefault("DB_PORT", "5432"),
		DBUser:             requiredEnv("DB_USER"),
		DBPassword:         requiredEnv("DB_PASSWORD"),
		DBName:             requiredEnv("DB_NAME"),
		DBSslMode:          envOrDefault("DB_SSLMODE", "disable"),
		RabbitMQURL:        requiredEnv("RABBITMQ_URL"),
		RabbitMQExchange:   envOrDefault("RABBITMQ_EXCHANGE", "restaurant.events"),
		JWTSecret:          requiredEnv("JWT_SECRET"),
		JWTTTL:             durationEnv("JWT_TTL", 24*time.Hour),
		PendingOrderMaxAge: durationEnv("PENDING_ORDER_TTL", 30*time.Minute),
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func requiredEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Fatalf("Error loading configuration: %s is not set", key)
	}
	return value
}

func durationEnv(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}

	value, err := time.ParseDuration(raw)
	if err != nil {
		log.Fatalf("Error loading configuration: %s is not a valid duration: %v", key, err)
	}
	return value
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return gormDB
}

func migrateSchema(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&deliveryrepo.DeliveryDTO{},
		&productrepo.ProductDTO{},
		&staffrepo.StaffDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database schema: %v", err)
	}
}

func startWebServer(root *cmd.CompositionRoot, configs cmd.Config) {
	commandHandlers := restauranthttp.CommandHandlers{
		CreateOrder:           root.CreateCreateOrderCommandHandler(),
		ChangeOrderStatus:     root.CreateChangeOrderStatusCommandHandler(),
		UpdateOrderPayment:    root.CreateUpdateOrderPaymentCommandHandler(),
		DeleteOrder:           root.CreateDeleteOrderCommandHandler(),
		AssignDelivery:        root.CreateAssignDeliveryCommandHandler(),
		ChangeDeliveryStatus:  root.CreateChangeDeliveryStatusCommandHandler(),
		ReassignDriver:        root.CreateReassignDeliveryDriverCommandHandler(),
		CancelDelivery:        root.CreateCancelDeliveryCommandHandler(),
		UpdateDeliveryDetails: root.CreateUpdateDeliveryDetailsCommandHandler(),
		CreateProduct:         root.CreateCreateProductCommandHandler(),
		UpdateProduct:         root.CreateUpdateProductCommandHandler(),
		CreateStaff:           root.CreateCreateStaffCommandHandler(),
	}

	queryHandlers := restauranthttp.QueryHandlers{
		GetOrder:        root.CreateGetOrderQueryHandler(),
		ListOrders:      root.CreateListOrdersQueryHandler(),
		ListDeliveries:  root.CreateListDeliveriesQueryHandler(),
		ListProducts:    root.CreateListProductsQueryHandler(),
		ListStaff:       root.CreateListStaffQueryHandler(),
		GetStaffByLogin: root.CreateGetStaffByLoginQueryHandler(),
	}

	tokens := restauranthttp.NewTokenIssuer(configs.JWTSecret, configs.JWTTTL)
	server := restauranthttp.NewServer(commandHandlers, queryHandlers, tokens)

	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	server.RegisterRoutes(e)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); err != nil && err != http.ErrServerClosed {
			e.Logger.Fatal(err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		e.Logger.Error(err)
	}
}
