package main

import (
	"log/slog"
	"os"

	"github.com/debayankundu99-sys/hello-cloud-deploy-fork/internal/config"
	"github.com/debayankundu99-sys/hello-cloud-deploy-fork/internal/health"
	"github.com/debayankundu99-sys/hello-cloud-deploy-fork/internal/order"
	"github.com/debayankundu99-sys/hello-cloud-deploy-fork/internal/order/handler"
	"github.com/debayankundu99-sys/hello-cloud-deploy-fork/internal/order/repository"
	"github.com/debayankundu99-sys/hello-cloud-deploy-fork/internal/order/service"
	"github.com/debayankundu99-sys/hello-cloud-deploy-fork/internal/server"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/streadway/amqp"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := config.Load()
	gin.SetMode(gin.ReleaseMode)

	db, err := openDatabase(cfg)
	if err != nil {
		logger.Error("failed to open database", "error", err.Error())
		os.Exit(1)
	}
	if err := db.AutoMigrate(&order.Order{}, &order.Item{}); err != nil {
		logger.Error("failed to migrate order tables", "error", err.Error())
		os.Exit(1)
	}

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		logger.Info("list cache enabled", "addr", cfg.RedisAddr)
	}

	publisher, closeBroker, err := connectBroker(cfg, logger)
	if err != nil {
		logger.Error("failed to connect to message broker", "error", err.Error())
		os.Exit(1)
	}
	defer closeBroker()

	orderRepo := repository.NewOrderRepository(db)
	orderService := service.NewOrderService(orderRepo, rdb, publisher, logger)
	orderHandler := handler.NewOrderHandler(orderService)
	healthHandler := health.NewHandler()

	router := server.NewRouter(orderHandler, healthHandler, logger)

	logger.Info("order service listening",
		"port", cfg.Port,
		"environment", config.EnvironmentName(),
	)
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Error("server stopped", "error", err.Error())
		os.Exit(1)
	}
}

// openDatabase connects to Postgres when the platform supplies DATABASE_URL
// and falls back to an in-memory SQLite database otherwise, so the default
// deployment keeps no state beyond the process lifetime.
func openDatabase(cfg config.Config) (*gorm.DB, error) {
	if cfg.DatabaseURL != "" {
		return gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	}

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	// A single connection serializes store access; Go handlers run in
	// parallel and the shared in-memory database needs one writer at a time.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}

// connectBroker dials RabbitMQ and declares the orders exchange when
// RABBITMQ_URL is set; without a broker, events are dropped.
func connectBroker(cfg config.Config, logger *slog.Logger) (service.Publisher, func(), error) {
	if cfg.RabbitMQURL == "" {
		return service.NopPublisher{}, func() {}, nil
	}

	conn, err := amqp.Dial(cfg.RabbitMQURL)
	if err != nil {
		return nil, nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, nil, err
	}

	err = ch.ExchangeDeclare(
		service.OrdersExchange, // name
		"topic",                // type
		true,                   // durable
		false,                  // auto-deleted
		false,                  // internal
		false,                  // no-wait
		nil,                    // arguments
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, nil, err
	}

	logger.Info("event publishing enabled")
	return service.NewAMQPPublisher(ch), func() {
		ch.Close()
		conn.Close()
	}, nil
}
