package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	checkoutapp "github.com/muhammadheryan/digital-store/application/checkout"
	disputeapp "github.com/muhammadheryan/digital-store/application/dispute"
	fulfillmentapp "github.com/muhammadheryan/digital-store/application/fulfillment"
	inventoryapp "github.com/muhammadheryan/digital-store/application/inventory"
	keypoolapp "github.com/muhammadheryan/digital-store/application/keypool"
	orderapp "github.com/muhammadheryan/digital-store/application/order"
	productapp "github.com/muhammadheryan/digital-store/application/product"
	refundapp "github.com/muhammadheryan/digital-store/application/refund"
	ticketapp "github.com/muhammadheryan/digital-store/application/ticket"
	userapp "github.com/muhammadheryan/digital-store/application/user"
	"github.com/muhammadheryan/digital-store/cmd/config"
	redisclient "github.com/muhammadheryan/digital-store/cmd/redis"
	_ "github.com/muhammadheryan/digital-store/docs"
	"github.com/muhammadheryan/digital-store/migrations"
	categoryRepo "github.com/muhammadheryan/digital-store/repository/category"
	digitalKeyRepo "github.com/muhammadheryan/digital-store/repository/digitalkey"
	disputeRepo "github.com/muhammadheryan/digital-store/repository/dispute"
	inventoryRepo "github.com/muhammadheryan/digital-store/repository/inventory"
	orderRepo "github.com/muhammadheryan/digital-store/repository/order"
	productRepo "github.com/muhammadheryan/digital-store/repository/product"
	redisRepo "github.com/muhammadheryan/digital-store/repository/redis"
	refundRepo "github.com/muhammadheryan/digital-store/repository/refund"
	ticketRepo "github.com/muhammadheryan/digital-store/repository/ticket"
	txRepo "github.com/muhammadheryan/digital-store/repository/tx"
	userRepo "github.com/muhammadheryan/digital-store/repository/user"
	"github.com/muhammadheryan/digital-store/thirdparty/payment"
	"github.com/muhammadheryan/digital-store/thirdparty/rabbitmq"
	"github.com/muhammadheryan/digital-store/transport"
	"github.com/muhammadheryan/digital-store/utils/logger"
	validatorx "github.com/muhammadheryan/digital-store/utils/validator"
	"github.com/muhammadheryan/digital-store/worker"
	"go.uber.org/zap"
)

// @title DIGITAL STORE API
// @version 1.0
// @description Digital goods storefront: catalog, checkout, key fulfillment and post-sale casework
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from .env and environment variables
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}
	defer db.Close()

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	if cfg.Database.AutoMigrate {
		if err := migrations.Up(db.DB); err != nil {
			logger.Fatal("err migrate db", zap.Error(err))
		}
		logger.Info("database migrated")
	}

	validatorx.Init()

	// Initialize Redis client
	redisClient, err := redisclient.New(cfg)
	if err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisClient.Close()
	}()

	// Initialize repositories
	UserRepo := userRepo.NewUserRepository(db)
	RedisRepo := redisRepo.NewRepository(redisClient)
	TxRepo := txRepo.NewTxRepository(db)
	ProductRepo := productRepo.NewProductRepository(db)
	CategoryRepo := categoryRepo.NewCategoryRepository(db)
	DigitalKeyRepo := digitalKeyRepo.NewDigitalKeyRepository(db)
	OrderRepo := orderRepo.NewOrderRepository(db)
	InventoryRepo := inventoryRepo.NewInventoryRepository(db)
	RefundRepo := refundRepo.NewRefundRepository(db)
	TicketRepo := ticketRepo.NewTicketRepository(db)
	DisputeRepo := disputeRepo.NewDisputeRepository(db)

	// Payment provider
	Gateway := payment.NewStripeGateway(cfg.Stripe.SecretKey, cfg.Stripe.WebhookSecret)

	// Initialize application layers
	UserApp := userapp.NewUserApp(cfg, UserRepo, RedisRepo)
	ProductApp := productapp.NewProductApp(ProductRepo, CategoryRepo)
	KeyPoolApp := keypoolapp.NewKeyPoolApp(DigitalKeyRepo, ProductRepo)
	InventoryApp := inventoryapp.NewInventoryApp(cfg, InventoryRepo)
	CheckoutApp := checkoutapp.NewCheckoutApp(cfg, ProductRepo, Gateway)
	FulfillmentApp := fulfillmentapp.NewFulfillmentApp(TxRepo, OrderRepo, DigitalKeyRepo, ProductRepo, InventoryApp)
	OrderApp := orderapp.NewOrderApp(OrderRepo)
	RefundApp := refundapp.NewRefundApp(RefundRepo, OrderRepo, Gateway)
	TicketApp := ticketapp.NewTicketApp(TicketRepo, OrderRepo)
	DisputeApp := disputeapp.NewDisputeApp(DisputeRepo, OrderRepo)

	rh := &transport.RestHandler{
		UserApp:        UserApp,
		ProductApp:     ProductApp,
		KeyPoolApp:     KeyPoolApp,
		CheckoutApp:    CheckoutApp,
		OrderApp:       OrderApp,
		RefundApp:      RefundApp,
		TicketApp:      TicketApp,
		DisputeApp:     DisputeApp,
		InventoryApp:   InventoryApp,
		FulfillmentApp: FulfillmentApp,
		Gateway:        Gateway,
	}

	// Payment event queue, optional
	if url := cfg.RabbitMQURL(); url != "" {
		publisher, err := rabbitmq.NewPublisher(url, cfg.RabbitMQ.RetryDelay)
		if err != nil {
			logger.Fatal("err connect rabbitmq publisher", zap.Error(err))
		}
		defer func() {
			_ = publisher.Close()
		}()
		rh.Publisher = publisher

		consumer, err := rabbitmq.NewConsumer(url, cfg.RabbitMQ.RetryDelay, cfg.RabbitMQ.MaxRetries, FulfillmentApp)
		if err != nil {
			logger.Fatal("err connect rabbitmq consumer", zap.Error(err))
		}
		defer func() {
			_ = consumer.Close()
		}()
		if err := consumer.Start(ctx); err != nil {
			logger.Fatal("err start payment consumer", zap.Error(err))
		}
		logger.Info("payment consumer running")
	} else {
		logger.Warn("RabbitMQ not configured, payment webhooks are fulfilled inline")
	}

	// Periodic inventory sweep
	sweeper := worker.NewInventorySweeper(cfg, InventoryApp, redisclient.NewRedsync(redisClient))
	if err := sweeper.Start(ctx); err != nil {
		logger.Fatal("err start inventory sweeper", zap.Error(err))
	}

	httpTransport := transport.NewTransport(rh, cfg.Auth.InternalAPIKey)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("failed server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("err shutdown server", zap.Error(err))
	}
}
