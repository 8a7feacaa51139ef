package app

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sm8ta/webike_shop_microservice/internal/adapter/handler/http"
	"github.com/sm8ta/webike_shop_microservice/internal/adapter/kafka"
	"github.com/sm8ta/webike_shop_microservice/internal/adapter/logger"
	"github.com/sm8ta/webike_shop_microservice/internal/adapter/postgres"
	"github.com/sm8ta/webike_shop_microservice/internal/adapter/prometheus"
	"github.com/sm8ta/webike_shop_microservice/internal/adapter/redis"
	"github.com/sm8ta/webike_shop_microservice/internal/config"
	"github.com/sm8ta/webike_shop_microservice/internal/core/ports"
	"github.com/sm8ta/webike_shop_microservice/internal/core/services"

	"github.com/go-playground/validator/v10"
	redisClient "github.com/redis/go-redis/v9"
)

type eventPublisher interface {
	ports.EventPublisherPort
	Close() error
}

type App struct {
	Config       *config.Container
	Logger       ports.LoggerPort
	DB           *sql.DB
	RedisClient  *redisClient.Client
	RedisAdapter ports.CachePort
	Events       eventPublisher
	HTTPRouter   *http.Router
}

func New(ctx context.Context, cfg *config.Container) (*App, error) {
	// Set logger
	loggerAdapter := logger.NewLoggerAdapter(cfg.App.Env)
	loggerAdapter.Info("Starting the application", map[string]interface{}{
		"app": cfg.App.Name,
		"env": cfg.App.Env,
	})

	// Set redis
	redisConn, err := redis.Connect(ctx, cfg.Redis.Address, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		return nil, err
	}
	cacheAdapter := redis.NewRedisAdapter(redisConn)

	// Connect DB and migrate
	db, err := postgres.Connect(ctx, cfg.DB)
	if err != nil {
		redisConn.Close()
		return nil, err
	}

	// Events
	var events eventPublisher = kafka.NoopPublisher{}
	if cfg.Kafka.Enabled() {
		events = kafka.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.Topic, cfg.App.Name)
	} else {
		loggerAdapter.Warn("No Kafka brokers configured, stock events disabled", nil)
	}

	// Validate
	validate := validator.New()

	// Observability
	metrics := prometheus.NewPrometheusAdapter()

	// Repositories
	txManager := postgres.NewTxManager(db)
	bikeRepo := postgres.NewBikeRepository(db)
	customerRepo := postgres.NewCustomerRepository(db)
	supplierRepo := postgres.NewSupplierRepository(db)
	employeeRepo := postgres.NewEmployeeRepository(db)
	saleRepo := postgres.NewSaleRepository(db)
	purchaseRepo := postgres.NewPurchaseRepository(db)
	orderRepo := postgres.NewServiceOrderRepository(db)

	// Services
	clock := services.SystemClock
	resolver := services.NewRefResolver(customerRepo, bikeRepo, supplierRepo, loggerAdapter)
	stockRule := services.NewStockRule(cacheAdapter, events, metrics, loggerAdapter, clock)

	bikeService := services.NewBikeService(bikeRepo, loggerAdapter, validate, cacheAdapter)
	customerService := services.NewCustomerService(customerRepo, loggerAdapter, validate)
	supplierService := services.NewSupplierService(supplierRepo, loggerAdapter, validate)
	employeeService := services.NewEmployeeService(employeeRepo, loggerAdapter, validate)
	saleService := services.NewSaleService(txManager, saleRepo, resolver, stockRule, loggerAdapter, validate)
	purchaseService := services.NewPurchaseService(txManager, purchaseRepo, resolver, stockRule, loggerAdapter, validate)
	orderService := services.NewServiceOrderService(orderRepo, resolver, loggerAdapter, validate)
	dashboardService := services.NewDashboardService(
		txManager, bikeRepo, saleRepo, orderRepo, resolver, clock, loggerAdapter,
		services.DashboardSettings{
			LowStockThreshold: cfg.Dashboard.LowStockThreshold,
			RecentSalesWindow: cfg.Dashboard.RecentSalesWindow,
			RecentSalesLimit:  cfg.Dashboard.RecentSalesLimit,
		},
	)

	// HTTP Handlers
	tokenService := http.NewJWTTokenService(cfg.Token.Secret, loggerAdapter)
	handlers := http.Handlers{
		Bike:      http.NewBikeHandler(bikeService, loggerAdapter),
		Customer:  http.NewCustomerHandler(customerService, loggerAdapter),
		Supplier:  http.NewSupplierHandler(supplierService, loggerAdapter),
		Employee:  http.NewEmployeeHandler(employeeService, loggerAdapter),
		Sale:      http.NewSaleHandler(saleService, loggerAdapter),
		Purchase:  http.NewPurchaseHandler(purchaseService, loggerAdapter),
		Service:   http.NewServiceOrderHandler(orderService, loggerAdapter),
		Dashboard: http.NewDashboardHandler(dashboardService, loggerAdapter),
	}

	// Init HTTP router
	router, err := http.NewRouter(cfg.HTTP, tokenService, metrics, loggerAdapter, handlers)
	if err != nil {
		db.Close()
		redisConn.Close()
		events.Close()
		return nil, fmt.Errorf("failed to initialize router: %w", err)
	}

	return &App{
		Config:       cfg,
		Logger:       loggerAdapter,
		DB:           db,
		RedisClient:  redisConn,
		RedisAdapter: cacheAdapter,
		Events:       events,
		HTTPRouter:   router,
	}, nil
}

// Run blocks while the HTTP server is up.
func (a *App) Run() error {
	listenAddr := fmt.Sprintf("%s:%s", a.Config.HTTP.URL, a.Config.HTTP.Port)
	a.Logger.Info("Starting HTTP server", map[string]interface{}{
		"addr": listenAddr,
	})

	if err := a.HTTPRouter.Serve(listenAddr); err != nil {
		a.Logger.Error("HTTP server error", map[string]interface{}{
			"error": err.Error(),
		})
		return err
	}
	return nil
}

// Stop drains HTTP first, then closes the event writer and the stores.
func (a *App) Stop(ctx context.Context) error {
	a.Logger.Info("Shutting down gracefully...", nil)

	if err := a.HTTPRouter.Shutdown(ctx); err != nil {
		a.Logger.Error("HTTP shutdown error", map[string]interface{}{
			"error": err.Error(),
		})
	}

	if err := a.Events.Close(); err != nil {
		a.Logger.Error("Kafka writer close error", map[string]interface{}{
			"error": err.Error(),
		})
	}

	// Close database
	if err := a.DB.Close(); err != nil {
		a.Logger.Error("Database close error", map[string]interface{}{
			"error": err.Error(),
		})
	}

	// Close Redis
	if err := a.RedisClient.Close(); err != nil {
		a.Logger.Error("Redis close error", map[string]interface{}{
			"error": err.Error(),
		})
	}

	a.Logger.Info("Application stopped successfully", nil)
	return nil
}
