package http

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/sm8ta/webike_shop_microservice/internal/config"
	"github.com/sm8ta/webike_shop_microservice/internal/core/ports"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Handlers struct {
	Bike      *BikeHandler
	Customer  *CustomerHandler
	Supplier  *SupplierHandler
	Employee  *EmployeeHandler
	Sale      *SaleHandler
	Purchase  *PurchaseHandler
	Service   *ServiceOrderHandler
	Dashboard *DashboardHandler
}

type Router struct {
	router *gin.Engine
	server *http.Server
}

func NewRouter(
	cfg *config.HTTP,
	tokenService ports.TokenService,
	metrics ports.MetricsPort,
	logger ports.LoggerPort,
	h Handlers,
) (*Router, error) {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(MetricsMiddleware(metrics))

	// CORS
	origins := strings.Split(cfg.AllowedOrigins, ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}
	corsCfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 1 && origins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = origins
		corsCfg.AllowCredentials = true
	}
	router.Use(cors.New(corsCfg))

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	api.Use(AuthMiddleware(tokenService))
	adminOnly := RequireAdmin(logger)

	bikes := api.Group("/bikes")
	{
		bikes.GET("", h.Bike.ListBikes)
		bikes.POST("", h.Bike.CreateBike)
		bikes.GET("/:id", h.Bike.GetBike)
		bikes.PUT("/:id", h.Bike.UpdateBike)
		bikes.DELETE("/:id", adminOnly, h.Bike.DeleteBike)
	}

	customers := api.Group("/customers")
	{
		customers.GET("", h.Customer.ListCustomers)
		customers.POST("", h.Customer.CreateCustomer)
		customers.GET("/:id", h.Customer.GetCustomer)
		customers.PUT("/:id", h.Customer.UpdateCustomer)
		customers.DELETE("/:id", adminOnly, h.Customer.DeleteCustomer)
	}

	suppliers := api.Group("/suppliers")
	{
		suppliers.GET("", h.Supplier.ListSuppliers)
		suppliers.POST("", h.Supplier.CreateSupplier)
		suppliers.GET("/:id", h.Supplier.GetSupplier)
		suppliers.PUT("/:id", h.Supplier.UpdateSupplier)
		suppliers.DELETE("/:id", adminOnly, h.Supplier.DeleteSupplier)
	}

	employees := api.Group("/employees")
	{
		employees.GET("", h.Employee.ListEmployees)
		employees.POST("", h.Employee.CreateEmployee)
		employees.GET("/:id", h.Employee.GetEmployee)
		employees.PUT("/:id", h.Employee.UpdateEmployee)
		employees.DELETE("/:id", adminOnly, h.Employee.DeleteEmployee)
	}

	sales := api.Group("/sales")
	{
		sales.GET("", h.Sale.ListSales)
		sales.POST("", h.Sale.CreateSale)
		sales.GET("/:id", h.Sale.GetSale)
		sales.PUT("/:id", h.Sale.UpdateSale)
		sales.DELETE("/:id", adminOnly, h.Sale.DeleteSale)
	}

	purchases := api.Group("/purchases")
	{
		purchases.GET("", h.Purchase.ListPurchases)
		purchases.POST("", h.Purchase.CreatePurchase)
		purchases.GET("/:id", h.Purchase.GetPurchase)
		purchases.PUT("/:id", h.Purchase.UpdatePurchase)
		purchases.DELETE("/:id", adminOnly, h.Purchase.DeletePurchase)
	}

	services := api.Group("/services")
	{
		services.GET("", h.Service.ListServices)
		services.POST("", h.Service.CreateService)
		services.GET("/:id", h.Service.GetService)
		services.PUT("/:id", h.Service.UpdateService)
		services.DELETE("/:id", adminOnly, h.Service.DeleteService)
	}

	dashboard := api.Group("/dashboard")
	{
		dashboard.GET("/stats", h.Dashboard.Stats)
		dashboard.GET("/low-stock", h.Dashboard.LowStock)
		dashboard.GET("/recent-sales", h.Dashboard.RecentSales)
		dashboard.GET("/pending-services", h.Dashboard.PendingServices)
	}

	return &Router{
		router: router,
		server: &http.Server{
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}, nil
}

// Serve blocks until the server stops. A graceful Shutdown is not an error.
func (r *Router) Serve(addr string) error {
	r.server.Addr = addr
	if err := r.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (r *Router) Shutdown(ctx context.Context) error {
	return r.server.Shutdown(ctx)
}

func (r *Router) Engine() *gin.Engine {
	return r.router
}
