// server/internal/api/routes/routes.go
package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"jiffy-backoffice-api-server/config"
	"jiffy-backoffice-api-server/internal/api/handlers"
	"jiffy-backoffice-api-server/internal/api/middleware"
	"jiffy-backoffice-api-server/internal/auth"
	"jiffy-backoffice-api-server/internal/cache"
	"jiffy-backoffice-api-server/internal/metrics"
	"jiffy-backoffice-api-server/internal/models"
	"jiffy-backoffice-api-server/internal/notify"
	"jiffy-backoffice-api-server/internal/repository"
	"jiffy-backoffice-api-server/internal/socket"
	"jiffy-backoffice-api-server/internal/storage"
)

// Deps carries everything the router wires into handlers.
type Deps struct {
	Config   config.Config
	DB       *mongo.Database
	Log      *zap.Logger
	Tokens   *auth.TokenManager
	Notifier *notify.Notifier
	Cache    *cache.Client
	Hub      *socket.Hub
	Storage  storage.Storage
	// Ping reports store health for /healthz; nil means always healthy.
	Ping func(*gin.Context) error
}

// Repositories groups the stores so tests can swap in mocks.
type Repositories struct {
	Users      repository.UserRepository
	Employees  repository.EmployeeRepository
	Factories  repository.FactoryRepository
	Machines   repository.MachineRepository
	Carts      repository.CartRepository
	Products   repository.ProductRepository
	Income     repository.IncomeRepository
	Deliveries repository.DeliveryRepository
	Suppliers  repository.SupplierRepository
}

func NewRepositories(db *mongo.Database) Repositories {
	return Repositories{
		Users:      repository.NewUserRepository(db),
		Employees:  repository.NewEmployeeRepository(db),
		Factories:  repository.NewFactoryRepository(db),
		Machines:   repository.NewMachineRepository(db),
		Carts:      repository.NewCartRepository(db),
		Products:   repository.NewProductRepository(db),
		Income:     repository.NewIncomeRepository(db),
		Deliveries: repository.NewDeliveryRepository(db),
		Suppliers:  repository.NewSupplierRepository(db),
	}
}

func corsConfig(clientDomain string) cors.Config {
	cfg := cors.Config{
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders:    []string{middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	origins := strings.Split(clientDomain, ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}
	if clientDomain == "" {
		cfg.AllowOriginFunc = func(string) bool { return true }
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}

// SetupRouter builds the engine with every route of the back office.
func SetupRouter(deps Deps, repos Repositories) *gin.Engine {
	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestLogger(deps.Log),
		metrics.GinMiddleware(),
		cors.New(corsConfig(deps.Config.Server.ClientDomain)),
		middleware.SecurityHeaders(),
	)

	userHandler := &handlers.UserHandler{Users: repos.Users, Tokens: deps.Tokens, Notifier: deps.Notifier, Hub: deps.Hub, Cache: deps.Cache, Log: deps.Log}
	employeeHandler := &handlers.EmployeeHandler{Employees: repos.Employees, Tokens: deps.Tokens, Notifier: deps.Notifier, Log: deps.Log}
	factoryHandler := &handlers.FactoryHandler{Factories: repos.Factories, Hub: deps.Hub, Log: deps.Log}
	machineHandler := &handlers.MachineHandler{Machines: repos.Machines, Hub: deps.Hub, Log: deps.Log}
	cartHandler := &handlers.CartHandler{Carts: repos.Carts, Products: repos.Products, Log: deps.Log}
	eBillHandler := &handlers.EBillHandler{Carts: repos.Carts, Products: repos.Products, Log: deps.Log}
	incomeHandler := &handlers.IncomeHandler{Income: repos.Income, Cache: deps.Cache, Hub: deps.Hub, Log: deps.Log}
	deliveryHandler := &handlers.DeliveryHandler{Deliveries: repos.Deliveries, Hub: deps.Hub, Log: deps.Log}
	productHandler := &handlers.ProductHandler{Products: repos.Products, Log: deps.Log}
	supplierHandler := &handlers.SupplierHandler{Suppliers: repos.Suppliers, Log: deps.Log}
	uploadHandler := &handlers.UploadHandler{Storage: deps.Storage, Log: deps.Log}
	webSocketHandler := &handlers.WebSocketHandler{Hub: deps.Hub, Tokens: deps.Tokens, AllowedOrigin: deps.Config.Server.ClientDomain, Log: deps.Log}

	authenticated := middleware.Authenticate(deps.Tokens)
	adminOnly := middleware.Authorize(models.RoleAdmin)

	router.GET("/healthz", func(c *gin.Context) {
		if deps.Ping != nil {
			if err := deps.Ping(c); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	if local, ok := deps.Storage.(*storage.Local); ok && deps.Config.Storage.PublicURL != "" {
		router.Static(deps.Config.Storage.PublicURL, local.Root())
	}

	router.POST("/single", authenticated, uploadHandler.UploadImage)
	router.POST("/singleRecipt", authenticated, uploadHandler.UploadReceipt)

	api := router.Group("/api")
	api.GET("/ws", webSocketHandler.ServeWs)

	// Customers
	users := api.Group("/users")
	{
		users.POST("/login", userHandler.Login)
		users.POST("/signup", userHandler.Signup)

		users.GET("/accountUsage", authenticated, adminOnly, userHandler.GetAccountUsage)
		users.GET("/inactive", authenticated, adminOnly, userHandler.GetInactiveUsers)
		users.PUT("/adminResetPassword/:id", authenticated, adminOnly, userHandler.AdminResetPassword)

		users.Use(authenticated)
		users.GET("", userHandler.GetUsers)
		users.POST("", userHandler.CreateUser)
		users.GET("/:id", userHandler.GetUser)
		users.PUT("/:id", userHandler.UpdateUser)
		users.PATCH("/:id", userHandler.UpdateUser)
		users.DELETE("/:id", userHandler.DeleteUser)
		users.PUT("/resetPassword/:id", userHandler.ResetPassword)
	}

	// Staff
	employees := api.Group("/employees")
	{
		employees.POST("/login", employeeHandler.Login)

		employees.Use(authenticated, adminOnly)
		employees.POST("/signup", employeeHandler.Signup)
		employees.GET("", employeeHandler.GetEmployees)
		employees.POST("", employeeHandler.CreateEmployee)
		employees.GET("/:id", employeeHandler.GetEmployee)
		employees.PUT("/:id", employeeHandler.UpdateEmployee)
		employees.PATCH("/:id", employeeHandler.UpdateEmployee)
		employees.DELETE("/:id", employeeHandler.DeleteEmployee)
	}

	factories := api.Group("/factory", authenticated)
	{
		factories.GET("", factoryHandler.GetAllFactories)
		factories.POST("", factoryHandler.CreateFactory)
		factories.GET("/:id", factoryHandler.GetFactory)
		factories.PUT("/:id", factoryHandler.UpdateFactory)
		factories.PATCH("/:id", factoryHandler.UpdateFactory)
		factories.DELETE("/:id", factoryHandler.DeleteFactory)
	}

	machines := api.Group("/machine", authenticated)
	{
		machines.GET("", machineHandler.GetAllMachines)
		machines.POST("", machineHandler.CreateMachine)
		machines.GET("/factory/:mFactory", machineHandler.GetMachinesByFactory)
		machines.GET("/:id", machineHandler.GetMachine)
		machines.PUT("/:id", machineHandler.UpdateMachine)
		machines.PATCH("/:id", machineHandler.UpdateMachine)
		machines.DELETE("/:id", machineHandler.DeleteMachine)
	}

	products := api.Group("/inventoryProducts")
	{
		products.GET("", productHandler.GetAllProducts)
		products.GET("/:id", productHandler.GetProduct)
		products.POST("", authenticated, productHandler.CreateProduct)
		products.PUT("/:id", authenticated, productHandler.UpdateProduct)
		products.PATCH("/:id", authenticated, productHandler.UpdateProduct)
		products.DELETE("/:id", authenticated, productHandler.DeleteProduct)
	}

	suppliers := api.Group("/suppliers", authenticated)
	{
		suppliers.GET("", supplierHandler.GetSuppliers)
		suppliers.POST("", supplierHandler.CreateSupplier)
		suppliers.GET("/:id", supplierHandler.GetSupplier)
		suppliers.PUT("/:id", supplierHandler.UpdateSupplier)
		suppliers.PATCH("/:id", supplierHandler.UpdateSupplier)
		suppliers.DELETE("/:id", supplierHandler.DeleteSupplier)
	}

	eBill := api.Group("/v1/eBill")
	{
		eBill.GET("/cart/:cusID", eBillHandler.GetCartTotal)
		eBill.GET("/buynow/:pid/:qty", eBillHandler.GetBuyNowTotal)
	}

	delivery := api.Group("/v4/Delevery", authenticated)
	{
		delivery.POST("", deliveryHandler.CreateDelivery)
	}

	cart := api.Group("/v5/Cart", authenticated)
	{
		cart.POST("", cartHandler.CreateCart)
		cart.GET("/:customerID", cartHandler.GetAllCart)
		cart.GET("/:customerID/:productID", cartHandler.GetCart)
		cart.PUT("/:customerID/:productID", cartHandler.UpdateCart)
		cart.DELETE("/:customerID/:productID", cartHandler.DeleteCart)
	}

	income := api.Group("/v8/incomeHistory", authenticated)
	{
		income.POST("", incomeHandler.Insert)
		income.GET("/overview", incomeHandler.GetIncomeOverview)
	}

	return router
}
