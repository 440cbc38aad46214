package routes

import (
	"log"
	"os"
	"strconv"

	_ "konkred_vault/docs" // Generated swagger docs.
	"konkred_vault/internal/adapter/http/handlers"
	"konkred_vault/internal/adapter/http/middleware"
	repository2 "konkred_vault/internal/adapter/persistence/repository"
	"konkred_vault/internal/infrastructure/cache"
	"konkred_vault/internal/infrastructure/database"
	"konkred_vault/internal/infrastructure/events"
	"konkred_vault/internal/infrastructure/payments"
	"konkred_vault/internal/usecase"
	"konkred_vault/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", middleware.PrometheusHandler())

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

// getRoutes constructs every client once at process start and passes it into
// the handlers; nothing here is a lazily-built singleton.
func getRoutes() {
	ddb := database.ConnectDynamoDB()

	var protocolRepo interfaces.IProtocolRepository = repository2.NewProtocolDynamoRepository(ddb)
	if host := os.Getenv("REDIS_HOST"); host != "" {
		rdb, err := cache.ConnectRedis(host)
		if err != nil {
			log.Printf("catalog cache disabled: %v", err)
		} else {
			protocolRepo = repository2.NewCachedProtocolRepository(protocolRepo, rdb, 0)
		}
	}
	entitlementRepo := repository2.NewEntitlementDynamoRepository(ddb)

	var paymentGateway interfaces.IPaymentGateway
	npGateway, err := payments.NewNOWPaymentsGateway(os.Getenv("NOWPAYMENTS_API_KEY"), os.Getenv("NOWPAYMENTS_IPN_SECRET"))
	if err != nil {
		log.Printf("NOWPayments gateway not configured: %v", err)
	} else {
		paymentGateway = npGateway
	}

	var publisher interfaces.IEntitlementEventPublisher
	if broker := os.Getenv("KAFKA_BROKER"); broker != "" {
		kafkaPublisher, err := events.NewKafkaEntitlementPublisher(broker)
		if err != nil {
			log.Printf("entitlement event publisher not configured: %v", err)
		} else {
			publisher = kafkaPublisher
		}
	}

	checkoutUseCase := usecase.NewCheckoutUseCase(entitlementRepo, protocolRepo, paymentGateway, checkoutConfigFromEnv())
	settlementUseCase := usecase.NewSettlementUseCase(entitlementRepo, paymentGateway, publisher)

	checkoutHandler := handlers.NewCheckoutHandler(checkoutUseCase)
	ipnHandler := handlers.NewIPNHandler(settlementUseCase)
	entitlementHandler := handlers.NewEntitlementHandler(entitlementRepo)
	protocolHandler := handlers.NewProtocolHandler(protocolRepo)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addStorefrontRoutes(v1, checkoutHandler, ipnHandler, entitlementHandler, protocolHandler)
}

func checkoutConfigFromEnv() usecase.CheckoutConfig {
	publicBaseURL := getenvDefault("PUBLIC_BASE_URL", "http://localhost:8080")
	frontendBaseURL := getenvDefault("FRONTEND_BASE_URL", "http://localhost:3000")

	return usecase.CheckoutConfig{
		PriceCurrency:  getenvDefault("NOWPAYMENTS_PRICE_CURRENCY", "usd"),
		PayCurrency:    getenvDefault("NOWPAYMENTS_PAY_CURRENCY", "usdt"),
		IPNCallbackURL: publicBaseURL + "/v1" + PathWebhook + "/nowpayments",
		SuccessURL:     frontendBaseURL + "/vault",
		CancelURL:      frontendBaseURL + "/protocols",
	}
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.MetricsMiddleware())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
