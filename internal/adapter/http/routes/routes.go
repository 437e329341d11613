package routes

import (
	"log"
	"os"
	"strconv"
	"time"

	_ "restaurant_tabs/docs" // This will be auto-generated
	"restaurant_tabs/internal/adapter/http/handlers"
	repository2 "restaurant_tabs/internal/adapter/persistence/repository"
	"restaurant_tabs/internal/infrastructure/database"
	"restaurant_tabs/internal/infrastructure/orderservice"
	"restaurant_tabs/internal/infrastructure/payments"
	"restaurant_tabs/internal/usecase"
	"restaurant_tabs/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const defaultPort = "8080"

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}
	err := router.Run(":" + port)
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()
	rdb := database.ConnectRedis()

	cartRepo := repository2.NewPendingCartDynamoRepository(ddb)
	sessionRepo := repository2.NewSessionRedisRepository(rdb, database.SessionTTLFromEnv())
	menuCartRepo := repository2.NewMenuCartRedisRepository(rdb)

	orderClient, err := orderservice.NewClient(os.Getenv("ORDER_SERVICE_URL"), orderServiceTimeout())
	if err != nil {
		log.Fatalf("Failed to configure the order service client: %v", err)
	}

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	selectorUseCase := usecase.NewTabSelectorUseCase(orderClient, sessionRepo)
	viewUseCase := usecase.NewTabViewUseCase(selectorUseCase, cartRepo)
	transferUseCase := usecase.NewCartTransferUseCase(orderClient, sessionRepo, cartRepo, menuCartRepo, transferCooldown())
	submissionUseCase := usecase.NewSubmissionUseCase(selectorUseCase, orderClient, cartRepo)
	paymentUseCase := usecase.NewPaymentUseCase(selectorUseCase, cartRepo, paymentGateway)

	tabHandler := handlers.NewTabHandler(viewUseCase, selectorUseCase, transferUseCase, submissionUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addTabRoutes(v1, tabHandler, paymentHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func orderServiceTimeout() time.Duration {
	if v := os.Getenv("ORDER_SERVICE_TIMEOUT_SECONDS"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			return time.Duration(secs) * time.Second
		}
	}
	return 10 * time.Second
}

func transferCooldown() time.Duration {
	if v := os.Getenv("TRANSFER_COOLDOWN_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms >= 0 {
			return time.Duration(ms) * time.Millisecond
		}
	}
	return 2 * time.Second
}
