package routes

import (
	"log"
	"os"
	"strconv"

	_ "dukaprint/docs" // This will be auto-generated
	"dukaprint/internal/adapter/http/handlers"
	repository2 "dukaprint/internal/adapter/persistence/repository"
	"dukaprint/internal/infrastructure/database"
	"dukaprint/internal/infrastructure/payments"
	"dukaprint/internal/usecase"
	"dukaprint/internal/usecase/interfaces"

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

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	serviceRepo := repository2.NewServiceDynamoRepository(ddb)
	inventoryRepo := repository2.NewInventoryDynamoRepository(ddb)
	customerRepo := repository2.NewCustomerDynamoRepository(ddb)
	orderRepo := repository2.NewOrderDynamoRepository(ddb)
	transactionRepo := repository2.NewTransactionDynamoRepository(ddb)
	expenseRepo := repository2.NewExpenseDynamoRepository(ddb)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	serviceUseCase := usecase.NewServiceUseCase(serviceRepo)
	inventoryUseCase := usecase.NewInventoryUseCase(inventoryRepo)
	customerUseCase := usecase.NewCustomerUseCase(customerRepo, orderRepo)
	orderUseCase := usecase.NewOrderUseCase(orderRepo, inventoryRepo, customerRepo, transactionRepo, paymentGateway)
	expenseUseCase := usecase.NewExpenseUseCase(expenseRepo)
	reportUseCase := usecase.NewReportUseCase(orderRepo, customerRepo, inventoryRepo, expenseRepo)

	serviceHandler := handlers.NewServiceHandler(serviceUseCase)
	inventoryHandler := handlers.NewInventoryHandler(inventoryUseCase)
	customerHandler := handlers.NewCustomerHandler(customerUseCase)
	orderHandler := handlers.NewOrderHandler(orderUseCase)
	expenseHandler := handlers.NewExpenseHandler(expenseUseCase)
	reportHandler := handlers.NewReportHandler(reportUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addShopRoutes(v1, shopHandlers{
		services:  serviceHandler,
		inventory: inventoryHandler,
		customers: customerHandler,
		orders:    orderHandler,
		expenses:  expenseHandler,
		reports:   reportHandler,
	})
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
