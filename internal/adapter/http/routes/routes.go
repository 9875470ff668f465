package routes

import (
	"log"
	"os"

	_ "smart_oficina/docs" // This will be auto-generated
	"smart_oficina/internal/adapter/http/handlers"
	"smart_oficina/internal/adapter/http/middleware"
	repository2 "smart_oficina/internal/adapter/persistence/repository"
	"smart_oficina/internal/infrastructure/database"
	"smart_oficina/internal/infrastructure/inventory"
	"smart_oficina/internal/usecase"
	"smart_oficina/internal/usecase/interfaces"

	"github.com/gin-contrib/cors"
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
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	orderRepo := repository2.NewServiceOrderDynamoRepository(ddb)

	var partsGateway interfaces.IPartsInventoryGateway
	httpGateway, err := inventory.NewPartsHTTPGateway(os.Getenv("PARTS_API_URL"))
	if err != nil {
		log.Printf("Parts inventory gateway not configured: %v", err)
	} else {
		partsGateway = httpGateway
	}

	orderUseCase := usecase.NewServiceOrderUseCase(orderRepo)
	approvalUseCase := usecase.NewBudgetApprovalUseCase(orderRepo, os.Getenv("APPROVAL_BASE_URL"))
	inventoryUseCase := usecase.NewInventoryUseCase(orderRepo, partsGateway)

	orderHandler := handlers.NewServiceOrderHandler(orderUseCase)
	approvalHandler := handlers.NewBudgetApprovalHandler(approvalUseCase)
	inventoryHandler := handlers.NewInventoryHandler(inventoryUseCase)

	auth := middleware.NewAuth()

	// Rotas publicas: o token de aprovação é a credencial.
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPublicApprovalRoutes(v1, approvalHandler)

	// Rotas internas da oficina.
	authed := router.Group("/v1", auth.Handler())
	addServiceOrderRoutes(authed, orderHandler, approvalHandler)
	addInventoryRoutes(authed, inventoryHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
	}))
}
