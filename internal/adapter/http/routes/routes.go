package routes

import (
	"log"
	"strconv"

	_ "instaquote/docs" // This will be auto-generated
	"instaquote/internal/adapter/http/handlers"
	repository2 "instaquote/internal/adapter/persistence/repository"
	"instaquote/internal/infrastructure/content"
	"instaquote/internal/infrastructure/database"
	"instaquote/internal/infrastructure/notifications"
	"instaquote/internal/usecase"

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

	quoteRepo := repository2.NewQuoteDynamoRepository(ddb)
	rateTables := content.NewSanityClientFromEnv()
	notifier := notifications.NewEmailNotifierFromEnv()

	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo, rateTables, notifier)

	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)
	settingsHandler := handlers.NewSettingsHandler(quoteUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addQuoteRoutes(v1, quoteHandler, settingsHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
